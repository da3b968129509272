package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http/dto"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	GetUser(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateProfile(*gin.Context)
	DeactivateUser(*gin.Context)
	GetActiveStudents(*gin.Context)
	GetRecentlyJoined(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Register handles user registration (signup)
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	role := entity.DefaultRole()
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName, role)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			ErrorHandler(c, http.StatusConflict, "Email already registered")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	response := dto.LoginResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
	}

	SuccessHandler(c, http.StatusOK, response)
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile handles partial updates of the authenticated user's profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := updateProfileRequestToMap(req)
	updatedUser, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID.(string), updates)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*updatedUser))
}

// DeactivateUser soft-deletes a user account
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	userID := c.Param("id")
	if err := h.userUsecase.Deactivate(c.Request.Context(), userID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "User not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to deactivate user")
		return
	}
	MessageHandler(c, http.StatusOK, "User deactivated successfully")
}

// GetActiveStudents lists all active users holding the student role
func (h *UserHandler) GetActiveStudents(c *gin.Context) {
	students, err := h.userUsecase.GetActiveStudents(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch students")
		return
	}
	SuccessHandler(c, http.StatusOK, toUserResponses(students))
}

// GetRecentlyJoined lists users who joined within the configured window
func (h *UserHandler) GetRecentlyJoined(c *gin.Context) {
	users, err := h.userUsecase.GetRecentlyJoined(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	SuccessHandler(c, http.StatusOK, toUserResponses(users))
}

func toUserResponses(users []*entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.ToUserResponse(*user))
	}
	return responses
}

func updateProfileRequestToMap(req dto.UpdateProfileRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Bio != nil {
		updates["profile.bio"] = *req.Bio
	}
	if req.Avatar != nil {
		updates["profile.avatar"] = *req.Avatar
	}
	if req.Skills != nil {
		updates["profile.skills"] = req.Skills
	}

	return updates
}
