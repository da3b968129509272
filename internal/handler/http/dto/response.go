package dto

import (
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Role      string   `json:"role"`
	Bio       *string  `json:"bio,omitempty"`
	Avatar    *string  `json:"avatar,omitempty"`
	Skills    []string `json:"skills"`
	IsActive  bool     `json:"is_active"`
	JoinedAt  string   `json:"joined_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Bio:       user.Profile.Bio,
		Avatar:    user.Profile.Avatar,
		Skills:    user.Profile.Skills,
		IsActive:  user.IsActive,
		JoinedAt:  user.JoinedAt.Format(time.RFC3339),
	}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
