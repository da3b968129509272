package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		config:        cfg,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration. A duplicate email surfaces
// entity.ErrDuplicateEmail from the unique index; the original record is
// never touched.
func (uc *UserUsecase) Register(ctx context.Context, email, password, firstName, lastName string, role entity.UserRole) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("weak password: %w", err)
	}
	if role != entity.UserRoleStudent && role != entity.UserRoleInstructor {
		role = entity.DefaultRole()
	}

	hashed, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, errors.New("internal server error")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Email:        email,
		PasswordHash: hashed,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		Profile:      entity.Profile{Skills: []string{}},
		IsActive:     true,
		JoinedAt:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, entity.ErrDuplicateEmail
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, errors.New("internal server error")
	}
	return user, nil
}

// Login verifies credentials and issues an access token.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.New("invalid credentials")
	}
	if !user.IsActive {
		return nil, "", errors.New("account is deactivated")
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", errors.New("invalid credentials")
	}
	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("internal server error")
	}
	return user, token, nil
}

// Authenticate resolves an access token to its user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, errors.New("account is deactivated")
	}
	return user, nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies a partial update of the named profile fields only, so
// re-sending the same payload is idempotent.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	allowed := map[string]bool{
		"first_name":     true,
		"last_name":      true,
		"profile.bio":    true,
		"profile.avatar": true,
		"profile.skills": true,
	}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, errors.New("no updatable fields provided")
	}
	if err := uc.userRepo.UpdateProfile(ctx, userID, filtered); err != nil {
		return nil, err
	}
	return uc.userRepo.GetUserByID(ctx, userID)
}

// Deactivate soft-deletes a user by flipping is_active.
func (uc *UserUsecase) Deactivate(ctx context.Context, userID string) error {
	return uc.userRepo.DeactivateUser(ctx, userID)
}

func (uc *UserUsecase) GetActiveStudents(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.GetActiveStudents(ctx)
}

// GetRecentlyJoined returns users who joined within the configured look-back
// window.
func (uc *UserUsecase) GetRecentlyJoined(ctx context.Context) ([]*entity.User, error) {
	since := time.Now().Add(-uc.config.GetRecentJoinWindow())
	return uc.userRepo.GetUsersJoinedSince(ctx, since)
}
