package mocks

import (
	"context"
	"errors"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	RegisterDuplicateEmail   bool
	ShouldFailLogin          bool
	ShouldFailAuthenticate   bool
	ShouldFailGetByID        bool
	ShouldFailUpdateProfile  bool
	ShouldFailDeactivate     bool
	ShouldFailActiveStudents bool
	ShouldFailRecentlyJoined bool

	// Return values
	MockUser        entity.User
	MockAccessToken string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Email:     "test@example.com",
			FirstName: "Test",
			LastName:  "User",
			Role:      entity.UserRoleStudent,
			IsActive:  true,
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, email, password, firstName, lastName string, role entity.UserRole) (*entity.User, error) {
	if m.RegisterDuplicateEmail {
		return nil, entity.ErrDuplicateEmail
	}
	if m.ShouldFailRegister {
		return nil, errors.New("user creation failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", errors.New("login failed")
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, errors.New("authentication failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, entity.ErrNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, errors.New("update profile failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Deactivate(ctx context.Context, userID string) error {
	if m.ShouldFailDeactivate {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockUserUsecase) GetActiveStudents(ctx context.Context) ([]*entity.User, error) {
	if m.ShouldFailActiveStudents {
		return nil, errors.New("fetch failed")
	}
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockUserUsecase) GetRecentlyJoined(ctx context.Context) ([]*entity.User, error) {
	if m.ShouldFailRecentlyJoined {
		return nil, errors.New("fetch failed")
	}
	return []*entity.User{&m.MockUser}, nil
}
