package usecasecontract

import (
	"context"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, email, password, firstName, lastName string, role entity.UserRole) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	// UpdateProfile applies a partial, idempotent update of the named profile
	// fields only.
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
	// Deactivate soft-deletes a user.
	Deactivate(ctx context.Context, userID string) error
	GetActiveStudents(ctx context.Context) ([]*entity.User, error)
	GetRecentlyJoined(ctx context.Context) ([]*entity.User, error)
}
