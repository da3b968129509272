package contract

import (
	"context"
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser inserts a new user. Returns entity.ErrDuplicateEmail when the
	// email is already registered.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetActiveStudents retrieves all users with the student role that are
	// still active.
	GetActiveStudents(ctx context.Context) ([]*entity.User, error)
	// GetUsersJoinedSince retrieves users who joined on or after the given time.
	GetUsersJoinedSince(ctx context.Context, since time.Time) ([]*entity.User, error)
	// UpdateProfile applies a partial update to the named profile fields only.
	UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) error
	// DeactivateUser soft-deletes a user by setting is_active to false.
	DeactivateUser(ctx context.Context, id string) error
}
