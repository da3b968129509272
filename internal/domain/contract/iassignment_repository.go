package contract

import (
	"context"
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// IAssignmentRepository provides methods for managing assignment data in the database.
type IAssignmentRepository interface {
	CreateAssignment(ctx context.Context, assignment *entity.Assignment) error
	GetAssignmentByID(ctx context.Context, assignmentID string) (*entity.Assignment, error)
	GetAssignmentsByCourse(ctx context.Context, courseID string) ([]*entity.Assignment, error)
	// GetAssignmentsDueBetween returns assignments whose due date falls within
	// [from, to), ordered ascending by due date.
	GetAssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]*entity.Assignment, error)
	DeleteAssignment(ctx context.Context, assignmentID string) error
}
