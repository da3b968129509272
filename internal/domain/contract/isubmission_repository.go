package contract

import (
	"context"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// ISubmissionRepository provides methods for managing submission data in the database.
type ISubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *entity.Submission) error
	GetSubmissionByID(ctx context.Context, submissionID string) (*entity.Submission, error)
	GetSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]*entity.Submission, error)
	GetSubmissionsByStudent(ctx context.Context, studentID string) ([]*entity.Submission, error)
	// GradeSubmission sets the grade and optional feedback.
	GradeSubmission(ctx context.Context, submissionID string, grade float64, feedback *string) error
}
