package usecasecontract

import (
	"context"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// IEnrollmentUseCase manages enrollments and submissions.
type IEnrollmentUseCase interface {
	Enroll(ctx context.Context, courseID, studentID string) (*entity.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, enrollmentID string) (*entity.Enrollment, error)
	GetStudentEnrollments(ctx context.Context, studentID string) ([]*entity.Enrollment, error)
	UpdateProgress(ctx context.Context, enrollmentID string, progress int) error
	RateCourse(ctx context.Context, enrollmentID string, rating float64) error
	Unenroll(ctx context.Context, enrollmentID string) error

	Submit(ctx context.Context, submission *entity.Submission) (*entity.Submission, error)
	GradeSubmission(ctx context.Context, submissionID string, grade float64, feedback *string) error
}
