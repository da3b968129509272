package contract

import (
	"context"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// IEnrollmentRepository provides methods for managing enrollment data in the database.
type IEnrollmentRepository interface {
	// CreateEnrollment inserts a new enrollment. Returns
	// entity.ErrAlreadyEnrolled when the (course, student) pair already exists.
	CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error
	GetEnrollmentByID(ctx context.Context, enrollmentID string) (*entity.Enrollment, error)
	GetEnrollmentsByCourse(ctx context.Context, courseID string) ([]*entity.Enrollment, error)
	GetEnrollmentsByStudent(ctx context.Context, studentID string) ([]*entity.Enrollment, error)
	// UpdateProgress sets the progress value and, at 100, flips the status to
	// completed and stamps the completion date.
	UpdateProgress(ctx context.Context, enrollmentID string, progress int) error
	// RateCourse records the student's course rating on the enrollment.
	RateCourse(ctx context.Context, enrollmentID string, rating float64) error
	DeleteEnrollment(ctx context.Context, enrollmentID string) error
}
