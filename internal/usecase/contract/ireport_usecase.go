package usecasecontract

import (
	"context"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// IReportUseCase exposes the read-only reports of the platform.
type IReportUseCase interface {
	StudentsInCourse(ctx context.Context, courseID string) ([]*entity.EnrolledStudent, error)
	CompletionRates(ctx context.Context) ([]*entity.CourseCompletion, error)
	// CompletionRateForCourse returns the rate for one course; a course with
	// no enrollments reports a zero rate over zero enrollments.
	CompletionRateForCourse(ctx context.Context, courseID string) (*entity.CourseCompletion, error)
	AverageRatings(ctx context.Context) ([]*entity.CourseRating, error)
	TopRatedCourses(ctx context.Context, limit int) ([]*entity.CourseRating, error)
	RatingsByCategory(ctx context.Context) ([]*entity.CategoryRating, error)
	EnrollmentCounts(ctx context.Context) ([]*entity.CourseEnrollmentCount, error)
	AverageGrades(ctx context.Context) ([]*entity.StudentGrade, error)
	UpcomingAssignments(ctx context.Context) ([]*entity.Assignment, error)
	OverdueStudents(ctx context.Context) ([]*entity.OverdueStudent, error)
}
