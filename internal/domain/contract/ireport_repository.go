package contract

import (
	"context"
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// IReportRepository runs the read-only aggregation pipelines of the reporting
// layer. Empty result sets are empty slices, never errors.
type IReportRepository interface {
	// StudentsInCourse joins enrollments onto users and returns each enrolled
	// student with their progress.
	StudentsInCourse(ctx context.Context, courseID string) ([]*entity.EnrolledStudent, error)
	// CompletionRates groups enrollments by course and computes
	// completed/total per course.
	CompletionRates(ctx context.Context) ([]*entity.CourseCompletion, error)
	// AverageRatings groups enrollments by course and averages the non-null
	// ratings. Courses with no rated enrollment report a nil average.
	AverageRatings(ctx context.Context) ([]*entity.CourseRating, error)
	// TopRatedCourses returns the limit highest-rated courses.
	TopRatedCourses(ctx context.Context, limit int) ([]*entity.CourseRating, error)
	// RatingsByCategory averages ratings across courses grouped by category,
	// sorted descending.
	RatingsByCategory(ctx context.Context) ([]*entity.CategoryRating, error)
	// EnrollmentCounts counts enrollments per course.
	EnrollmentCounts(ctx context.Context) ([]*entity.CourseEnrollmentCount, error)
	// AverageGrades joins submissions per student and averages grades, sorted
	// descending.
	AverageGrades(ctx context.Context) ([]*entity.StudentGrade, error)
	// OverdueStudents returns students with an assignment past due as of now
	// and no submission on file.
	OverdueStudents(ctx context.Context, now time.Time) ([]*entity.OverdueStudent, error)
}
