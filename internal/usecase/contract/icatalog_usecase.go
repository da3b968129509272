package usecasecontract

import (
	"context"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// ICatalogUseCase manages courses, lessons, and assignments.
type ICatalogUseCase interface {
	CreateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error)
	GetCourseByID(ctx context.Context, courseID string) (*entity.Course, error)
	SearchCourses(ctx context.Context, opts *contract.CourseFilterOptions) ([]*entity.Course, int64, error)
	GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error)
	UpdateCourse(ctx context.Context, courseID string, updates map[string]interface{}) error
	AddCourseTags(ctx context.Context, courseID string, tags []string) error
	PublishCourse(ctx context.Context, courseID string) error
	DeleteCourse(ctx context.Context, courseID string) error

	AddLesson(ctx context.Context, lesson *entity.Lesson) (*entity.Lesson, error)
	GetCourseLessons(ctx context.Context, courseID string) ([]*entity.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID string) error

	CreateAssignment(ctx context.Context, assignment *entity.Assignment) (*entity.Assignment, error)
	GetCourseAssignments(ctx context.Context, courseID string) ([]*entity.Assignment, error)
	DeleteAssignment(ctx context.Context, assignmentID string) error
}
