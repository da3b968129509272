package contract

import (
	"context"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// ICourseRepository provides methods for managing course data in the database.
type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *entity.Course) error
	GetCourseByID(ctx context.Context, courseID string) (*entity.Course, error)
	// SearchCourses applies the filter options; an empty filter matches all
	// courses. Returns the matching set and the total count.
	SearchCourses(ctx context.Context, opts *CourseFilterOptions) ([]*entity.Course, int64, error)
	GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error)
	GetCoursesByCategory(ctx context.Context, category string) ([]*entity.Course, error)
	// UpdateCourse applies a partial update; fields not named in updates are
	// left untouched.
	UpdateCourse(ctx context.Context, courseID string, updates map[string]interface{}) error
	// AddTags adds tags with $addToSet semantics: applying the same tags twice
	// yields the same tag set.
	AddTags(ctx context.Context, courseID string, tags []string) error
	PublishCourse(ctx context.Context, courseID string) error
	DeleteCourse(ctx context.Context, courseID string) error
}

// CourseFilterOptions encapsulates the course search predicates. Nil/empty
// fields are ignored, so the zero value matches everything.
type CourseFilterOptions struct {
	Title         string // partial, case-insensitive
	Category      string // exact
	MinPrice      *float64
	MaxPrice      *float64
	Tags          []string // set membership, any-of
	PublishedOnly bool
	Page          int
	PageSize      int
}
