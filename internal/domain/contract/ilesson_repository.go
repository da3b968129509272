package contract

import (
	"context"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// ILessonRepository provides methods for managing lesson data in the database.
type ILessonRepository interface {
	CreateLesson(ctx context.Context, lesson *entity.Lesson) error
	GetLessonByID(ctx context.Context, lessonID string) (*entity.Lesson, error)
	// GetLessonsByCourse returns the lessons of a course ordered by their
	// position in the curriculum.
	GetLessonsByCourse(ctx context.Context, courseID string) ([]*entity.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID string) error
}
