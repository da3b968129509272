package mocks

import (
	"context"
	"errors"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// MockCatalogUsecase is a mock implementation of the ICatalogUseCase interface
type MockCatalogUsecase struct {
	ShouldFailCreateCourse bool
	ShouldFailGetCourse    bool
	ShouldFailSearch       bool
	ShouldFailUpdateCourse bool
	ShouldFailAddTags      bool
	ShouldFailPublish      bool
	ShouldFailDelete       bool
	ShouldFailLessons      bool
	ShouldFailAssignments  bool

	MockCourse     entity.Course
	MockLesson     entity.Lesson
	MockAssignment entity.Assignment
	MockTotalCount int64
}

var _ usecasecontract.ICatalogUseCase = (*MockCatalogUsecase)(nil)

func NewMockCatalogUsecase() *MockCatalogUsecase {
	return &MockCatalogUsecase{
		MockCourse: entity.Course{
			ID:           "mock-course-id",
			Title:        "Intro to Testing",
			InstructorID: "mock-instructor-id",
			Category:     "Programming",
			Difficulty:   entity.DifficultyBeginner,
			IsPublished:  true,
			IsActive:     true,
		},
		MockLesson: entity.Lesson{
			ID:       "mock-lesson-id",
			CourseID: "mock-course-id",
			Title:    "Lesson One",
			Order:    1,
		},
		MockAssignment: entity.Assignment{
			ID:       "mock-assignment-id",
			CourseID: "mock-course-id",
			Title:    "Assignment One",
			MaxScore: 100,
		},
		MockTotalCount: 1,
	}
}

func (m *MockCatalogUsecase) CreateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	if m.ShouldFailCreateCourse {
		return nil, errors.New("course creation failed")
	}
	return &m.MockCourse, nil
}

func (m *MockCatalogUsecase) GetCourseByID(ctx context.Context, courseID string) (*entity.Course, error) {
	if m.ShouldFailGetCourse {
		return nil, entity.ErrNotFound
	}
	return &m.MockCourse, nil
}

func (m *MockCatalogUsecase) SearchCourses(ctx context.Context, opts *contract.CourseFilterOptions) ([]*entity.Course, int64, error) {
	if m.ShouldFailSearch {
		return nil, 0, errors.New("search failed")
	}
	return []*entity.Course{&m.MockCourse}, m.MockTotalCount, nil
}

func (m *MockCatalogUsecase) GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error) {
	if m.ShouldFailSearch {
		return nil, errors.New("fetch failed")
	}
	return []*entity.Course{&m.MockCourse}, nil
}

func (m *MockCatalogUsecase) UpdateCourse(ctx context.Context, courseID string, updates map[string]interface{}) error {
	if m.ShouldFailUpdateCourse {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockCatalogUsecase) AddCourseTags(ctx context.Context, courseID string, tags []string) error {
	if m.ShouldFailAddTags {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockCatalogUsecase) PublishCourse(ctx context.Context, courseID string) error {
	if m.ShouldFailPublish {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockCatalogUsecase) DeleteCourse(ctx context.Context, courseID string) error {
	if m.ShouldFailDelete {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockCatalogUsecase) AddLesson(ctx context.Context, lesson *entity.Lesson) (*entity.Lesson, error) {
	if m.ShouldFailLessons {
		return nil, errors.New("lesson creation failed")
	}
	return &m.MockLesson, nil
}

func (m *MockCatalogUsecase) GetCourseLessons(ctx context.Context, courseID string) ([]*entity.Lesson, error) {
	if m.ShouldFailLessons {
		return nil, errors.New("fetch failed")
	}
	return []*entity.Lesson{&m.MockLesson}, nil
}

func (m *MockCatalogUsecase) DeleteLesson(ctx context.Context, lessonID string) error {
	if m.ShouldFailLessons {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockCatalogUsecase) CreateAssignment(ctx context.Context, assignment *entity.Assignment) (*entity.Assignment, error) {
	if m.ShouldFailAssignments {
		return nil, errors.New("assignment creation failed")
	}
	return &m.MockAssignment, nil
}

func (m *MockCatalogUsecase) GetCourseAssignments(ctx context.Context, courseID string) ([]*entity.Assignment, error) {
	if m.ShouldFailAssignments {
		return nil, errors.New("fetch failed")
	}
	return []*entity.Assignment{&m.MockAssignment}, nil
}

func (m *MockCatalogUsecase) DeleteAssignment(ctx context.Context, assignmentID string) error {
	if m.ShouldFailAssignments {
		return entity.ErrNotFound
	}
	return nil
}
