package mocks

import (
	"context"
	"errors"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// MockReportUsecase is a mock implementation of the IReportUseCase interface
type MockReportUsecase struct {
	ShouldFail bool

	MockStudents        []*entity.EnrolledStudent
	MockCompletions     []*entity.CourseCompletion
	MockRatings         []*entity.CourseRating
	MockCategoryRatings []*entity.CategoryRating
	MockCounts          []*entity.CourseEnrollmentCount
	MockGrades          []*entity.StudentGrade
	MockAssignments     []*entity.Assignment
	MockOverdue         []*entity.OverdueStudent
}

var _ usecasecontract.IReportUseCase = (*MockReportUsecase)(nil)

func NewMockReportUsecase() *MockReportUsecase {
	avg := 4.5
	return &MockReportUsecase{
		MockStudents: []*entity.EnrolledStudent{
			{StudentID: "mock-user-id", Email: "test@example.com", Progress: 50, Status: entity.EnrollmentStatusActive},
		},
		MockCompletions: []*entity.CourseCompletion{
			{CourseID: "mock-course-id", Total: 2, Completed: 1, Rate: 0.5},
		},
		MockRatings: []*entity.CourseRating{
			{CourseID: "mock-course-id", AverageRating: &avg, RatingCount: 2},
		},
		MockCategoryRatings: []*entity.CategoryRating{
			{Category: "Programming", AverageRating: &avg, CourseCount: 1},
		},
		MockCounts: []*entity.CourseEnrollmentCount{
			{CourseID: "mock-course-id", Total: 2},
		},
		MockGrades: []*entity.StudentGrade{
			{StudentID: "mock-user-id", AverageGrade: &avg, Submissions: 1},
		},
		MockAssignments: []*entity.Assignment{
			{ID: "mock-assignment-id", CourseID: "mock-course-id", Title: "Assignment One"},
		},
		MockOverdue: []*entity.OverdueStudent{
			{StudentID: "mock-user-id", AssignmentID: "mock-assignment-id", CourseID: "mock-course-id"},
		},
	}
}

func (m *MockReportUsecase) StudentsInCourse(ctx context.Context, courseID string) ([]*entity.EnrolledStudent, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	return m.MockStudents, nil
}

func (m *MockReportUsecase) CompletionRates(ctx context.Context) ([]*entity.CourseCompletion, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	return m.MockCompletions, nil
}

func (m *MockReportUsecase) CompletionRateForCourse(ctx context.Context, courseID string) (*entity.CourseCompletion, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	for _, row := range m.MockCompletions {
		if row.CourseID == courseID {
			return row, nil
		}
	}
	return &entity.CourseCompletion{CourseID: courseID}, nil
}

func (m *MockReportUsecase) AverageRatings(ctx context.Context) ([]*entity.CourseRating, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	return m.MockRatings, nil
}

func (m *MockReportUsecase) TopRatedCourses(ctx context.Context, limit int) ([]*entity.CourseRating, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	if limit < len(m.MockRatings) {
		return m.MockRatings[:limit], nil
	}
	return m.MockRatings, nil
}

func (m *MockReportUsecase) RatingsByCategory(ctx context.Context) ([]*entity.CategoryRating, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	return m.MockCategoryRatings, nil
}

func (m *MockReportUsecase) EnrollmentCounts(ctx context.Context) ([]*entity.CourseEnrollmentCount, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	return m.MockCounts, nil
}

func (m *MockReportUsecase) AverageGrades(ctx context.Context) ([]*entity.StudentGrade, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	return m.MockGrades, nil
}

func (m *MockReportUsecase) UpcomingAssignments(ctx context.Context) ([]*entity.Assignment, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	return m.MockAssignments, nil
}

func (m *MockReportUsecase) OverdueStudents(ctx context.Context) ([]*entity.OverdueStudent, error) {
	if m.ShouldFail {
		return nil, errors.New("report failed")
	}
	return m.MockOverdue, nil
}
