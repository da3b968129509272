package mocks

import (
	"context"
	"errors"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// MockEnrollmentUsecase is a mock implementation of the IEnrollmentUseCase interface
type MockEnrollmentUsecase struct {
	ShouldFailEnroll         bool
	EnrollDuplicate          bool
	ShouldFailGetEnrollment  bool
	ShouldFailUpdateProgress bool
	ShouldFailRateCourse     bool
	ShouldFailUnenroll       bool
	ShouldFailSubmit         bool
	ShouldFailGrade          bool

	MockEnrollment entity.Enrollment
	MockSubmission entity.Submission
}

var _ usecasecontract.IEnrollmentUseCase = (*MockEnrollmentUsecase)(nil)

func NewMockEnrollmentUsecase() *MockEnrollmentUsecase {
	return &MockEnrollmentUsecase{
		MockEnrollment: entity.Enrollment{
			ID:        "mock-enrollment-id",
			CourseID:  "mock-course-id",
			StudentID: "mock-user-id",
			Status:    entity.EnrollmentStatusActive,
		},
		MockSubmission: entity.Submission{
			ID:           "mock-submission-id",
			AssignmentID: "mock-assignment-id",
			StudentID:    "mock-user-id",
			Content:      "my work",
		},
	}
}

func (m *MockEnrollmentUsecase) Enroll(ctx context.Context, courseID, studentID string) (*entity.Enrollment, error) {
	if m.EnrollDuplicate {
		return nil, entity.ErrAlreadyEnrolled
	}
	if m.ShouldFailEnroll {
		return nil, errors.New("enrollment failed")
	}
	return &m.MockEnrollment, nil
}

func (m *MockEnrollmentUsecase) GetEnrollmentByID(ctx context.Context, enrollmentID string) (*entity.Enrollment, error) {
	if m.ShouldFailGetEnrollment {
		return nil, entity.ErrNotFound
	}
	return &m.MockEnrollment, nil
}

func (m *MockEnrollmentUsecase) GetStudentEnrollments(ctx context.Context, studentID string) ([]*entity.Enrollment, error) {
	if m.ShouldFailGetEnrollment {
		return nil, errors.New("fetch failed")
	}
	return []*entity.Enrollment{&m.MockEnrollment}, nil
}

func (m *MockEnrollmentUsecase) UpdateProgress(ctx context.Context, enrollmentID string, progress int) error {
	if m.ShouldFailUpdateProgress {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockEnrollmentUsecase) RateCourse(ctx context.Context, enrollmentID string, rating float64) error {
	if m.ShouldFailRateCourse {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockEnrollmentUsecase) Unenroll(ctx context.Context, enrollmentID string) error {
	if m.ShouldFailUnenroll {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockEnrollmentUsecase) Submit(ctx context.Context, submission *entity.Submission) (*entity.Submission, error) {
	if m.ShouldFailSubmit {
		return nil, errors.New("submission failed")
	}
	return &m.MockSubmission, nil
}

func (m *MockEnrollmentUsecase) GradeSubmission(ctx context.Context, submissionID string, grade float64, feedback *string) error {
	if m.ShouldFailGrade {
		return entity.ErrNotFound
	}
	return nil
}
