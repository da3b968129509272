package usecase

import (
	"context"
	"errors"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// EnrollmentUsecase implements the IEnrollmentUseCase interface.
type EnrollmentUsecase struct {
	enrollmentRepo contract.IEnrollmentRepository
	submissionRepo contract.ISubmissionRepository
	courseRepo     contract.ICourseRepository
	userRepo       contract.IUserRepository
	assignmentRepo contract.IAssignmentRepository
	uuidGenerator  contract.IUUIDGenerator
	validator      usecasecontract.IValidator
	logger         usecasecontract.IAppLogger
	reportCache    contract.IReportCache // optional, set via SetReportCache
}

// NewEnrollmentUsecase creates a new EnrollmentUsecase instance.
func NewEnrollmentUsecase(
	enrollmentRepo contract.IEnrollmentRepository,
	submissionRepo contract.ISubmissionRepository,
	courseRepo contract.ICourseRepository,
	userRepo contract.IUserRepository,
	assignmentRepo contract.IAssignmentRepository,
	uuidGenerator contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *EnrollmentUsecase {
	return &EnrollmentUsecase{
		enrollmentRepo: enrollmentRepo,
		submissionRepo: submissionRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		uuidGenerator:  uuidGenerator,
		validator:      validator,
		logger:         logger,
	}
}

var _ usecasecontract.IEnrollmentUseCase = (*EnrollmentUsecase)(nil)

// SetReportCache wires the optional report cache. Enrollment writes
// invalidate cached reports so readers never see stale rates.
func (uc *EnrollmentUsecase) SetReportCache(cache contract.IReportCache) {
	uc.reportCache = cache
}

func (uc *EnrollmentUsecase) invalidateReports(ctx context.Context) {
	if uc.reportCache == nil {
		return
	}
	if err := uc.reportCache.InvalidateReports(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate report cache: %v", err)
	}
}

// Enroll links a student to a course. The unique (course, student) index
// rejects double enrollment.
func (uc *EnrollmentUsecase) Enroll(ctx context.Context, courseID, studentID string) (*entity.Enrollment, error) {
	if _, err := uc.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		return nil, errors.New("course not found")
	}
	student, err := uc.userRepo.GetUserByID(ctx, studentID)
	if err != nil {
		return nil, errors.New("student not found")
	}
	if student.Role != entity.UserRoleStudent {
		return nil, errors.New("only students can enroll")
	}

	enrollment := &entity.Enrollment{
		ID:        uc.uuidGenerator.NewUUID(),
		CourseID:  courseID,
		StudentID: studentID,
		Status:    entity.EnrollmentStatusActive,
		Progress:  0,
	}
	if err := uc.enrollmentRepo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	uc.invalidateReports(ctx)
	return enrollment, nil
}

func (uc *EnrollmentUsecase) GetEnrollmentByID(ctx context.Context, enrollmentID string) (*entity.Enrollment, error) {
	return uc.enrollmentRepo.GetEnrollmentByID(ctx, enrollmentID)
}

func (uc *EnrollmentUsecase) GetStudentEnrollments(ctx context.Context, studentID string) ([]*entity.Enrollment, error) {
	return uc.enrollmentRepo.GetEnrollmentsByStudent(ctx, studentID)
}

// UpdateProgress records the student's progress through the course.
func (uc *EnrollmentUsecase) UpdateProgress(ctx context.Context, enrollmentID string, progress int) error {
	if err := uc.validator.ValidateProgress(progress); err != nil {
		return err
	}
	if err := uc.enrollmentRepo.UpdateProgress(ctx, enrollmentID, progress); err != nil {
		return err
	}
	uc.invalidateReports(ctx)
	return nil
}

// RateCourse records the student's course rating on their enrollment.
func (uc *EnrollmentUsecase) RateCourse(ctx context.Context, enrollmentID string, rating float64) error {
	if err := uc.validator.ValidateRating(rating); err != nil {
		return err
	}
	if err := uc.enrollmentRepo.RateCourse(ctx, enrollmentID, rating); err != nil {
		return err
	}
	uc.invalidateReports(ctx)
	return nil
}

func (uc *EnrollmentUsecase) Unenroll(ctx context.Context, enrollmentID string) error {
	if err := uc.enrollmentRepo.DeleteEnrollment(ctx, enrollmentID); err != nil {
		return err
	}
	uc.invalidateReports(ctx)
	return nil
}

// Submit records a student's work for an assignment.
func (uc *EnrollmentUsecase) Submit(ctx context.Context, submission *entity.Submission) (*entity.Submission, error) {
	if _, err := uc.assignmentRepo.GetAssignmentByID(ctx, submission.AssignmentID); err != nil {
		return nil, errors.New("assignment not found")
	}
	if _, err := uc.userRepo.GetUserByID(ctx, submission.StudentID); err != nil {
		return nil, errors.New("student not found")
	}
	submission.ID = uc.uuidGenerator.NewUUID()
	if err := uc.submissionRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// GradeSubmission sets the grade, bounded by the assignment's max score.
func (uc *EnrollmentUsecase) GradeSubmission(ctx context.Context, submissionID string, grade float64, feedback *string) error {
	submission, err := uc.submissionRepo.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return err
	}
	assignment, err := uc.assignmentRepo.GetAssignmentByID(ctx, submission.AssignmentID)
	if err != nil {
		return errors.New("assignment not found")
	}
	if grade < 0 || grade > assignment.MaxScore {
		return errors.New("grade out of range")
	}
	return uc.submissionRepo.GradeSubmission(ctx, submissionID, grade, feedback)
}
