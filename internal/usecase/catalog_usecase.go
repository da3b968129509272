package usecase

import (
	"context"
	"errors"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// CatalogUsecase implements the ICatalogUseCase interface: courses, lessons,
// and assignments.
type CatalogUsecase struct {
	courseRepo     contract.ICourseRepository
	lessonRepo     contract.ILessonRepository
	assignmentRepo contract.IAssignmentRepository
	userRepo       contract.IUserRepository
	uuidGenerator  contract.IUUIDGenerator
	logger         usecasecontract.IAppLogger
}

// NewCatalogUsecase creates a new CatalogUsecase instance.
func NewCatalogUsecase(
	courseRepo contract.ICourseRepository,
	lessonRepo contract.ILessonRepository,
	assignmentRepo contract.IAssignmentRepository,
	userRepo contract.IUserRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *CatalogUsecase {
	return &CatalogUsecase{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		uuidGenerator:  uuidGenerator,
		logger:         logger,
	}
}

var _ usecasecontract.ICatalogUseCase = (*CatalogUsecase)(nil)

// CreateCourse inserts a new course after checking the instructor exists and
// holds the instructor role.
func (uc *CatalogUsecase) CreateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	instructor, err := uc.userRepo.GetUserByID(ctx, course.InstructorID)
	if err != nil {
		return nil, errors.New("instructor not found")
	}
	if instructor.Role != entity.UserRoleInstructor {
		return nil, errors.New("user is not an instructor")
	}
	course.ID = uc.uuidGenerator.NewUUID()
	course.IsActive = true
	if err := uc.courseRepo.CreateCourse(ctx, course); err != nil {
		uc.logger.Errorf("failed to create course: %v", err)
		return nil, err
	}
	return course, nil
}

func (uc *CatalogUsecase) GetCourseByID(ctx context.Context, courseID string) (*entity.Course, error) {
	return uc.courseRepo.GetCourseByID(ctx, courseID)
}

// SearchCourses applies the filter options; an empty filter matches all.
func (uc *CatalogUsecase) SearchCourses(ctx context.Context, opts *contract.CourseFilterOptions) ([]*entity.Course, int64, error) {
	return uc.courseRepo.SearchCourses(ctx, opts)
}

func (uc *CatalogUsecase) GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error) {
	return uc.courseRepo.GetCoursesByInstructor(ctx, instructorID)
}

// UpdateCourse applies a partial update of the named fields only.
func (uc *CatalogUsecase) UpdateCourse(ctx context.Context, courseID string, updates map[string]interface{}) error {
	allowed := map[string]bool{
		"title":       true,
		"description": true,
		"category":    true,
		"difficulty":  true,
		"duration":    true,
		"price":       true,
	}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return errors.New("no updatable fields provided")
	}
	return uc.courseRepo.UpdateCourse(ctx, courseID, filtered)
}

// AddCourseTags adds tags to a course; duplicates are silently absorbed by
// the set semantics of the update.
func (uc *CatalogUsecase) AddCourseTags(ctx context.Context, courseID string, tags []string) error {
	if len(tags) == 0 {
		return errors.New("no tags provided")
	}
	return uc.courseRepo.AddTags(ctx, courseID, tags)
}

func (uc *CatalogUsecase) PublishCourse(ctx context.Context, courseID string) error {
	return uc.courseRepo.PublishCourse(ctx, courseID)
}

func (uc *CatalogUsecase) DeleteCourse(ctx context.Context, courseID string) error {
	return uc.courseRepo.DeleteCourse(ctx, courseID)
}

// AddLesson appends a lesson to an existing course.
func (uc *CatalogUsecase) AddLesson(ctx context.Context, lesson *entity.Lesson) (*entity.Lesson, error) {
	if _, err := uc.courseRepo.GetCourseByID(ctx, lesson.CourseID); err != nil {
		return nil, errors.New("course not found")
	}
	lesson.ID = uc.uuidGenerator.NewUUID()
	lesson.IsActive = true
	if err := uc.lessonRepo.CreateLesson(ctx, lesson); err != nil {
		uc.logger.Errorf("failed to create lesson: %v", err)
		return nil, err
	}
	return lesson, nil
}

func (uc *CatalogUsecase) GetCourseLessons(ctx context.Context, courseID string) ([]*entity.Lesson, error) {
	return uc.lessonRepo.GetLessonsByCourse(ctx, courseID)
}

func (uc *CatalogUsecase) DeleteLesson(ctx context.Context, lessonID string) error {
	return uc.lessonRepo.DeleteLesson(ctx, lessonID)
}

// CreateAssignment attaches an assignment to an existing course.
func (uc *CatalogUsecase) CreateAssignment(ctx context.Context, assignment *entity.Assignment) (*entity.Assignment, error) {
	if _, err := uc.courseRepo.GetCourseByID(ctx, assignment.CourseID); err != nil {
		return nil, errors.New("course not found")
	}
	assignment.ID = uc.uuidGenerator.NewUUID()
	if err := uc.assignmentRepo.CreateAssignment(ctx, assignment); err != nil {
		uc.logger.Errorf("failed to create assignment: %v", err)
		return nil, err
	}
	return assignment, nil
}

func (uc *CatalogUsecase) GetCourseAssignments(ctx context.Context, courseID string) ([]*entity.Assignment, error) {
	return uc.assignmentRepo.GetAssignmentsByCourse(ctx, courseID)
}

func (uc *CatalogUsecase) DeleteAssignment(ctx context.Context, assignmentID string) error {
	return uc.assignmentRepo.DeleteAssignment(ctx, assignmentID)
}
