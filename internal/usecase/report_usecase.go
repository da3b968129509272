package usecase

import (
	"context"
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/metrics"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// ReportUsecase implements the IReportUseCase interface. All operations are
// read-only; results flow straight from the store's aggregation pipelines,
// optionally through the report cache.
type ReportUsecase struct {
	reportRepo     contract.IReportRepository
	assignmentRepo contract.IAssignmentRepository
	config         usecasecontract.IConfigProvider
	logger         usecasecontract.IAppLogger
	reportCache    contract.IReportCache // optional, set via SetReportCache
}

// NewReportUsecase creates a new ReportUsecase instance.
func NewReportUsecase(
	reportRepo contract.IReportRepository,
	assignmentRepo contract.IAssignmentRepository,
	cfg usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *ReportUsecase {
	return &ReportUsecase{
		reportRepo:     reportRepo,
		assignmentRepo: assignmentRepo,
		config:         cfg,
		logger:         logger,
	}
}

var _ usecasecontract.IReportUseCase = (*ReportUsecase)(nil)

// SetReportCache wires the optional report cache.
func (uc *ReportUsecase) SetReportCache(cache contract.IReportCache) {
	uc.reportCache = cache
}

func (uc *ReportUsecase) StudentsInCourse(ctx context.Context, courseID string) ([]*entity.EnrolledStudent, error) {
	return uc.reportRepo.StudentsInCourse(ctx, courseID)
}

// CompletionRates returns the completed/total ratio per course, from cache
// when a fresh payload is available.
func (uc *ReportUsecase) CompletionRates(ctx context.Context) ([]*entity.CourseCompletion, error) {
	if uc.reportCache != nil {
		rows, ok, err := uc.reportCache.GetCompletionRates(ctx)
		if err != nil {
			uc.logger.Warnf("report cache read failed: %v", err)
		}
		if ok {
			metrics.ReportCacheHits.WithLabelValues("completion_rates", "hit").Inc()
			return rows, nil
		}
		metrics.ReportCacheHits.WithLabelValues("completion_rates", "miss").Inc()
	}
	rows, err := uc.reportRepo.CompletionRates(ctx)
	if err != nil {
		return nil, err
	}
	if uc.reportCache != nil {
		if err := uc.reportCache.SetCompletionRates(ctx, rows); err != nil {
			uc.logger.Warnf("report cache write failed: %v", err)
		}
	}
	return rows, nil
}

// CompletionRateForCourse returns the rate for a single course. A course with
// no enrollments never appears in the grouped output, so it reports a zero
// rate over zero enrollments rather than an error.
func (uc *ReportUsecase) CompletionRateForCourse(ctx context.Context, courseID string) (*entity.CourseCompletion, error) {
	rows, err := uc.CompletionRates(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.CourseID == courseID {
			return row, nil
		}
	}
	return &entity.CourseCompletion{CourseID: courseID, Total: 0, Completed: 0, Rate: 0}, nil
}

// AverageRatings returns the mean rating per course; a course with no rated
// enrollment carries a nil average, distinguishing "no data" from zero.
func (uc *ReportUsecase) AverageRatings(ctx context.Context) ([]*entity.CourseRating, error) {
	if uc.reportCache != nil {
		rows, ok, err := uc.reportCache.GetAverageRatings(ctx)
		if err != nil {
			uc.logger.Warnf("report cache read failed: %v", err)
		}
		if ok {
			metrics.ReportCacheHits.WithLabelValues("average_ratings", "hit").Inc()
			return rows, nil
		}
		metrics.ReportCacheHits.WithLabelValues("average_ratings", "miss").Inc()
	}
	rows, err := uc.reportRepo.AverageRatings(ctx)
	if err != nil {
		return nil, err
	}
	if uc.reportCache != nil {
		if err := uc.reportCache.SetAverageRatings(ctx, rows); err != nil {
			uc.logger.Warnf("report cache write failed: %v", err)
		}
	}
	return rows, nil
}

func (uc *ReportUsecase) TopRatedCourses(ctx context.Context, limit int) ([]*entity.CourseRating, error) {
	if limit <= 0 {
		limit = 5
	}
	return uc.reportRepo.TopRatedCourses(ctx, limit)
}

func (uc *ReportUsecase) RatingsByCategory(ctx context.Context) ([]*entity.CategoryRating, error) {
	return uc.reportRepo.RatingsByCategory(ctx)
}

func (uc *ReportUsecase) EnrollmentCounts(ctx context.Context) ([]*entity.CourseEnrollmentCount, error) {
	return uc.reportRepo.EnrollmentCounts(ctx)
}

func (uc *ReportUsecase) AverageGrades(ctx context.Context) ([]*entity.StudentGrade, error) {
	return uc.reportRepo.AverageGrades(ctx)
}

// UpcomingAssignments returns assignments due within [now, now+window),
// ascending by due date.
func (uc *ReportUsecase) UpcomingAssignments(ctx context.Context) ([]*entity.Assignment, error) {
	now := time.Now()
	return uc.assignmentRepo.GetAssignmentsDueBetween(ctx, now, now.Add(uc.config.GetUpcomingAssignmentWindow()))
}

func (uc *ReportUsecase) OverdueStudents(ctx context.Context) ([]*entity.OverdueStudent, error) {
	return uc.reportRepo.OverdueStudents(ctx, time.Now())
}
