package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

type stubReportRepo struct {
	completions []*entity.CourseCompletion
	ratings     []*entity.CourseRating
	calls       int
}

func (s *stubReportRepo) StudentsInCourse(ctx context.Context, courseID string) ([]*entity.EnrolledStudent, error) {
	return nil, nil
}

func (s *stubReportRepo) CompletionRates(ctx context.Context) ([]*entity.CourseCompletion, error) {
	s.calls++
	return s.completions, nil
}

func (s *stubReportRepo) AverageRatings(ctx context.Context) ([]*entity.CourseRating, error) {
	s.calls++
	return s.ratings, nil
}

func (s *stubReportRepo) TopRatedCourses(ctx context.Context, limit int) ([]*entity.CourseRating, error) {
	if limit < len(s.ratings) {
		return s.ratings[:limit], nil
	}
	return s.ratings, nil
}

func (s *stubReportRepo) RatingsByCategory(ctx context.Context) ([]*entity.CategoryRating, error) {
	return nil, nil
}

func (s *stubReportRepo) EnrollmentCounts(ctx context.Context) ([]*entity.CourseEnrollmentCount, error) {
	return nil, nil
}

func (s *stubReportRepo) AverageGrades(ctx context.Context) ([]*entity.StudentGrade, error) {
	return nil, nil
}

func (s *stubReportRepo) OverdueStudents(ctx context.Context, now time.Time) ([]*entity.OverdueStudent, error) {
	return nil, nil
}

type stubAssignmentRepo struct {
	from, to time.Time
	rows     []*entity.Assignment
}

func (s *stubAssignmentRepo) CreateAssignment(ctx context.Context, assignment *entity.Assignment) error {
	return nil
}

func (s *stubAssignmentRepo) GetAssignmentByID(ctx context.Context, assignmentID string) (*entity.Assignment, error) {
	return nil, entity.ErrNotFound
}

func (s *stubAssignmentRepo) GetAssignmentsByCourse(ctx context.Context, courseID string) ([]*entity.Assignment, error) {
	return nil, nil
}

func (s *stubAssignmentRepo) GetAssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]*entity.Assignment, error) {
	s.from, s.to = from, to
	return s.rows, nil
}

func (s *stubAssignmentRepo) DeleteAssignment(ctx context.Context, assignmentID string) error {
	return nil
}

type stubConfig struct {
	upcomingWindow time.Duration
}

func (s *stubConfig) GetUpcomingAssignmentWindow() time.Duration { return s.upcomingWindow }
func (s *stubConfig) GetRecentJoinWindow() time.Duration         { return 180 * 24 * time.Hour }
func (s *stubConfig) GetAccessTokenExpiry() time.Duration        { return time.Hour }
func (s *stubConfig) GetReportCacheTTL() time.Duration           { return 10 * time.Minute }

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

func TestCompletionRateForCourse(t *testing.T) {
	repo := &stubReportRepo{
		completions: []*entity.CourseCompletion{
			{CourseID: "crs-1", Total: 2, Completed: 1, Rate: 0.5},
		},
	}
	uc := NewReportUsecase(repo, &stubAssignmentRepo{}, &stubConfig{}, nopLogger{})

	row, err := uc.CompletionRateForCourse(context.Background(), "crs-1")
	require.NoError(t, err)
	assert.Equal(t, 0.5, row.Rate)
	assert.Equal(t, int64(2), row.Total)
}

func TestCompletionRateForCourse_NoEnrollments(t *testing.T) {
	repo := &stubReportRepo{}
	uc := NewReportUsecase(repo, &stubAssignmentRepo{}, &stubConfig{}, nopLogger{})

	// a course absent from the grouped output reports a zero rate, not an error
	row, err := uc.CompletionRateForCourse(context.Background(), "crs-empty")
	require.NoError(t, err)
	assert.Equal(t, "crs-empty", row.CourseID)
	assert.Equal(t, int64(0), row.Total)
	assert.Equal(t, 0.0, row.Rate)
}

func TestUpcomingAssignmentsUsesConfiguredWindow(t *testing.T) {
	assignmentRepo := &stubAssignmentRepo{
		rows: []*entity.Assignment{{ID: "asg-1"}},
	}
	uc := NewReportUsecase(&stubReportRepo{}, assignmentRepo, &stubConfig{upcomingWindow: 7 * 24 * time.Hour}, nopLogger{})

	rows, err := uc.UpcomingAssignments(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.WithinDuration(t, assignmentRepo.from.Add(7*24*time.Hour), assignmentRepo.to, time.Second)
}

func TestTopRatedCoursesDefaultsLimit(t *testing.T) {
	avg := 4.5
	repo := &stubReportRepo{
		ratings: []*entity.CourseRating{{CourseID: "crs-1", AverageRating: &avg, RatingCount: 1}},
	}
	uc := NewReportUsecase(repo, &stubAssignmentRepo{}, &stubConfig{}, nopLogger{})

	rows, err := uc.TopRatedCourses(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
