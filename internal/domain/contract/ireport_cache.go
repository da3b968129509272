package contract

import (
	"context"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// IReportCache defines caching operations for report results. Results are
// cached as whole payloads keyed per report and invalidated together when an
// enrollment write lands.
type IReportCache interface {
	GetCompletionRates(ctx context.Context) ([]*entity.CourseCompletion, bool, error)
	SetCompletionRates(ctx context.Context, rows []*entity.CourseCompletion) error

	GetAverageRatings(ctx context.Context) ([]*entity.CourseRating, bool, error)
	SetAverageRatings(ctx context.Context, rows []*entity.CourseRating) error

	InvalidateReports(ctx context.Context) error
}
