package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

const (
	completionRatesKey = "reports:completion_rates"
	averageRatingsKey  = "reports:average_ratings"
)

// ReportCacheStore caches whole report payloads in Redis. Enrollment writes
// invalidate every report key at once; stale entries also age out via TTL.
type ReportCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IReportCache = (*ReportCacheStore)(nil)

func NewReportCacheStore(rdb *redis.Client, ttl time.Duration) *ReportCacheStore {
	return &ReportCacheStore{rdb: rdb, ttl: ttl}
}

func (c *ReportCacheStore) GetCompletionRates(ctx context.Context) ([]*entity.CourseCompletion, bool, error) {
	b, err := c.rdb.Get(ctx, completionRatesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var rows []*entity.CourseCompletion
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, false, nil
	}
	return rows, true, nil
}

func (c *ReportCacheStore) SetCompletionRates(ctx context.Context, rows []*entity.CourseCompletion) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, completionRatesKey, data, c.ttl).Err()
}

func (c *ReportCacheStore) GetAverageRatings(ctx context.Context) ([]*entity.CourseRating, bool, error) {
	b, err := c.rdb.Get(ctx, averageRatingsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var rows []*entity.CourseRating
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, false, nil
	}
	return rows, true, nil
}

func (c *ReportCacheStore) SetAverageRatings(ctx context.Context, rows []*entity.CourseRating) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, averageRatingsKey, data, c.ttl).Err()
}

func (c *ReportCacheStore) InvalidateReports(ctx context.Context) error {
	return c.rdb.Del(ctx, completionRatesKey, averageRatingsKey).Err()
}
