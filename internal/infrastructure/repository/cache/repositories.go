package cache

import (
	"context"

	"github.com/riskibarqy/golf-tracker/internal/domain/handicap"
	"github.com/riskibarqy/golf-tracker/internal/domain/statistics"
	basecache "github.com/riskibarqy/golf-tracker/internal/platform/cache"
)

// HandicapRepository caches current-handicap lookups. History listing is always read
// through since it is paged by the caller.
type HandicapRepository struct {
	next  handicap.Repository
	cache *basecache.Store
}

func NewHandicapRepository(next handicap.Repository, cache *basecache.Store) *HandicapRepository {
	return &HandicapRepository{next: next, cache: cache}
}

func (r *HandicapRepository) GetCurrent(ctx context.Context, userID string) (float64, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, currentHandicapKey(userID), func(ctx context.Context) (any, error) {
		value, exists, err := r.next.GetCurrent(ctx, userID)
		if err != nil {
			return nil, err
		}
		return cachedHandicap{value: value, exists: exists}, nil
	})
	if err != nil {
		return 0, false, err
	}

	cached, _ := v.(cachedHandicap)
	return cached.value, cached.exists, nil
}

func (r *HandicapRepository) Record(ctx context.Context, entry handicap.History) error {
	defer r.cache.Invalidate(ctx, currentHandicapKey(entry.UserID))
	return r.next.Record(ctx, entry)
}

func (r *HandicapRepository) ListHistory(ctx context.Context, userID string, limit int) ([]handicap.History, error) {
	return r.next.ListHistory(ctx, userID, limit)
}

type cachedHandicap struct {
	value  float64
	exists bool
}

func currentHandicapKey(userID string) string {
	return "handicap:current:" + userID
}

type StatisticsRepository struct {
	next  statistics.Repository
	cache *basecache.Store
}

func NewStatisticsRepository(next statistics.Repository, cache *basecache.Store) *StatisticsRepository {
	return &StatisticsRepository{next: next, cache: cache}
}

// Get caches hits only, so the self-healing read path always sees a fresh miss.
func (r *StatisticsRepository) Get(ctx context.Context, userID string) (statistics.UserStatistics, bool, error) {
	key := statisticsKey(userID)
	if v, ok := r.cache.Get(ctx, key); ok {
		if stats, ok := v.(statistics.UserStatistics); ok {
			return copyStatistics(stats), true, nil
		}
	}

	version := r.cache.Version(key)
	stats, exists, err := r.next.Get(ctx, userID)
	if err != nil {
		return statistics.UserStatistics{}, false, err
	}
	if !exists {
		return statistics.UserStatistics{}, false, nil
	}

	// a Replace that landed during the read has bumped the version
	r.cache.SetIfVersion(ctx, key, copyStatistics(stats), version)
	return stats, true, nil
}

func (r *StatisticsRepository) Replace(ctx context.Context, stats statistics.UserStatistics) error {
	defer r.cache.Invalidate(ctx, statisticsKey(stats.UserID))
	return r.next.Replace(ctx, stats)
}

func statisticsKey(userID string) string {
	return "statistics:user:" + userID
}

func copyStatistics(stats statistics.UserStatistics) statistics.UserStatistics {
	if stats.LastRoundAt != nil {
		last := *stats.LastRoundAt
		stats.LastRoundAt = &last
	}
	return stats
}
