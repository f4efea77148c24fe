package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/golf-tracker/internal/domain/statistics"
)

type StatisticsRepository struct {
	mu    sync.RWMutex
	items map[string]statistics.UserStatistics
}

func NewStatisticsRepository() *StatisticsRepository {
	return &StatisticsRepository{items: make(map[string]statistics.UserStatistics)}
}

func (r *StatisticsRepository) Get(_ context.Context, userID string) (statistics.UserStatistics, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	if !ok {
		return statistics.UserStatistics{}, false, nil
	}

	return cloneStatistics(item), true, nil
}

func (r *StatisticsRepository) Replace(_ context.Context, stats statistics.UserStatistics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[stats.UserID] = cloneStatistics(stats)
	return nil
}

func cloneStatistics(item statistics.UserStatistics) statistics.UserStatistics {
	copied := item
	if item.LastRoundAt != nil {
		v := *item.LastRoundAt
		copied.LastRoundAt = &v
	}
	return copied
}
