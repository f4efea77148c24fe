package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/golf-tracker/internal/domain/handicap"
)

type HandicapRepository struct {
	mu      sync.RWMutex
	current map[string]float64
	history map[string][]handicap.History
}

func NewHandicapRepository() *HandicapRepository {
	return &HandicapRepository{
		current: make(map[string]float64),
		history: make(map[string][]handicap.History),
	}
}

func (r *HandicapRepository) GetCurrent(_ context.Context, userID string) (float64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.current[userID]
	return value, ok, nil
}

// Record appends the entry and moves the snapshot under one lock.
func (r *HandicapRepository) Record(_ context.Context, entry handicap.History) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[entry.UserID] = append(r.history[entry.UserID], entry)
	r.current[entry.UserID] = entry.HandicapIndex
	return nil
}

func (r *HandicapRepository) ListHistory(_ context.Context, userID string, limit int) ([]handicap.History, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.history[userID]
	out := make([]handicap.History, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, items[i])
	}

	return out, nil
}
