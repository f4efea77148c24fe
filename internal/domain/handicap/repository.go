package handicap

import "context"

type Repository interface {
	// GetCurrent returns the denormalized current handicap of a user.
	GetCurrent(ctx context.Context, userID string) (float64, bool, error)
	// Record appends a history entry and moves the current snapshot to it atomically.
	Record(ctx context.Context, entry History) error
	ListHistory(ctx context.Context, userID string, limit int) ([]History, error)
}
