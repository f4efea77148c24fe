package statistics

import "context"

type Repository interface {
	Get(ctx context.Context, userID string) (UserStatistics, bool, error)
	Replace(ctx context.Context, stats UserStatistics) error
}
