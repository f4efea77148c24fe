package round

import "context"

type Repository interface {
	ListCompletedByUser(ctx context.Context, userID string, query CompletedQuery) ([]CompletedRound, error)
	ListHoleScoresByUser(ctx context.Context, userID, courseID string) ([]HoleScore, error)
	ListUserIDsWithCompletedRounds(ctx context.Context) ([]string, error)
}
