package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/golf-tracker/internal/domain/round"
	"github.com/riskibarqy/golf-tracker/internal/platform/logging"
)

const (
	DefaultRecomputeWorkers = 4
	MaxRecomputeWorkers     = 32

	RecomputeStatusUpdated      = "updated"
	RecomputeStatusInsufficient = "insufficient"
	RecomputeStatusFailed       = "failed"
)

type RecomputeInput struct {
	// UserIDs limits the run; empty means every user with a completed round.
	UserIDs        []string
	Workers        int
	SkipStatistics bool
}

type RecomputeResult struct {
	UserCount         int                   `json:"user_count"`
	WorkerCount       int                   `json:"worker_count"`
	UpdatedCount      int                   `json:"updated_count"`
	InsufficientCount int                   `json:"insufficient_count"`
	FailedCount       int                   `json:"failed_count"`
	Users             []RecomputeUserResult `json:"users"`
}

type RecomputeUserResult struct {
	UserID        string   `json:"user_id"`
	Status        string   `json:"status"`
	HandicapIndex *float64 `json:"handicap_index,omitempty"`
	RoundsPlayed  int      `json:"rounds_played"`
	DurationMs    int64    `json:"duration_ms"`
	Message       string   `json:"message,omitempty"`
}

type RecomputeService struct {
	roundRepo      round.Repository
	handicaps      *HandicapService
	statistics     *StatisticsService
	defaultWorkers int
	logger         *logging.Logger
}

func NewRecomputeService(
	roundRepo round.Repository,
	handicaps *HandicapService,
	statistics *StatisticsService,
	defaultWorkers int,
	logger *logging.Logger,
) *RecomputeService {
	if defaultWorkers <= 0 {
		defaultWorkers = DefaultRecomputeWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &RecomputeService{
		roundRepo:      roundRepo,
		handicaps:      handicaps,
		statistics:     statistics,
		defaultWorkers: defaultWorkers,
		logger:         logger,
	}
}

// Run recomputes handicap and statistics for a batch of users. Each user is processed
// once; a failure for one user is reported in its row and does not stop the batch.
func (s *RecomputeService) Run(ctx context.Context, input RecomputeInput) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.Run",
		attribute.Int("golf.recompute.requested_users", len(input.UserIDs)),
		attribute.Bool("golf.recompute.skip_statistics", input.SkipStatistics),
	)
	defer span.End()

	userIDs, err := s.resolveUsers(ctx, input.UserIDs)
	if err != nil {
		return RecomputeResult{}, err
	}

	workerCount := normalizeRecomputeWorkerCount(input.Workers, s.defaultWorkers, len(userIDs))
	result := RecomputeResult{
		UserCount:   len(userIDs),
		WorkerCount: workerCount,
		Users:       make([]RecomputeUserResult, 0, len(userIDs)),
	}
	if len(userIDs) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan RecomputeUserResult, len(userIDs))

	var updatedCount atomic.Int32
	var insufficientCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, userID := range userIDs {
		userID := userID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row := s.recomputeUser(ctx, userID, input.SkipStatistics)
			switch row.Status {
			case RecomputeStatusUpdated:
				updatedCount.Add(1)
			case RecomputeStatusInsufficient:
				insufficientCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return RecomputeResult{}, fmt.Errorf("submit user to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Users = append(result.Users, row)
	}
	sort.Slice(result.Users, func(i, j int) bool {
		return result.Users[i].UserID < result.Users[j].UserID
	})

	result.UpdatedCount = int(updatedCount.Load())
	result.InsufficientCount = int(insufficientCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "recompute batch finished",
		"users", result.UserCount,
		"workers", result.WorkerCount,
		"updated", result.UpdatedCount,
		"insufficient", result.InsufficientCount,
		"failed", result.FailedCount,
	)

	return result, nil
}

func (s *RecomputeService) recomputeUser(ctx context.Context, userID string, skipStatistics bool) RecomputeUserResult {
	start := time.Now()
	row := RecomputeUserResult{UserID: userID, Status: RecomputeStatusUpdated}

	entry, updated, err := s.handicaps.UpdateFromRounds(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "recompute handicap failed", "user_id", userID, "error", err)
		row.Status = RecomputeStatusFailed
		row.Message = err.Error()
		row.DurationMs = time.Since(start).Milliseconds()
		return row
	}
	if updated {
		index := entry.HandicapIndex
		row.HandicapIndex = &index
	} else {
		row.Status = RecomputeStatusInsufficient
	}

	if !skipStatistics {
		stats, err := s.statistics.CalculateUserStatistics(ctx, userID)
		if err != nil {
			s.logger.WarnContext(ctx, "recompute statistics failed", "user_id", userID, "error", err)
			row.Status = RecomputeStatusFailed
			row.Message = err.Error()
			row.DurationMs = time.Since(start).Milliseconds()
			return row
		}
		row.RoundsPlayed = stats.RoundsPlayed
	}

	row.DurationMs = time.Since(start).Milliseconds()
	return row
}

func (s *RecomputeService) resolveUsers(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) == 0 {
		userIDs, err := s.roundRepo.ListUserIDsWithCompletedRounds(ctx)
		if err != nil {
			return nil, fmt.Errorf("list users with completed rounds: %w", err)
		}
		requested = userIDs
	}

	seen := make(map[string]struct{}, len(requested))
	out := make([]string, 0, len(requested))
	for _, userID := range requested {
		userID = strings.TrimSpace(userID)
		if userID == "" {
			continue
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		out = append(out, userID)
	}
	sort.Strings(out)

	return out, nil
}

func normalizeRecomputeWorkerCount(value, fallback, userCount int) int {
	if userCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = fallback
	}
	if value > MaxRecomputeWorkers {
		value = MaxRecomputeWorkers
	}
	if value > userCount {
		value = userCount
	}
	return value
}
