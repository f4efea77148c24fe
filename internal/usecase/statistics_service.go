package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/round"
	"github.com/riskibarqy/golf-tracker/internal/domain/statistics"
	"github.com/riskibarqy/golf-tracker/internal/platform/logging"
	"github.com/riskibarqy/golf-tracker/internal/platform/metrics"
)

type StatisticsConfig struct {
	DefaultTrendMonths int
}

type StatisticsService struct {
	roundRepo round.Repository
	statsRepo statistics.Repository
	cfg       StatisticsConfig
	metrics   metrics.Recorder
	logger    *logging.Logger
	now       func() time.Time
}

func NewStatisticsService(
	roundRepo round.Repository,
	statsRepo statistics.Repository,
	cfg StatisticsConfig,
	recorder metrics.Recorder,
	logger *logging.Logger,
) *StatisticsService {
	if cfg.DefaultTrendMonths < statistics.MinTrendMonths || cfg.DefaultTrendMonths > statistics.MaxTrendMonths {
		cfg.DefaultTrendMonths = statistics.DefaultTrendMonths
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &StatisticsService{
		roundRepo: roundRepo,
		statsRepo: statsRepo,
		cfg:       cfg,
		metrics:   recorder,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *StatisticsService) GetCourseStatisticsForUser(ctx context.Context, userID string) ([]statistics.CourseSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetCourseStatisticsForUser", userAttr(userID))
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	rounds, err := s.roundRepo.ListCompletedByUser(ctx, userID, round.CompletedQuery{})
	if err != nil {
		return nil, fmt.Errorf("list completed rounds: %w", err)
	}

	return statistics.SummarizeCourses(rounds), nil
}

// GetHoleStatisticsForUser summarizes every hole the user played, optionally limited
// to one course when courseID is not empty.
func (s *StatisticsService) GetHoleStatisticsForUser(ctx context.Context, userID, courseID string) ([]statistics.HoleSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetHoleStatisticsForUser", userAttr(userID))
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	scores, err := s.roundRepo.ListHoleScoresByUser(ctx, userID, strings.TrimSpace(courseID))
	if err != nil {
		return nil, fmt.Errorf("list hole scores: %w", err)
	}

	return statistics.SummarizeHoles(scores), nil
}

// CalculateUserStatistics recomputes the snapshot from the full history and replaces
// the stored one.
func (s *StatisticsService) CalculateUserStatistics(ctx context.Context, userID string) (statistics.UserStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.CalculateUserStatistics", userAttr(userID))
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return statistics.UserStatistics{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	start := time.Now()
	defer func() {
		s.metrics.ObserveRecomputeDuration("statistics", time.Since(start))
	}()

	stats, err := s.calculate(ctx, userID)
	if err != nil {
		s.metrics.IncStatisticsRecompute(metrics.OutcomeError)
		return statistics.UserStatistics{}, err
	}

	s.metrics.IncStatisticsRecompute(metrics.OutcomeUpdated)
	s.logger.InfoContext(ctx, "user statistics recalculated",
		"user_id", userID,
		"rounds_played", stats.RoundsPlayed,
		"holes_played", stats.HolesPlayed,
	)
	return stats, nil
}

func (s *StatisticsService) calculate(ctx context.Context, userID string) (statistics.UserStatistics, error) {
	rounds, err := s.roundRepo.ListCompletedByUser(ctx, userID, round.CompletedQuery{})
	if err != nil {
		return statistics.UserStatistics{}, fmt.Errorf("list completed rounds: %w", err)
	}
	holes, err := s.roundRepo.ListHoleScoresByUser(ctx, userID, "")
	if err != nil {
		return statistics.UserStatistics{}, fmt.Errorf("list hole scores: %w", err)
	}

	stats := statistics.Compute(userID, rounds, holes, s.now().UTC())
	if err := s.statsRepo.Replace(ctx, stats); err != nil {
		return statistics.UserStatistics{}, fmt.Errorf("replace user statistics: %w", err)
	}

	return stats, nil
}

// GetUserStatistics reads the stored snapshot. A missing snapshot is computed once and
// read again; a second miss means the store did not keep the write.
func (s *StatisticsService) GetUserStatistics(ctx context.Context, userID string) (statistics.UserStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetUserStatistics", userAttr(userID))
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return statistics.UserStatistics{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	stats, exists, err := s.statsRepo.Get(ctx, userID)
	if err != nil {
		return statistics.UserStatistics{}, fmt.Errorf("get user statistics: %w", err)
	}
	if exists {
		return stats, nil
	}

	if _, err := s.CalculateUserStatistics(ctx, userID); err != nil {
		return statistics.UserStatistics{}, err
	}

	stats, exists, err = s.statsRepo.Get(ctx, userID)
	if err != nil {
		return statistics.UserStatistics{}, fmt.Errorf("get user statistics after recompute: %w", err)
	}
	if !exists {
		s.logger.ErrorContext(ctx, "user statistics missing after recompute", "user_id", userID)
		return statistics.UserStatistics{}, fmt.Errorf("%w: statistics for user=%s missing after recompute", ErrInconsistentState, userID)
	}

	return stats, nil
}

// GetRecentTrends returns exactly monthsBack monthly buckets ending with the current
// month. Zero selects the configured default.
func (s *StatisticsService) GetRecentTrends(ctx context.Context, userID string, monthsBack int) ([]statistics.MonthlyTrend, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetRecentTrends", userAttr(userID))
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if monthsBack == 0 {
		monthsBack = s.cfg.DefaultTrendMonths
	}
	if monthsBack < statistics.MinTrendMonths || monthsBack > statistics.MaxTrendMonths {
		return nil, fmt.Errorf("%w: months must be between %d and %d", ErrInvalidInput, statistics.MinTrendMonths, statistics.MaxTrendMonths)
	}

	now := s.now().UTC()
	rounds, err := s.roundRepo.ListCompletedByUser(ctx, userID, round.CompletedQuery{
		Since: statistics.TrendCutoff(now, monthsBack),
	})
	if err != nil {
		return nil, fmt.Errorf("list completed rounds: %w", err)
	}

	return statistics.MonthlyTrends(rounds, now, monthsBack), nil
}
