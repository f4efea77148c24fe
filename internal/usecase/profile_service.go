package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/golf-tracker/internal/domain/statistics"
)

type PlayerProfile struct {
	UserID        string
	HandicapIndex *float64
	Statistics    statistics.UserStatistics
	Trends        []statistics.MonthlyTrend
}

type ProfileService struct {
	handicaps  *HandicapService
	statistics *StatisticsService
}

func NewProfileService(handicaps *HandicapService, statistics *StatisticsService) *ProfileService {
	return &ProfileService{
		handicaps:  handicaps,
		statistics: statistics,
	}
}

// Get loads the current handicap, the statistics snapshot and recent trends
// concurrently. The first failure cancels the remaining reads.
func (s *ProfileService) Get(ctx context.Context, userID string, monthsBack int) (PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Get", userAttr(userID))
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return PlayerProfile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	profile := PlayerProfile{UserID: userID}
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()

	p.Go(func(ctx context.Context) error {
		value, exists, err := s.handicaps.GetCurrent(ctx, userID)
		if err != nil {
			return err
		}
		if exists {
			profile.HandicapIndex = &value
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		stats, err := s.statistics.GetUserStatistics(ctx, userID)
		if err != nil {
			return err
		}
		profile.Statistics = stats
		return nil
	})
	p.Go(func(ctx context.Context) error {
		trends, err := s.statistics.GetRecentTrends(ctx, userID, monthsBack)
		if err != nil {
			return err
		}
		profile.Trends = trends
		return nil
	})

	if err := p.Wait(); err != nil {
		return PlayerProfile{}, fmt.Errorf("load profile: %w", err)
	}

	return profile, nil
}
