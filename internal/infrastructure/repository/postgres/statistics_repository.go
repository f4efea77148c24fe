package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/golf-tracker/internal/domain/statistics"
	qb "github.com/riskibarqy/golf-tracker/internal/platform/querybuilder"
)

type StatisticsRepository struct {
	db *sqlx.DB
}

func NewStatisticsRepository(db *sqlx.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) Get(ctx context.Context, userID string) (statistics.UserStatistics, bool, error) {
	query, args, err := qb.Select("*").
		From("user_statistics").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return statistics.UserStatistics{}, false, fmt.Errorf("build get user statistics query: %w", err)
	}

	var row userStatisticsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return statistics.UserStatistics{}, false, nil
		}
		return statistics.UserStatistics{}, false, fmt.Errorf("get user statistics user=%s: %w", userID, err)
	}

	stats, err := statisticsFromRow(row)
	if err != nil {
		return statistics.UserStatistics{}, false, err
	}
	return stats, true, nil
}

// Replace overwrites the whole snapshot row.
func (r *StatisticsRepository) Replace(ctx context.Context, stats statistics.UserStatistics) error {
	model, err := statisticsToUpsertModel(stats)
	if err != nil {
		return err
	}

	query, args, err := qb.UpsertModel("user_statistics", model, "user_id")
	if err != nil {
		return fmt.Errorf("build upsert user statistics query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert user statistics user=%s: %w", stats.UserID, err)
	}

	return nil
}

func statisticsFromRow(row userStatisticsTableModel) (statistics.UserStatistics, error) {
	var counts scoringCountsDocument
	if len(row.ScoringCounts) > 0 {
		if err := jsoniter.Unmarshal(row.ScoringCounts, &counts); err != nil {
			return statistics.UserStatistics{}, fmt.Errorf("decode scoring counts user=%s: %w", row.UserID, err)
		}
	}

	return statistics.UserStatistics{
		UserID:       row.UserID,
		RoundsPlayed: row.RoundsPlayed,
		AverageScore: row.AverageScore,
		BestScore:    row.BestScore,
		WorstScore:   row.WorstScore,
		HolesPlayed:  row.HolesPlayed,
		ScoringCounts: statistics.ScoringCounts{
			EaglesOrBetter: counts.EaglesOrBetter,
			Birdies:        counts.Birdies,
			Pars:           counts.Pars,
			Bogeys:         counts.Bogeys,
			DoubleBogeys:   counts.DoubleBogeys,
			Worse:          counts.Worse,
		},
		FairwayHitPct:        row.FairwayHitPct,
		GreenInRegulationPct: row.GreenInRegulationPct,
		AveragePutts:         row.AveragePutts,
		LongestDrive:         row.LongestDrive,
		FavoriteCourseID:     row.FavoriteCourseID,
		FavoriteCourseName:   row.FavoriteCourseName,
		LastRoundAt:          nullTimeToTimePtr(row.LastRoundAt),
		CalculatedAt:         row.CalculatedAt.UTC(),
	}, nil
}

func statisticsToUpsertModel(stats statistics.UserStatistics) (userStatisticsUpsertModel, error) {
	raw, err := jsoniter.Marshal(scoringCountsDocument{
		EaglesOrBetter: stats.ScoringCounts.EaglesOrBetter,
		Birdies:        stats.ScoringCounts.Birdies,
		Pars:           stats.ScoringCounts.Pars,
		Bogeys:         stats.ScoringCounts.Bogeys,
		DoubleBogeys:   stats.ScoringCounts.DoubleBogeys,
		Worse:          stats.ScoringCounts.Worse,
	})
	if err != nil {
		return userStatisticsUpsertModel{}, fmt.Errorf("encode scoring counts user=%s: %w", stats.UserID, err)
	}

	return userStatisticsUpsertModel{
		UserID:               stats.UserID,
		RoundsPlayed:         stats.RoundsPlayed,
		AverageScore:         stats.AverageScore,
		BestScore:            stats.BestScore,
		WorstScore:           stats.WorstScore,
		HolesPlayed:          stats.HolesPlayed,
		ScoringCounts:        string(raw),
		FairwayHitPct:        stats.FairwayHitPct,
		GreenInRegulationPct: stats.GreenInRegulationPct,
		AveragePutts:         stats.AveragePutts,
		LongestDrive:         stats.LongestDrive,
		FavoriteCourseID:     stats.FavoriteCourseID,
		FavoriteCourseName:   stats.FavoriteCourseName,
		LastRoundAt:          timePtrToNullTime(stats.LastRoundAt),
		CalculatedAt:         stats.CalculatedAt.UTC(),
	}, nil
}
