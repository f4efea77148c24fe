package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/riskibarqy/golf-tracker/internal/domain/statistics"
)

func TestStatisticsRowMapping_RoundTrip(t *testing.T) {
	last := time.Date(2026, 4, 20, 8, 0, 0, 0, time.UTC)
	stats := statistics.UserStatistics{
		UserID:               "u1",
		RoundsPlayed:         12,
		AverageScore:         88.25,
		BestScore:            79,
		WorstScore:           97,
		HolesPlayed:          216,
		ScoringCounts:        statistics.ScoringCounts{Birdies: 9, Pars: 80, Bogeys: 90, DoubleBogeys: 30, Worse: 7},
		FairwayHitPct:        54.2,
		GreenInRegulationPct: 31.5,
		AveragePutts:         33.1,
		LongestDrive:         284,
		FavoriteCourseID:     "idn-pondok-indah",
		FavoriteCourseName:   "Pondok Indah Golf Course",
		LastRoundAt:          &last,
		CalculatedAt:         last.Add(time.Hour),
	}

	model, err := statisticsToUpsertModel(stats)
	if err != nil {
		t.Fatalf("to upsert model: %v", err)
	}
	if !strings.Contains(model.ScoringCounts, `"double_bogeys":30`) {
		t.Fatalf("unexpected scoring counts document: %s", model.ScoringCounts)
	}

	row := userStatisticsTableModel{
		UserID:               model.UserID,
		RoundsPlayed:         model.RoundsPlayed,
		AverageScore:         model.AverageScore,
		BestScore:            model.BestScore,
		WorstScore:           model.WorstScore,
		HolesPlayed:          model.HolesPlayed,
		ScoringCounts:        []byte(model.ScoringCounts),
		FairwayHitPct:        model.FairwayHitPct,
		GreenInRegulationPct: model.GreenInRegulationPct,
		AveragePutts:         model.AveragePutts,
		LongestDrive:         model.LongestDrive,
		FavoriteCourseID:     model.FavoriteCourseID,
		FavoriteCourseName:   model.FavoriteCourseName,
		LastRoundAt:          model.LastRoundAt,
		CalculatedAt:         model.CalculatedAt,
	}
	got, err := statisticsFromRow(row)
	if err != nil {
		t.Fatalf("from row: %v", err)
	}

	if diff := cmp.Diff(stats, got); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestStatisticsFromRow_RejectsCorruptCounts(t *testing.T) {
	_, err := statisticsFromRow(userStatisticsTableModel{UserID: "u1", ScoringCounts: []byte("{not json")})
	if err == nil {
		t.Fatalf("expected decode error")
	}
}
