package statistics

import (
	"testing"
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/round"
)

func TestMonthlyTrends_SingleRoundTwoMonthsAgo(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	rounds := []round.CompletedRound{
		{RoundID: "r1", PlayedAt: time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC), TotalScore: 90},
	}

	got := MonthlyTrends(rounds, now, 3)
	want := []MonthlyTrend{
		{Month: "2025-05", Label: "May 2025", Rounds: 1, AverageScore: 90},
		{Month: "2025-06", Label: "Jun 2025"},
		{Month: "2025-07", Label: "Jul 2025"},
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestMonthlyTrends_AlwaysReturnsRequestedBuckets(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 31, 23, 0, 0, 0, time.UTC)
	for _, months := range []int{1, 6, 13, 24} {
		got := MonthlyTrends(nil, now, months)
		if len(got) != months {
			t.Fatalf("months=%d: expected %d buckets, got %d", months, months, len(got))
		}
		if got[len(got)-1].Label != "Jan 2026" {
			t.Fatalf("months=%d: expected current month last, got %s", months, got[len(got)-1].Label)
		}
	}

	got := MonthlyTrends(nil, now, 13)
	if got[0].Label != "Jan 2025" {
		t.Fatalf("expected first bucket Jan 2025, got %s", got[0].Label)
	}
}

func TestMonthlyTrends_AveragesWithinMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	rounds := []round.CompletedRound{
		{PlayedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), TotalScore: 80},
		{PlayedAt: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), TotalScore: 85},
		{PlayedAt: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), TotalScore: 70},
	}

	got := MonthlyTrends(rounds, now, 2)
	if got[1].Rounds != 2 || got[1].AverageScore != 82.5 {
		t.Fatalf("unexpected current month: %+v", got[1])
	}
	if got[0].Rounds != 0 || got[0].AverageScore != 0 {
		t.Fatalf("round from last year leaked into window: %+v", got[0])
	}
}

func TestTrendCutoff_ClampsDay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		now    time.Time
		months int
		want   time.Time
	}{
		{time.Date(2026, time.March, 31, 10, 0, 0, 0, time.UTC), 1, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, time.March, 31, 10, 0, 0, 0, time.UTC), 1, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC), 3, time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.July, 15, 10, 0, 0, 0, time.UTC), 24, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		if got := TrendCutoff(tc.now, tc.months); !got.Equal(tc.want) {
			t.Fatalf("TrendCutoff(%v, %d) = %v, want %v", tc.now, tc.months, got, tc.want)
		}
	}
}
