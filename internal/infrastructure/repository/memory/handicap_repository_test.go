package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/handicap"
)

func historyFixture(userID string, value float64) handicap.History {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return handicap.History{
		ID:                "h-" + userID,
		UserID:            userID,
		HandicapIndex:     value,
		EffectiveDate:     now,
		CalculationMethod: handicap.MethodUSGA,
		CreatedAt:         now,
	}
}

func TestHandicapRepository_RecordAndHistoryOrder(t *testing.T) {
	t.Parallel()

	repo := NewHandicapRepository()
	ctx := context.Background()

	if _, ok, _ := repo.GetCurrent(ctx, "u1"); ok {
		t.Fatalf("expected no current handicap")
	}

	for i, value := range []float64{18.2, 17.9, 17.4} {
		entry := historyFixture("u1", value)
		entry.ID = string(rune('a' + i))
		if err := repo.Record(ctx, entry); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	current, ok, err := repo.GetCurrent(ctx, "u1")
	if err != nil || !ok || current != 17.4 {
		t.Fatalf("unexpected current: value=%v ok=%v err=%v", current, ok, err)
	}

	items, err := repo.ListHistory(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(items) != 2 || items[0].ID != "c" || items[1].ID != "b" {
		t.Fatalf("unexpected history order: %+v", items)
	}
}
