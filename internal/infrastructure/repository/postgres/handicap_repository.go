package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/golf-tracker/internal/domain/handicap"
	qb "github.com/riskibarqy/golf-tracker/internal/platform/querybuilder"
)

type HandicapRepository struct {
	db *sqlx.DB
}

func NewHandicapRepository(db *sqlx.DB) *HandicapRepository {
	return &HandicapRepository{db: db}
}

func (r *HandicapRepository) GetCurrent(ctx context.Context, userID string) (float64, bool, error) {
	query, args, err := currentHandicapQuery(userID)
	if err != nil {
		return 0, false, fmt.Errorf("build get current handicap query: %w", err)
	}

	var value float64
	if err := r.db.GetContext(ctx, &value, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get current handicap user=%s: %w", userID, err)
	}

	return value, true, nil
}

// Record appends the history row and repoints the user's snapshot at it in one
// transaction, so readers never see one without the other.
func (r *HandicapRepository) Record(ctx context.Context, entry handicap.History) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx record handicap: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	historyQuery, historyArgs, err := insertHandicapHistoryQuery(entry)
	if err != nil {
		return fmt.Errorf("build insert handicap history query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, historyQuery, historyArgs...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert handicap history id=%s: duplicate entry: %w", entry.ID, err)
		}
		return fmt.Errorf("insert handicap history user=%s: %w", entry.UserID, err)
	}

	snapshotQuery, snapshotArgs, err := upsertUserHandicapQuery(entry)
	if err != nil {
		return fmt.Errorf("build upsert user handicap query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, snapshotQuery, snapshotArgs...); err != nil {
		return fmt.Errorf("upsert user handicap user=%s: %w", entry.UserID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record handicap tx: %w", err)
	}
	return nil
}

func (r *HandicapRepository) ListHistory(ctx context.Context, userID string, limit int) ([]handicap.History, error) {
	query, args, err := handicapHistoryQuery(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("build list handicap history query: %w", err)
	}

	var rows []handicapHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select handicap history user=%s: %w", userID, err)
	}

	out := make([]handicap.History, 0, len(rows))
	for _, row := range rows {
		out = append(out, handicap.History{
			ID:                row.PublicID,
			UserID:            row.UserID,
			HandicapIndex:     row.HandicapIndex,
			EffectiveDate:     row.EffectiveDate.UTC(),
			CalculationMethod: row.CalculationMethod,
			RoundsUsed:        row.RoundsUsed,
			Notes:             row.Notes,
			CreatedAt:         row.CreatedAt.UTC(),
		})
	}

	return out, nil
}

func currentHandicapQuery(userID string) (string, []any, error) {
	return qb.Select("handicap_index").
		From("user_handicaps").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
}

func insertHandicapHistoryQuery(entry handicap.History) (string, []any, error) {
	return qb.InsertModel("handicap_history", handicapHistoryInsertModel{
		PublicID:          entry.ID,
		UserID:            entry.UserID,
		HandicapIndex:     entry.HandicapIndex,
		EffectiveDate:     entry.EffectiveDate.UTC(),
		CalculationMethod: entry.CalculationMethod,
		RoundsUsed:        entry.RoundsUsed,
		Notes:             entry.Notes,
		CreatedAt:         entry.CreatedAt.UTC(),
	}, "")
}

// upsertUserHandicapQuery points the user's snapshot at the history row of entry.
func upsertUserHandicapQuery(entry handicap.History) (string, []any, error) {
	return qb.UpsertModel("user_handicaps", userHandicapUpsertModel{
		UserID:          entry.UserID,
		HandicapIndex:   entry.HandicapIndex,
		HistoryPublicID: entry.ID,
		UpdatedAt:       entry.CreatedAt.UTC(),
	}, "user_id")
}

func handicapHistoryQuery(userID string, limit int) (string, []any, error) {
	return qb.Select("*").
		From("handicap_history").
		Where(qb.Eq("user_id", userID)).
		OrderBy("effective_date DESC", "id DESC").
		Limit(limit).
		ToSQL()
}
