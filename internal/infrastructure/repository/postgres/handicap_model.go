package postgres

import "time"

type handicapHistoryTableModel struct {
	ID                int64     `db:"id"`
	PublicID          string    `db:"public_id"`
	UserID            string    `db:"user_id"`
	HandicapIndex     float64   `db:"handicap_index"`
	EffectiveDate     time.Time `db:"effective_date"`
	CalculationMethod string    `db:"calculation_method"`
	RoundsUsed        int       `db:"rounds_used"`
	Notes             string    `db:"notes"`
	CreatedAt         time.Time `db:"created_at"`
}

type handicapHistoryInsertModel struct {
	PublicID          string    `db:"public_id"`
	UserID            string    `db:"user_id"`
	HandicapIndex     float64   `db:"handicap_index"`
	EffectiveDate     time.Time `db:"effective_date"`
	CalculationMethod string    `db:"calculation_method"`
	RoundsUsed        int       `db:"rounds_used"`
	Notes             string    `db:"notes"`
	CreatedAt         time.Time `db:"created_at"`
}

type userHandicapUpsertModel struct {
	UserID          string    `db:"user_id"`
	HandicapIndex   float64   `db:"handicap_index"`
	HistoryPublicID string    `db:"history_public_id"`
	UpdatedAt       time.Time `db:"updated_at"`
}
