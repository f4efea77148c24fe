package postgres

import (
	"database/sql"
	"time"
)

type userStatisticsTableModel struct {
	UserID               string       `db:"user_id"`
	RoundsPlayed         int          `db:"rounds_played"`
	AverageScore         float64      `db:"average_score"`
	BestScore            int          `db:"best_score"`
	WorstScore           int          `db:"worst_score"`
	HolesPlayed          int          `db:"holes_played"`
	ScoringCounts        []byte       `db:"scoring_counts"`
	FairwayHitPct        float64      `db:"fairway_hit_pct"`
	GreenInRegulationPct float64      `db:"green_in_regulation_pct"`
	AveragePutts         float64      `db:"average_putts"`
	LongestDrive         int          `db:"longest_drive"`
	FavoriteCourseID     string       `db:"favorite_course_public_id"`
	FavoriteCourseName   string       `db:"favorite_course_name"`
	LastRoundAt          sql.NullTime `db:"last_round_at"`
	CalculatedAt         time.Time    `db:"calculated_at"`
}

// userStatisticsUpsertModel carries scoring_counts as text; lib/pq would send []byte as bytea.
type userStatisticsUpsertModel struct {
	UserID               string       `db:"user_id"`
	RoundsPlayed         int          `db:"rounds_played"`
	AverageScore         float64      `db:"average_score"`
	BestScore            int          `db:"best_score"`
	WorstScore           int          `db:"worst_score"`
	HolesPlayed          int          `db:"holes_played"`
	ScoringCounts        string       `db:"scoring_counts"`
	FairwayHitPct        float64      `db:"fairway_hit_pct"`
	GreenInRegulationPct float64      `db:"green_in_regulation_pct"`
	AveragePutts         float64      `db:"average_putts"`
	LongestDrive         int          `db:"longest_drive"`
	FavoriteCourseID     string       `db:"favorite_course_public_id"`
	FavoriteCourseName   string       `db:"favorite_course_name"`
	LastRoundAt          sql.NullTime `db:"last_round_at"`
	CalculatedAt         time.Time    `db:"calculated_at"`
}

type scoringCountsDocument struct {
	EaglesOrBetter int `json:"eagles_or_better"`
	Birdies        int `json:"birdies"`
	Pars           int `json:"pars"`
	Bogeys         int `json:"bogeys"`
	DoubleBogeys   int `json:"double_bogeys"`
	Worse          int `json:"worse"`
}
