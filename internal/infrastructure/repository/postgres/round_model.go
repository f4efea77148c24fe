package postgres

import (
	"database/sql"
	"time"
)

type completedRoundRow struct {
	RoundID      string          `db:"round_id"`
	UserID       string          `db:"user_id"`
	CourseID     string          `db:"course_id"`
	CourseName   string          `db:"course_name"`
	TeeName      string          `db:"tee_name"`
	PlayedAt     time.Time       `db:"played_at"`
	TotalScore   int             `db:"total_score"`
	CourseRating sql.NullFloat64 `db:"course_rating"`
	SlopeRating  sql.NullFloat64 `db:"slope_rating"`
}

type holeScoreRow struct {
	RoundID           string    `db:"round_id"`
	CourseID          string    `db:"course_id"`
	PlayedAt          time.Time `db:"played_at"`
	HoleNumber        int       `db:"hole_number"`
	Par               int       `db:"par"`
	Strokes           int       `db:"strokes"`
	Putts             int       `db:"putts"`
	FairwayHit        bool      `db:"fairway_hit"`
	GreenInRegulation bool      `db:"green_in_regulation"`
	Penalties         int       `db:"penalties"`
	DriveDistance     int       `db:"drive_distance"`
}
