package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/golf-tracker/internal/domain/round"
	qb "github.com/riskibarqy/golf-tracker/internal/platform/querybuilder"
)

// qualifyingStatuses are the round states that feed handicap and statistics.
var qualifyingStatuses = pq.Array([]string{string(round.StatusCompleted)})

type RoundRepository struct {
	db *sqlx.DB
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

func (r *RoundRepository) ListCompletedByUser(ctx context.Context, userID string, query round.CompletedQuery) ([]round.CompletedRound, error) {
	sqlQuery, args, err := completedRoundsQuery(userID, query)
	if err != nil {
		return nil, fmt.Errorf("build list completed rounds query: %w", err)
	}

	var rows []completedRoundRow
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("select completed rounds user=%s: %w", userID, err)
	}

	out := make([]round.CompletedRound, 0, len(rows))
	for _, row := range rows {
		out = append(out, round.CompletedRound{
			RoundID:      row.RoundID,
			UserID:       row.UserID,
			CourseID:     row.CourseID,
			CourseName:   row.CourseName,
			TeeName:      row.TeeName,
			PlayedAt:     row.PlayedAt.UTC(),
			TotalScore:   row.TotalScore,
			CourseRating: nullFloat64(row.CourseRating),
			SlopeRating:  nullFloat64(row.SlopeRating),
		})
	}

	return out, nil
}

func (r *RoundRepository) ListHoleScoresByUser(ctx context.Context, userID, courseID string) ([]round.HoleScore, error) {
	query, args, err := holeScoresQuery(userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("build list hole scores query: %w", err)
	}

	var rows []holeScoreRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select hole scores user=%s course=%s: %w", userID, courseID, err)
	}

	out := make([]round.HoleScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, round.HoleScore{
			RoundID:           row.RoundID,
			CourseID:          row.CourseID,
			PlayedAt:          row.PlayedAt.UTC(),
			HoleNumber:        row.HoleNumber,
			Par:               row.Par,
			Strokes:           row.Strokes,
			Putts:             row.Putts,
			FairwayHit:        row.FairwayHit,
			GreenInRegulation: row.GreenInRegulation,
			Penalties:         row.Penalties,
			DriveDistance:     row.DriveDistance,
		})
	}

	return out, nil
}

func (r *RoundRepository) ListUserIDsWithCompletedRounds(ctx context.Context) ([]string, error) {
	query, args, err := usersWithCompletedRoundsQuery()
	if err != nil {
		return nil, fmt.Errorf("build list users with completed rounds query: %w", err)
	}

	var userIDs []string
	if err := r.db.SelectContext(ctx, &userIDs, query, args...); err != nil {
		return nil, fmt.Errorf("select users with completed rounds: %w", err)
	}

	return userIDs, nil
}

// completedRoundsQuery selects one row per completed round of the user, newest first,
// with the tee ratings the round was played from.
func completedRoundsQuery(userID string, query round.CompletedQuery) (string, []any, error) {
	return qb.Select(
		"r.public_id AS round_id",
		"rp.user_id",
		"r.course_public_id AS course_id",
		"c.name AS course_name",
		"r.tee_name",
		"r.played_at",
		"rp.total_score",
		"t.course_rating",
		"t.slope_rating",
	).
		From("round_players rp").
		Join("rounds r", "r.public_id = rp.round_public_id").
		Join("courses c", "c.public_id = r.course_public_id").
		LeftJoin("course_tees t", "t.course_public_id = r.course_public_id AND t.tee_name = r.tee_name").
		Where(
			qb.Eq("rp.user_id", userID),
			qb.Any("r.status", qualifyingStatuses),
			qb.IsNull("r.deleted_at"),
		).
		WhereIf(!query.Since.IsZero(), qb.Gte("r.played_at", query.Since)).
		OrderBy("r.played_at DESC", "r.public_id DESC").
		Limit(query.Limit).
		ToSQL()
}

// holeScoresQuery joins each stroke with the par of the hole on the course it was played.
func holeScoresQuery(userID, courseID string) (string, []any, error) {
	return qb.Select(
		"r.public_id AS round_id",
		"r.course_public_id AS course_id",
		"r.played_at",
		"ps.hole_number",
		"h.par",
		"ps.strokes",
		"ps.putts",
		"ps.fairway_hit",
		"ps.green_in_regulation",
		"ps.penalties",
		"ps.drive_distance",
	).
		From("player_scores ps").
		Join("rounds r", "r.public_id = ps.round_public_id").
		Join("course_holes h", "h.course_public_id = r.course_public_id AND h.hole_number = ps.hole_number").
		Where(
			qb.Eq("ps.user_id", userID),
			qb.Any("r.status", qualifyingStatuses),
			qb.IsNull("r.deleted_at"),
		).
		WhereIf(courseID != "", qb.Eq("r.course_public_id", courseID)).
		OrderBy("r.played_at", "r.public_id", "ps.hole_number").
		ToSQL()
}

func usersWithCompletedRoundsQuery() (string, []any, error) {
	return qb.Select("DISTINCT rp.user_id").
		From("round_players rp").
		Join("rounds r", "r.public_id = rp.round_public_id").
		Where(
			qb.Any("r.status", qualifyingStatuses),
			qb.IsNull("r.deleted_at"),
		).
		OrderBy("rp.user_id").
		ToSQL()
}
