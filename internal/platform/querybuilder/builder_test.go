package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder_JoinsAndOptionalFilters(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := Select("r.public_id", "rp.total_score").
		From("round_players rp").
		Join("rounds r", "r.public_id = rp.round_public_id").
		LeftJoin("course_tees t", "t.course_public_id = r.course_public_id AND t.tee_name = r.tee_name").
		Where(Eq("rp.user_id", "u1"), IsNull("r.deleted_at")).
		WhereIf(!since.IsZero(), Gte("r.played_at", since)).
		WhereIf(false, Eq("r.course_public_id", "ignored")).
		OrderBy("r.played_at DESC", "r.public_id DESC").
		Limit(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT r.public_id, rp.total_score FROM round_players rp" +
		" JOIN rounds r ON r.public_id = rp.round_public_id" +
		" LEFT JOIN course_tees t ON t.course_public_id = r.course_public_id AND t.tee_name = r.tee_name" +
		" WHERE rp.user_id = $1 AND r.deleted_at IS NULL AND r.played_at >= $2" +
		" ORDER BY r.played_at DESC, r.public_id DESC LIMIT 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != since {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_AnyAndIsNull(t *testing.T) {
	query, args, err := Select("user_id").
		From("round_players").
		Where(Any("status", []string{"completed"}), IsNull("deleted_at"), Gte("total_score", 60)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT user_id FROM round_players WHERE status = ANY($1) AND deleted_at IS NULL AND total_score >= $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != 60 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTableAndJoinCondition(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected missing table error")
	}
	if _, _, err := Select("id").From("a").Join("b", " ").ToSQL(); err == nil {
		t.Fatalf("expected missing join condition error")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("handicap_history").
		Columns("public_id", "user_id").
		Values("h1", "u1").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO handicap_history (public_id, user_id) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "h1" || args[1] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected row width mismatch error")
	}
}

type snapshotRow struct {
	UserID       string  `db:"user_id"`
	RoundsPlayed int     `db:"rounds_played"`
	AverageScore float64 `db:"average_score"`
	Ignored      string  `db:"-"`
	internal     string
}

func TestUpsertModel(t *testing.T) {
	query, args, err := UpsertModel("user_statistics", snapshotRow{UserID: "u1", RoundsPlayed: 3, AverageScore: 88.5, internal: "x"}, "user_id")
	if err != nil {
		t.Fatalf("build upsert query: %v", err)
	}

	wantQuery := "INSERT INTO user_statistics (user_id, rounds_played, average_score) VALUES ($1, $2, $3)" +
		" ON CONFLICT (user_id) DO UPDATE SET rounds_played = EXCLUDED.rounds_played, average_score = EXCLUDED.average_score"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "u1" || args[1] != 3 || args[2] != 88.5 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := UpsertModel("t", snapshotRow{}); err == nil {
		t.Fatalf("expected missing conflict columns error")
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("t", 42, ""); err == nil {
		t.Fatalf("expected non-struct error")
	}
	var nilRow *snapshotRow
	if _, _, err := InsertModel("t", nilRow, ""); err == nil {
		t.Fatalf("expected nil pointer error")
	}
}
