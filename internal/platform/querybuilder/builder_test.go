package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "stat_kind", "count").
		From("stat_events").
		Where(Eq("player_id", "p1"), Eq("season", 2)).
		OrderBy("id DESC").
		Limit(1).
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, stat_kind, count FROM stat_events WHERE player_id = $1 AND season = $2 ORDER BY id DESC LIMIT 1 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "p1" || args[1] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_ExprAndShareLock(t *testing.T) {
	query, args, err := Select("key", "value").
		From("config").
		Where(Expr("key IN (?, ?)", "current_gw", "current_season")).
		ForShare().
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT key, value FROM config WHERE key IN ($1, $2) FOR SHARE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "current_gw" || args[1] != "current_season" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("player_id", "position").
		Values("p1", "").
		OnConflictDoNothing("player_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO players (player_id, position) VALUES ($1, $2) ON CONFLICT (player_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "p1" || args[1] != "" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_OnConflictUpdate(t *testing.T) {
	query, args, err := InsertInto("config").
		Columns("key", "value").
		Values("current_gw", 4).
		Values("current_season", 2).
		OnConflictUpdate([]string{"key"}, "value").
		ToSQL()
	if err != nil {
		t.Fatalf("build upsert query: %v", err)
	}

	wantQuery := "INSERT INTO config (key, value) VALUES ($1, $2), ($3, $4) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "current_season" || args[3] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		PlayerID string `db:"player_id"`
		Count    int    `db:"count"`
		Ignored  string
		Skipped  string `db:"-"`
	}

	query, args, err := InsertModel("stat_events", &row{PlayerID: "p1", Count: 3}, "id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO stat_events (player_id, count) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "p1" || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("position", "ST").
		SetExpr("updated_at", "NOW()").
		Where(Eq("player_id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET position = $1, updated_at = NOW() WHERE player_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "ST" || args[1] != "p1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("stat_events").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM stat_events WHERE id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("stat_events").ToSQL(); err == nil {
		t.Fatalf("expected unconditional delete to be rejected")
	}
}

func TestInsertModel_RejectsUntaggedStruct(t *testing.T) {
	type bare struct {
		Name string
	}
	if _, _, err := InsertModel("players", bare{Name: "x"}); err == nil {
		t.Fatalf("expected struct without db tags to be rejected")
	}
	if _, _, err := InsertModel("players", (*bare)(nil)); err == nil {
		t.Fatalf("expected nil model to be rejected")
	}
}
