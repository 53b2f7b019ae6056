package postgres

import "time"

type statEventTableModel struct {
	ID        int64     `db:"id"`
	PlayerID  string    `db:"player_id"`
	Gameweek  int       `db:"gameweek"`
	Season    int       `db:"season"`
	StatKind  string    `db:"stat_kind"`
	Division  string    `db:"division"`
	Count     int       `db:"count"`
	CreatedAt time.Time `db:"created_at"`
}

type statEventInsertModel struct {
	PlayerID  string    `db:"player_id"`
	Gameweek  int       `db:"gameweek"`
	Season    int       `db:"season"`
	StatKind  string    `db:"stat_kind"`
	Division  string    `db:"division"`
	Count     int       `db:"count"`
	CreatedAt time.Time `db:"created_at"`
}

var statEventSelectColumns = []string{
	"id",
	"player_id",
	"gameweek",
	"season",
	"stat_kind",
	"division",
	"count",
	"created_at",
}
