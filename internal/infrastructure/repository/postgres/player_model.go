package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	PlayerID  string         `db:"player_id"`
	Position  sql.NullString `db:"position"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
