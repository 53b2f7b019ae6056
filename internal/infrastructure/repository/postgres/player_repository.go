package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/novaleague/vrfs-bot/internal/domain/player"
	qb "github.com/novaleague/vrfs-bot/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db sqlx.ExtContext
}

func NewPlayerRepository(db sqlx.ExtContext) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Ensure(ctx context.Context, playerID string) error {
	query, args, err := qb.InsertInto("players").
		Columns("player_id").
		Values(playerID).
		OnConflictDoNothing("player_id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build ensure player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err, fmt.Sprintf("ensure player=%s", playerID))
	}
	return nil
}

func (r *PlayerRepository) Get(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("player_id", "position", "created_at", "updated_at").From("players").
		Where(qb.Eq("player_id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, wrapDBError(err, fmt.Sprintf("select player=%s", playerID))
	}

	return player.Player{
		ID:       row.PlayerID,
		Position: nullStringToString(row.Position),
	}, true, nil
}

func (r *PlayerRepository) SetPosition(ctx context.Context, playerID, position string) error {
	query, args, err := qb.Update("players").
		Set("position", nullableString(position)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player position query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err, fmt.Sprintf("update position player=%s", playerID))
	}
	return nil
}
