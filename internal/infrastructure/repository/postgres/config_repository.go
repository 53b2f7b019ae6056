package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/novaleague/vrfs-bot/internal/domain/period"
	qb "github.com/novaleague/vrfs-bot/internal/platform/querybuilder"
)

const (
	configKeyGameweek = "current_gameweek"
	configKeySeason   = "current_season"
)

type configTableModel struct {
	Key   string `db:"key"`
	Value int    `db:"value"`
}

// PeriodRepository keeps the current period in the key/value config table.
type PeriodRepository struct {
	db sqlx.ExtContext
}

func NewPeriodRepository(db sqlx.ExtContext) *PeriodRepository {
	return &PeriodRepository{db: db}
}

// Current takes a share lock so a concurrent Set waits for stat writes that
// already checked the period.
func (r *PeriodRepository) Current(ctx context.Context) (period.Period, error) {
	query, args, err := qb.Select("key", "value").From("config").
		Where(qb.Expr("key IN (?, ?)", configKeyGameweek, configKeySeason)).
		ForShare().
		ToSQL()
	if err != nil {
		return period.Period{}, fmt.Errorf("build select config query: %w", err)
	}

	var rows []configTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return period.Period{}, wrapDBError(err, "select config")
	}

	current := period.Default()
	for _, row := range rows {
		switch row.Key {
		case configKeyGameweek:
			current.Gameweek = row.Value
		case configKeySeason:
			current.Season = row.Value
		}
	}
	return current, nil
}

func (r *PeriodRepository) Set(ctx context.Context, value period.Period) error {
	query, args, err := qb.InsertInto("config").
		Columns("key", "value").
		Values(configKeyGameweek, value.Gameweek).
		Values(configKeySeason, value.Season).
		OnConflictUpdate([]string{"key"}, "value").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert config query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err, "upsert config")
	}
	return nil
}
