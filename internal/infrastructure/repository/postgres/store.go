package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/novaleague/vrfs-bot/internal/domain/store"
)

// Store runs every unit of work in one database transaction.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapDBError(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	repos := store.Repositories{
		Stats:   NewStatLedger(tx),
		Periods: NewPeriodRepository(tx),
		Players: NewPlayerRepository(tx),
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrapDBError(err, "commit tx")
	}
	return nil
}

// Ping verifies connectivity; the process refuses to start without it.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}
