package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
	qb "github.com/novaleague/vrfs-bot/internal/platform/querybuilder"
)

type StatLedger struct {
	db sqlx.ExtContext
}

func NewStatLedger(db sqlx.ExtContext) *StatLedger {
	return &StatLedger{db: db}
}

func (r *StatLedger) Append(ctx context.Context, event stat.Event) (int64, error) {
	insertModel := statEventInsertModel{
		PlayerID:  event.PlayerID,
		Gameweek:  event.Gameweek,
		Season:    event.Season,
		StatKind:  string(event.Kind),
		Division:  string(event.Division),
		Count:     event.Count,
		CreatedAt: event.CreatedAt,
	}
	query, args, err := qb.InsertModel("stat_events", insertModel, "id")
	if err != nil {
		return 0, fmt.Errorf("build insert stat event query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.db, &id, query, args...); err != nil {
		return 0, wrapDBError(err, fmt.Sprintf("insert stat event player=%s", event.PlayerID))
	}
	return id, nil
}

// removeLatestAttempts bounds re-selects after a miss. Under READ COMMITTED a
// LIMIT 1 FOR UPDATE that waited on a row another remover deleted returns no
// rows; the next statement takes a fresh snapshot and sees the remaining ones.
const removeLatestAttempts = 3

func (r *StatLedger) RemoveLatest(ctx context.Context, key stat.Key) (stat.Event, bool, error) {
	row, ok, err := retryOnMiss(removeLatestAttempts, func() (statEventTableModel, bool, error) {
		return r.lockLatest(ctx, key)
	})
	if err != nil || !ok {
		return stat.Event{}, false, err
	}

	query, args, err := qb.DeleteFrom("stat_events").Where(qb.Eq("id", row.ID)).ToSQL()
	if err != nil {
		return stat.Event{}, false, fmt.Errorf("build delete stat event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return stat.Event{}, false, wrapDBError(err, fmt.Sprintf("delete stat event id=%d", row.ID))
	}

	return statEventFromRow(row), true, nil
}

func (r *StatLedger) lockLatest(ctx context.Context, key stat.Key) (statEventTableModel, bool, error) {
	query, args, err := qb.Select(statEventSelectColumns...).From("stat_events").
		Where(
			qb.Eq("player_id", key.PlayerID),
			qb.Eq("gameweek", key.Gameweek),
			qb.Eq("season", key.Season),
			qb.Eq("stat_kind", string(key.Kind)),
			qb.Eq("division", string(key.Division)),
		).
		OrderBy("id DESC").
		Limit(1).
		ForUpdate().
		ToSQL()
	if err != nil {
		return statEventTableModel{}, false, fmt.Errorf("build select latest stat event query: %w", err)
	}

	var row statEventTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return statEventTableModel{}, false, nil
		}
		return statEventTableModel{}, false, wrapDBError(err, "select latest stat event")
	}
	return row, true, nil
}

// retryOnMiss calls fn until it finds something, fails, or attempts run out.
func retryOnMiss[T any](attempts int, fn func() (T, bool, error)) (T, bool, error) {
	var (
		value T
		found bool
		err   error
	)
	for i := 0; i < attempts; i++ {
		value, found, err = fn()
		if err != nil || found {
			return value, found, err
		}
	}
	return value, false, nil
}

func (r *StatLedger) ListByPlayer(ctx context.Context, playerID string) ([]stat.Event, error) {
	query, args, err := qb.Select(statEventSelectColumns...).From("stat_events").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stat events by player query: %w", err)
	}

	var rows []statEventTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, wrapDBError(err, "select stat events by player")
	}

	out := make([]stat.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, statEventFromRow(row))
	}
	return out, nil
}

func statEventFromRow(row statEventTableModel) stat.Event {
	return stat.Event{
		ID:        row.ID,
		PlayerID:  row.PlayerID,
		Gameweek:  row.Gameweek,
		Season:    row.Season,
		Kind:      stat.Kind(row.StatKind),
		Division:  stat.Division(row.Division),
		Count:     row.Count,
		CreatedAt: row.CreatedAt,
	}
}
