package stat

import "context"

// Ledger is the append-only store of stat events.
type Ledger interface {
	Append(ctx context.Context, event Event) (int64, error)
	// RemoveLatest deletes the most recently appended event matching key.
	// The bool is false when no event matched; that is not an error.
	RemoveLatest(ctx context.Context, key Key) (Event, bool, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Event, error)
}
