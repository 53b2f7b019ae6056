package player

import "context"

type Repository interface {
	// Ensure creates the player row if it does not exist yet. It never
	// touches an existing row.
	Ensure(ctx context.Context, playerID string) error
	Get(ctx context.Context, playerID string) (Player, bool, error)
	SetPosition(ctx context.Context, playerID, position string) error
}
