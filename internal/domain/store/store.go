package store

import (
	"context"

	"github.com/novaleague/vrfs-bot/internal/domain/period"
	"github.com/novaleague/vrfs-bot/internal/domain/player"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
)

// Repositories is the set of repositories bound to one unit of work.
type Repositories struct {
	Stats   stat.Ledger
	Periods period.Repository
	Players player.Repository
}

// Transactor runs fn atomically. If fn returns an error nothing it wrote is
// kept. Concurrent units of work are serialized against each other.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
