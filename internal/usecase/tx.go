package usecase

import (
	"context"

	"github.com/novaleague/vrfs-bot/internal/domain/store"
)

// runInTx marks failures the store raises outside fn, such as begin or
// commit errors, as storage failures. Errors fn already classified pass through.
func runInTx(ctx context.Context, tx store.Transactor, op string, fn func(ctx context.Context, repos store.Repositories) error) error {
	return storageFailure(tx.WithinTx(ctx, fn), op)
}
