package usecase

import (
	"context"
	"strings"

	"github.com/novaleague/vrfs-bot/internal/domain/player"
	"github.com/novaleague/vrfs-bot/internal/domain/store"
)

type PlayerService struct {
	store store.Transactor
}

func NewPlayerService(tx store.Transactor) *PlayerService {
	return &PlayerService{store: tx}
}

// SetPosition stores a trimmed free-text position. An empty value clears it.
func (s *PlayerService) SetPosition(ctx context.Context, playerID, position string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SetPosition")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	position = strings.TrimSpace(position)
	if playerID == "" {
		return player.Player{}, invalid(ReasonMissingPlayer, "Player is required")
	}
	if player.PositionTooLong(position) {
		return player.Player{}, invalid(ReasonPositionTooLong,
			"Position must be at most %d characters", player.MaxPositionLength)
	}

	err := runInTx(ctx, s.store, "set player position", func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Players.Ensure(ctx, playerID); err != nil {
			return storageFailure(err, "ensure player")
		}
		if err := repos.Players.SetPosition(ctx, playerID, position); err != nil {
			return storageFailure(err, "set player position")
		}
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}

	return player.Player{ID: playerID, Position: position}, nil
}
