package memory

import (
	"context"

	"github.com/novaleague/vrfs-bot/internal/domain/player"
)

type PlayerRepository struct {
	state *state
}

func (r *PlayerRepository) Ensure(_ context.Context, playerID string) error {
	if _, ok := r.state.players[playerID]; ok {
		return nil
	}
	r.state.players[playerID] = player.Player{ID: playerID}
	return nil
}

func (r *PlayerRepository) Get(_ context.Context, playerID string) (player.Player, bool, error) {
	item, ok := r.state.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) SetPosition(_ context.Context, playerID, position string) error {
	r.state.players[playerID] = player.Player{ID: playerID, Position: position}
	return nil
}
