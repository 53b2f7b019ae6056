package usecase

import (
	"context"
	"strings"

	"github.com/novaleague/vrfs-bot/internal/domain/player"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
	"github.com/novaleague/vrfs-bot/internal/domain/store"
)

// Profile is recomputed from the ledger on every read. Position is empty when
// none was set.
type Profile struct {
	PlayerID    string
	Position    string
	Totals      map[stat.Kind]int
	TotalPoints int
	Tier        stat.Tier
}

type ProfileService struct {
	store store.Transactor
}

func NewProfileService(tx store.Transactor) *ProfileService {
	return &ProfileService{store: tx}
}

// Get never fails for an unknown player; it reports an empty Bronze profile.
func (s *ProfileService) Get(ctx context.Context, playerID string) (Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return Profile{}, invalid(ReasonMissingPlayer, "Player is required")
	}

	var profile Profile
	err := runInTx(ctx, s.store, "get profile", func(ctx context.Context, repos store.Repositories) error {
		item, exists, err := repos.Players.Get(ctx, playerID)
		if err != nil {
			return storageFailure(err, "get player")
		}
		if !exists {
			item = player.Player{ID: playerID}
		}

		events, err := repos.Stats.ListByPlayer(ctx, playerID)
		if err != nil {
			return storageFailure(err, "list stat events")
		}

		snapshot := stat.Aggregate(events)
		profile = Profile{
			PlayerID:    playerID,
			Position:    item.Position,
			Totals:      snapshot.Totals,
			TotalPoints: snapshot.TotalPoints,
			Tier:        snapshot.Tier(),
		}
		return nil
	})
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}
