package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/novaleague/vrfs-bot/internal/domain/period"
	"github.com/novaleague/vrfs-bot/internal/domain/player"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
	"github.com/novaleague/vrfs-bot/internal/domain/store"
)

type state struct {
	events  []stat.Event
	nextID  int64
	current period.Period
	players map[string]player.Player
}

func (s *state) clone() *state {
	return &state{
		events:  slices.Clone(s.events),
		nextID:  s.nextID,
		current: s.current,
		players: maps.Clone(s.players),
	}
}

// Store keeps all league state in process memory. Units of work run one at a
// time against a copy that replaces the live state only when fn succeeds.
type Store struct {
	mu    sync.Mutex
	state *state
}

func NewStore() *Store {
	return &Store{
		state: &state{
			nextID:  1,
			current: period.Default(),
			players: make(map[string]player.Player),
		},
	}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	repos := store.Repositories{
		Stats:   &StatLedger{state: work},
		Periods: &PeriodRepository{state: work},
		Players: &PlayerRepository{state: work},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}

	s.state = work
	return nil
}
