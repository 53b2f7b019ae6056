package memory

import (
	"context"

	"github.com/novaleague/vrfs-bot/internal/domain/stat"
)

// StatLedger is only valid inside the unit of work that created it.
type StatLedger struct {
	state *state
}

func (r *StatLedger) Append(_ context.Context, event stat.Event) (int64, error) {
	event.ID = r.state.nextID
	r.state.nextID++
	r.state.events = append(r.state.events, event)
	return event.ID, nil
}

func (r *StatLedger) RemoveLatest(_ context.Context, key stat.Key) (stat.Event, bool, error) {
	// events are kept in id order, so the last match is the newest.
	for i := len(r.state.events) - 1; i >= 0; i-- {
		event := r.state.events[i]
		if !event.Matches(key) {
			continue
		}
		r.state.events = append(r.state.events[:i], r.state.events[i+1:]...)
		return event, true, nil
	}
	return stat.Event{}, false, nil
}

func (r *StatLedger) ListByPlayer(_ context.Context, playerID string) ([]stat.Event, error) {
	out := make([]stat.Event, 0)
	for _, event := range r.state.events {
		if event.PlayerID == playerID {
			out = append(out, event)
		}
	}
	return out, nil
}
