package memory

import (
	"context"

	"github.com/novaleague/vrfs-bot/internal/domain/period"
)

type PeriodRepository struct {
	state *state
}

func (r *PeriodRepository) Current(_ context.Context) (period.Period, error) {
	return r.state.current, nil
}

func (r *PeriodRepository) Set(_ context.Context, value period.Period) error {
	r.state.current = value
	return nil
}
