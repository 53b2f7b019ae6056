package usecase

import (
	"context"

	"github.com/novaleague/vrfs-bot/internal/domain/period"
	"github.com/novaleague/vrfs-bot/internal/domain/store"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
)

type PeriodService struct {
	store  store.Transactor
	logger *logging.Logger
}

func NewPeriodService(tx store.Transactor, logger *logging.Logger) *PeriodService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PeriodService{store: tx, logger: logger}
}

func (s *PeriodService) Current(ctx context.Context) (period.Period, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeriodService.Current")
	defer span.End()

	var current period.Period
	err := runInTx(ctx, s.store, "read current period", func(ctx context.Context, repos store.Repositories) error {
		value, err := repos.Periods.Current(ctx)
		if err != nil {
			return storageFailure(err, "read current period")
		}
		current = value
		return nil
	})
	if err != nil {
		return period.Period{}, err
	}
	return current, nil
}

func (s *PeriodService) Set(ctx context.Context, gameweek, season int) (period.Period, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeriodService.Set")
	defer span.End()

	if !period.GameweekInRange(gameweek) {
		return period.Period{}, invalid(ReasonOutOfRangeGameweek,
			"GW must be between %d and %d", period.MinGameweek, period.MaxGameweek)
	}
	if !period.IsSeason(season) {
		return period.Period{}, invalid(ReasonInvalidSeason, "Season must be 1, 2, or 3")
	}

	next := period.Period{Gameweek: gameweek, Season: season}
	err := runInTx(ctx, s.store, "set current period", func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Periods.Set(ctx, next); err != nil {
			return storageFailure(err, "set current period")
		}
		return nil
	})
	if err != nil {
		return period.Period{}, err
	}

	s.logger.InfoContext(ctx, "current period updated", "gameweek", next.Gameweek, "season", next.Season)
	return next, nil
}
