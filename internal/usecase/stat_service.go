package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/novaleague/vrfs-bot/internal/domain/notification"
	"github.com/novaleague/vrfs-bot/internal/domain/period"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
	"github.com/novaleague/vrfs-bot/internal/domain/store"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
)

// RecordStatInput is the raw moderator request; kind and division are parsed here.
type RecordStatInput struct {
	PlayerID string
	Gameweek int
	Season   int
	Kind     string
	Division string
	Count    int
}

type RecordStatResult struct {
	Event          stat.Event
	PointsDelta    int
	DivisionTotals map[stat.Kind]int
}

// Notice builds the best-effort player notification for this result.
func (r RecordStatResult) Notice() notification.StatNotice {
	return notification.StatNotice{
		PlayerID:       r.Event.PlayerID,
		Gameweek:       r.Event.Gameweek,
		Season:         r.Event.Season,
		Kind:           r.Event.Kind,
		Division:       r.Event.Division,
		Count:          r.Event.Count,
		PointsDelta:    r.PointsDelta,
		DivisionTotals: r.DivisionTotals,
	}
}

type RemoveStatInput struct {
	PlayerID string
	Gameweek int
	Season   int
	Kind     string
	Division string
}

type StatService struct {
	store  store.Transactor
	logger *logging.Logger
	now    func() time.Time
}

func NewStatService(tx store.Transactor, logger *logging.Logger) *StatService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatService{
		store:  tx,
		logger: logger,
		now:    time.Now,
	}
}

// Record appends one event for the current period. Nothing is written unless
// every check passes.
func (s *StatService) Record(ctx context.Context, input RecordStatInput) (RecordStatResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.Record")
	defer span.End()

	key, err := parseStatKey(input.PlayerID, input.Gameweek, input.Season, input.Kind)
	if err != nil {
		return RecordStatResult{}, err
	}
	if input.Count <= 0 {
		return RecordStatResult{}, invalid(ReasonNonPositiveCount, "Count must be greater than 0")
	}
	if key.Division, err = parseDivision(input.Division); err != nil {
		return RecordStatResult{}, err
	}

	event := stat.Event{
		PlayerID:  key.PlayerID,
		Gameweek:  key.Gameweek,
		Season:    key.Season,
		Kind:      key.Kind,
		Division:  key.Division,
		Count:     input.Count,
		CreatedAt: s.now().UTC(),
	}

	var result RecordStatResult
	err = runInTx(ctx, s.store, "record stat", func(ctx context.Context, repos store.Repositories) error {
		current, err := repos.Periods.Current(ctx)
		if err != nil {
			return storageFailure(err, "read current period")
		}
		if !current.Equal(period.Period{Gameweek: event.Gameweek, Season: event.Season}) {
			return invalid(ReasonNotCurrentPeriod,
				"You can only add stats to the current GW! Current: GW%d Season %d",
				current.Gameweek, current.Season)
		}

		if err := repos.Players.Ensure(ctx, event.PlayerID); err != nil {
			return storageFailure(err, "ensure player")
		}

		id, err := repos.Stats.Append(ctx, event)
		if err != nil {
			return storageFailure(err, "append stat event")
		}
		event.ID = id

		history, err := repos.Stats.ListByPlayer(ctx, event.PlayerID)
		if err != nil {
			return storageFailure(err, "list stat events")
		}

		result = RecordStatResult{
			Event:          event,
			PointsDelta:    event.Points(),
			DivisionTotals: stat.DivisionTotals(history, event.Division),
		}
		return nil
	})
	if err != nil {
		return RecordStatResult{}, err
	}

	s.logger.InfoContext(ctx, "stat recorded",
		"event_id", result.Event.ID,
		"player_id", result.Event.PlayerID,
		"gameweek", result.Event.Gameweek,
		"season", result.Event.Season,
		"stat_kind", string(result.Event.Kind),
		"division", string(result.Event.Division),
		"count", result.Event.Count,
	)

	return result, nil
}

// Remove deletes the most recently recorded event matching the key. Historical
// periods are allowed.
func (s *StatService) Remove(ctx context.Context, input RemoveStatInput) (stat.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.Remove")
	defer span.End()

	key, err := parseStatKey(input.PlayerID, input.Gameweek, input.Season, input.Kind)
	if err != nil {
		return stat.Event{}, err
	}
	if key.Division, err = parseDivision(input.Division); err != nil {
		return stat.Event{}, err
	}

	var removed stat.Event
	err = runInTx(ctx, s.store, "remove stat", func(ctx context.Context, repos store.Repositories) error {
		event, ok, err := repos.Stats.RemoveLatest(ctx, key)
		if err != nil {
			return storageFailure(err, "remove stat event")
		}
		if !ok {
			return fmt.Errorf("%w: no %s stats for player=%s in %s GW%d Season %d",
				ErrNotFound, key.Kind, key.PlayerID, key.Division, key.Gameweek, key.Season)
		}
		removed = event
		return nil
	})
	if err != nil {
		return stat.Event{}, err
	}

	s.logger.InfoContext(ctx, "stat removed",
		"event_id", removed.ID,
		"player_id", removed.PlayerID,
		"gameweek", removed.Gameweek,
		"season", removed.Season,
		"stat_kind", string(removed.Kind),
		"division", string(removed.Division),
		"count", removed.Count,
	)

	return removed, nil
}

// parseStatKey checks fields in a fixed order; the first failure wins. The
// division is left to parseDivision so Record can check the count first.
func parseStatKey(playerID string, gameweek, season int, rawKind string) (stat.Key, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return stat.Key{}, invalid(ReasonMissingPlayer, "Player is required")
	}
	if !period.GameweekInRange(gameweek) {
		return stat.Key{}, invalid(ReasonOutOfRangeGameweek,
			"GW must be between %d and %d", period.MinGameweek, period.MaxGameweek)
	}
	if !period.IsSeason(season) {
		return stat.Key{}, invalid(ReasonInvalidSeason, "Season must be 1, 2, or 3")
	}
	kind, ok := stat.ParseKind(rawKind)
	if !ok {
		return stat.Key{}, invalid(ReasonInvalidStatKind,
			"Stat type must be one of: %s", strings.Join(stat.KindNames(), ", "))
	}

	return stat.Key{
		PlayerID: playerID,
		Gameweek: gameweek,
		Season:   season,
		Kind:     kind,
	}, nil
}

func parseDivision(raw string) (stat.Division, error) {
	division, ok := stat.ParseDivision(raw)
	if !ok {
		return "", invalid(ReasonInvalidDivision,
			"Division must be one of: %s", strings.Join(stat.DivisionNames(), ", "))
	}
	return division, nil
}
