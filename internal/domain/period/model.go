package period

import (
	"context"
	"fmt"
)

const (
	MinGameweek = 1
	MaxGameweek = 22
)

// Seasons lists every season stats may be recorded against.
var Seasons = []int{1, 2, 3}

// Period is the league's current (gameweek, season) pair. Moderators may only
// record stats against the current period.
type Period struct {
	Gameweek int
	Season   int
}

// Default is the period used before any moderator has set one.
func Default() Period {
	return Period{Gameweek: MinGameweek, Season: Seasons[0]}
}

func GameweekInRange(gameweek int) bool {
	return gameweek >= MinGameweek && gameweek <= MaxGameweek
}

func IsSeason(season int) bool {
	for _, s := range Seasons {
		if s == season {
			return true
		}
	}
	return false
}

func (p Period) Equal(other Period) bool {
	return p.Gameweek == other.Gameweek && p.Season == other.Season
}

func (p Period) String() string {
	return fmt.Sprintf("GW%d S%d", p.Gameweek, p.Season)
}

// Repository persists the single current-period record.
type Repository interface {
	Current(ctx context.Context) (Period, error)
	Set(ctx context.Context, value Period) error
}
