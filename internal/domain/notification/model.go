package notification

import (
	"context"

	"github.com/novaleague/vrfs-bot/internal/domain/stat"
)

// StatNotice tells a player that a stat was recorded for them.
type StatNotice struct {
	PlayerID       string
	Gameweek       int
	Season         int
	Kind           stat.Kind
	Division       stat.Division
	Count          int
	PointsDelta    int
	DivisionTotals map[stat.Kind]int
}

// Notifier delivers stat notices out of band. Delivery is best effort and
// never affects the recorded event.
type Notifier interface {
	NotifyStatRecorded(ctx context.Context, notice StatNotice) error
}
