package stat

import (
	"strings"
	"time"
)

// Kind is one of the statistic categories tracked per player.
type Kind string

const (
	KindGoal                 Kind = "goal"
	KindAssist               Kind = "assist"
	KindDefenderCleansheet   Kind = "defender cleansheet"
	KindGoalkeeperCleansheet Kind = "goalkeeper cleansheet"
	KindTOTW                 Kind = "totw"
	KindMOTM                 Kind = "motm"
)

// AllKinds lists every kind in display order.
var AllKinds = []Kind{
	KindGoal,
	KindAssist,
	KindDefenderCleansheet,
	KindGoalkeeperCleansheet,
	KindTOTW,
	KindMOTM,
}

var kindAliases = map[string]Kind{
	"goal":                  KindGoal,
	"goals":                 KindGoal,
	"assist":                KindAssist,
	"assists":               KindAssist,
	"defender cleansheet":   KindDefenderCleansheet,
	"defender_cleansheet":   KindDefenderCleansheet,
	"defcs":                 KindDefenderCleansheet,
	"goalkeeper cleansheet": KindGoalkeeperCleansheet,
	"goalkeeper_cleansheet": KindGoalkeeperCleansheet,
	"gkcs":                  KindGoalkeeperCleansheet,
	"totw":                  KindTOTW,
	"motm":                  KindMOTM,
}

// ParseKind maps external input onto a Kind. Matching is case-insensitive and
// collapses repeated whitespace.
func ParseKind(raw string) (Kind, bool) {
	normalized := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	kind, ok := kindAliases[normalized]
	return kind, ok
}

func (k Kind) Valid() bool {
	switch k {
	case KindGoal, KindAssist, KindDefenderCleansheet, KindGoalkeeperCleansheet, KindTOTW, KindMOTM:
		return true
	default:
		return false
	}
}

func (k Kind) Label() string {
	switch k {
	case KindGoal:
		return "Goal"
	case KindAssist:
		return "Assist"
	case KindDefenderCleansheet:
		return "Defender Cleansheet"
	case KindGoalkeeperCleansheet:
		return "Goalkeeper Cleansheet"
	case KindTOTW:
		return "TOTW"
	case KindMOTM:
		return "MOTM"
	default:
		return string(k)
	}
}

func (k Kind) Emoji() string {
	switch k {
	case KindGoal:
		return "⚽"
	case KindAssist:
		return "🎯"
	case KindDefenderCleansheet:
		return "🛡️"
	case KindGoalkeeperCleansheet:
		return "🧤"
	case KindTOTW:
		return "📊"
	case KindMOTM:
		return "⭐"
	default:
		return ""
	}
}

// KindNames returns the accepted wire names, used in validation messages.
func KindNames() []string {
	out := make([]string, 0, len(AllKinds))
	for _, k := range AllKinds {
		out = append(out, string(k))
	}
	return out
}

// Division is a competitive tier with its own point valuation. Div1 is the highest.
type Division string

const (
	Div1 Division = "Div 1"
	Div2 Division = "Div 2"
	Div3 Division = "Div 3"
)

var AllDivisions = []Division{Div1, Div2, Div3}

// ParseDivision accepts "Div 1", "div1", "DIV_1" and the bare tier number.
func ParseDivision(raw string) (Division, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(normalized)
	normalized = strings.TrimPrefix(normalized, "division")
	normalized = strings.TrimPrefix(normalized, "div")

	switch normalized {
	case "1":
		return Div1, true
	case "2":
		return Div2, true
	case "3":
		return Div3, true
	default:
		return "", false
	}
}

func (d Division) Valid() bool {
	switch d {
	case Div1, Div2, Div3:
		return true
	default:
		return false
	}
}

func DivisionNames() []string {
	out := make([]string, 0, len(AllDivisions))
	for _, d := range AllDivisions {
		out = append(out, string(d))
	}
	return out
}

// Key identifies the events a removal may target. Count is not part of it.
type Key struct {
	PlayerID string
	Gameweek int
	Season   int
	Kind     Kind
	Division Division
}

// Event is one recorded occurrence of a statistic. Events are immutable once
// appended to the ledger.
type Event struct {
	ID        int64
	PlayerID  string
	Gameweek  int
	Season    int
	Kind      Kind
	Division  Division
	Count     int
	CreatedAt time.Time
}

func (e Event) Key() Key {
	return Key{
		PlayerID: e.PlayerID,
		Gameweek: e.Gameweek,
		Season:   e.Season,
		Kind:     e.Kind,
		Division: e.Division,
	}
}

// Matches reports whether the event falls under the given key.
func (e Event) Matches(key Key) bool {
	return e.Key() == key
}

// Points is the division-weighted value of this single event.
func (e Event) Points() int {
	return PointsFor(e.Division, e.Kind) * e.Count
}
