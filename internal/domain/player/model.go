package player

import "unicode/utf8"

// MaxPositionLength bounds the free-text position label, counted in runes.
const MaxPositionLength = 32

// Player is created lazily the first time a stat is recorded for them.
type Player struct {
	ID       string
	Position string
}

// DisplayPosition is what profiles show for the position label.
func (p Player) DisplayPosition() string {
	if p.Position == "" {
		return "Not set"
	}
	return p.Position
}

func PositionTooLong(position string) bool {
	return utf8.RuneCountInString(position) > MaxPositionLength
}
