package stat

// Snapshot is a derived view over a player's full event history.
type Snapshot struct {
	Totals      map[Kind]int
	TotalPoints int
}

func emptyTotals() map[Kind]int {
	totals := make(map[Kind]int, len(AllKinds))
	for _, kind := range AllKinds {
		totals[kind] = 0
	}
	return totals
}

// Aggregate sums counts per kind across all divisions, then values each
// (kind, division) sum with that division's points. Every kind is present in
// Totals, zero when the player has no events of it.
func Aggregate(events []Event) Snapshot {
	totals := emptyTotals()
	type cell struct {
		kind     Kind
		division Division
	}
	byCell := make(map[cell]int)

	for _, event := range events {
		totals[event.Kind] += event.Count
		byCell[cell{kind: event.Kind, division: event.Division}] += event.Count
	}

	totalPoints := 0
	for c, count := range byCell {
		totalPoints += count * PointsFor(c.division, c.kind)
	}

	return Snapshot{Totals: totals, TotalPoints: totalPoints}
}

// DivisionTotals returns per-kind counts restricted to one division.
func DivisionTotals(events []Event, division Division) map[Kind]int {
	totals := emptyTotals()
	for _, event := range events {
		if event.Division != division {
			continue
		}
		totals[event.Kind] += event.Count
	}
	return totals
}

func (s Snapshot) Tier() Tier {
	return Classify(s.TotalPoints)
}
