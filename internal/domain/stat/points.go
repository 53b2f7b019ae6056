package stat

import "fmt"

var pointsTable = map[Division]map[Kind]int{
	Div1: {
		KindGoal:                 9,
		KindAssist:               7,
		KindDefenderCleansheet:   10,
		KindGoalkeeperCleansheet: 12,
		KindMOTM:                 8,
		KindTOTW:                 8,
	},
	Div2: {
		KindGoal:                 6,
		KindAssist:               5,
		KindDefenderCleansheet:   8,
		KindGoalkeeperCleansheet: 10,
		KindMOTM:                 6,
		KindTOTW:                 6,
	},
	Div3: {
		KindGoal:                 3,
		KindAssist:               2,
		KindDefenderCleansheet:   6,
		KindGoalkeeperCleansheet: 8,
		KindMOTM:                 3,
		KindTOTW:                 3,
	},
}

// PointsFor returns the value of a single stat of the given kind in the given
// division. Callers only ever pass parsed enums, so a missing entry is a
// programming error and panics instead of silently scoring zero.
func PointsFor(division Division, kind Kind) int {
	byKind, ok := pointsTable[division]
	if !ok {
		panic(fmt.Sprintf("stat: no points row for division %q", division))
	}
	points, ok := byKind[kind]
	if !ok {
		panic(fmt.Sprintf("stat: no points entry for kind %q in %s", kind, division))
	}
	return points
}
