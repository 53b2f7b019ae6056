package stat

import "testing"

func TestAggregate_EmptyHistory(t *testing.T) {
	t.Parallel()

	snapshot := Aggregate(nil)
	if snapshot.TotalPoints != 0 {
		t.Fatalf("expected zero points, got %d", snapshot.TotalPoints)
	}
	if len(snapshot.Totals) != len(AllKinds) {
		t.Fatalf("expected every kind present, got %d entries", len(snapshot.Totals))
	}
	for _, kind := range AllKinds {
		if snapshot.Totals[kind] != 0 {
			t.Fatalf("expected zero total for %s, got %d", kind, snapshot.Totals[kind])
		}
	}
	if snapshot.Tier() != TierBronze {
		t.Fatalf("expected bronze for empty history, got %s", snapshot.Tier())
	}
}

func TestAggregate_WeightsByDivision(t *testing.T) {
	t.Parallel()

	events := []Event{
		{PlayerID: "p1", Gameweek: 1, Season: 1, Kind: KindGoal, Division: Div1, Count: 2},
		{PlayerID: "p1", Gameweek: 2, Season: 1, Kind: KindGoal, Division: Div3, Count: 1},
		{PlayerID: "p1", Gameweek: 2, Season: 1, Kind: KindGoalkeeperCleansheet, Division: Div2, Count: 1},
	}

	snapshot := Aggregate(events)
	if snapshot.Totals[KindGoal] != 3 {
		t.Fatalf("expected 3 goals across divisions, got %d", snapshot.Totals[KindGoal])
	}
	if snapshot.Totals[KindGoalkeeperCleansheet] != 1 {
		t.Fatalf("expected 1 gk cleansheet, got %d", snapshot.Totals[KindGoalkeeperCleansheet])
	}
	// 2*9 + 1*3 + 1*10
	if snapshot.TotalPoints != 31 {
		t.Fatalf("expected 31 points, got %d", snapshot.TotalPoints)
	}
}

func TestAggregate_ReachesPlatinum(t *testing.T) {
	t.Parallel()

	events := []Event{
		{PlayerID: "p1", Gameweek: 1, Season: 1, Kind: KindGoalkeeperCleansheet, Division: Div1, Count: 25},
	}
	snapshot := Aggregate(events)
	if snapshot.TotalPoints != 300 {
		t.Fatalf("expected 300 points, got %d", snapshot.TotalPoints)
	}
	if snapshot.Tier() != TierPlatinum {
		t.Fatalf("expected platinum, got %s", snapshot.Tier())
	}
}

func TestDivisionTotals_FiltersDivision(t *testing.T) {
	t.Parallel()

	events := []Event{
		{Kind: KindAssist, Division: Div1, Count: 1},
		{Kind: KindAssist, Division: Div2, Count: 4},
		{Kind: KindMOTM, Division: Div2, Count: 1},
	}

	totals := DivisionTotals(events, Div2)
	if totals[KindAssist] != 4 || totals[KindMOTM] != 1 {
		t.Fatalf("unexpected div2 totals: %+v", totals)
	}
	if totals[KindGoal] != 0 {
		t.Fatalf("expected zero goals, got %d", totals[KindGoal])
	}
}

func TestParseKindAndDivision(t *testing.T) {
	t.Parallel()

	if kind, ok := ParseKind("  Defender   Cleansheet "); !ok || kind != KindDefenderCleansheet {
		t.Fatalf("expected defender cleansheet, got %q ok=%v", kind, ok)
	}
	if kind, ok := ParseKind("MOTM"); !ok || kind != KindMOTM {
		t.Fatalf("expected motm, got %q ok=%v", kind, ok)
	}
	if _, ok := ParseKind("own goal"); ok {
		t.Fatalf("expected own goal to be rejected")
	}

	for _, raw := range []string{"Div 2", "div2", "DIV_2", "2", "division 2"} {
		if division, ok := ParseDivision(raw); !ok || division != Div2 {
			t.Fatalf("ParseDivision(%q) = %q ok=%v", raw, division, ok)
		}
	}
	if _, ok := ParseDivision("Div 4"); ok {
		t.Fatalf("expected Div 4 to be rejected")
	}
}
