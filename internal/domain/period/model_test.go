package period

import "testing"

func TestGameweekInRange(t *testing.T) {
	t.Parallel()

	for _, gw := range []int{0, -1, 23} {
		if GameweekInRange(gw) {
			t.Fatalf("expected gameweek %d out of range", gw)
		}
	}
	for _, gw := range []int{1, 11, 22} {
		if !GameweekInRange(gw) {
			t.Fatalf("expected gameweek %d in range", gw)
		}
	}
}

func TestIsSeason(t *testing.T) {
	t.Parallel()

	if IsSeason(0) || IsSeason(4) {
		t.Fatalf("expected seasons 0 and 4 to be rejected")
	}
	if !IsSeason(3) {
		t.Fatalf("expected season 3 to be accepted")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	if got := Default(); !got.Equal(Period{Gameweek: 1, Season: 1}) {
		t.Fatalf("unexpected default period: %s", got)
	}
}
