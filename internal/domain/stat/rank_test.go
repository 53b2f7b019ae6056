package stat

import "testing"

func TestClassify_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		points int
		want   Tier
	}{
		{-5, TierBronze},
		{0, TierBronze},
		{83, TierBronze},
		{84, TierSilver},
		{193, TierSilver},
		{194, TierGold},
		{299, TierGold},
		{300, TierPlatinum},
		{1000, TierPlatinum},
	}

	for _, tc := range cases {
		if got := Classify(tc.points); got != tc.want {
			t.Fatalf("Classify(%d) = %s, want %s", tc.points, got, tc.want)
		}
	}
}

func TestTierLabel(t *testing.T) {
	t.Parallel()

	if got := TierPlatinum.Label(); got != "🔶 Platinum" {
		t.Fatalf("unexpected platinum label: %q", got)
	}
	if got := TierBronze.Label(); got != "🟤 Bronze" {
		t.Fatalf("unexpected bronze label: %q", got)
	}
}
