package stat

// Tier is the cosmetic rank derived from a player's total points.
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

type rankThreshold struct {
	minPoints int
	tier      Tier
}

// Inclusive lower bounds, highest first.
var rankThresholds = []rankThreshold{
	{minPoints: 300, tier: TierPlatinum},
	{minPoints: 194, tier: TierGold},
	{minPoints: 84, tier: TierSilver},
}

// Classify maps a point total onto a tier. The first satisfied threshold wins;
// anything below the lowest one, including zero and negative totals, is Bronze.
func Classify(totalPoints int) Tier {
	for _, threshold := range rankThresholds {
		if totalPoints >= threshold.minPoints {
			return threshold.tier
		}
	}
	return TierBronze
}

func (t Tier) Label() string {
	switch t {
	case TierPlatinum:
		return "🔶 Platinum"
	case TierGold:
		return "🟡 Gold"
	case TierSilver:
		return "⚪ Silver"
	default:
		return "🟤 Bronze"
	}
}
