package user

type rankTier struct {
	name   string
	minExp int
}

// Tiers are ordered by threshold; a player holds the highest tier whose
// threshold their EXP reaches. EXP never decreases, so neither does rank.
var rankTiers = []rankTier{
	{"Bronze", 0},
	{"Silver", 100},
	{"Gold", 300},
	{"Platinum", 700},
	{"Diamond", 1500},
	{"Master", 3000},
}

func RankForExp(exp int) string {
	rank := rankTiers[0].name
	for _, tier := range rankTiers {
		if exp >= tier.minExp {
			rank = tier.name
		}
	}
	return rank
}
