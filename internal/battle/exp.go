package battle

import "math"

const expBase = 10
const expPerfect = 40
const expWinnerBonus = 25

// ExpForResult converts a session score into earned EXP. The proportional
// term keeps the grant strictly monotonic in score percentage.
func ExpForResult(score, total int, winner bool) int {
	if total <= 0 {
		return 0
	}

	pct := float64(score) / float64(total)
	exp := expBase + int(math.Round(pct*expPerfect))
	if winner {
		exp += expWinnerBonus
	}

	return exp
}
