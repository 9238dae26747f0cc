package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpForResult_Values(t *testing.T) {
	assert.Equal(t, 10, ExpForResult(0, 5, false))
	assert.Equal(t, 50, ExpForResult(5, 5, false))
	assert.Equal(t, 75, ExpForResult(5, 5, true))
	assert.Equal(t, 0, ExpForResult(3, 0, true))
}

// Earned EXP must be monotonic in score percentage.
func TestExpForResult_Monotonic(t *testing.T) {
	for _, total := range []int{3, 5, 10} {
		prev := -1
		for score := 0; score <= total; score++ {
			exp := ExpForResult(score, total, false)
			assert.Greater(t, exp, prev, "exp not monotonic at %d/%d", score, total)
			prev = exp
		}
	}
}

func TestExpForResult_WinnerBonus(t *testing.T) {
	for score := 0; score <= 5; score++ {
		loser := ExpForResult(score, 5, false)
		winner := ExpForResult(score, 5, true)
		assert.Equal(t, expWinnerBonus, winner-loser)
	}
}
