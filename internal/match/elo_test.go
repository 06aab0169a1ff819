package match

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEloDiffIsZeroAtEvenScore(t *testing.T) {
	assert.InDelta(t, 0, eloDiff(0.5), 1e-9)
}

func TestEloDiffIsPositiveAboveHalf(t *testing.T) {
	assert.Greater(t, eloDiff(0.75), 0.0)
}

func TestEloDiffIsNegativeBelowHalf(t *testing.T) {
	assert.Less(t, eloDiff(0.25), 0.0)
}

func TestEloDiffDivergesAtExtremes(t *testing.T) {
	assert.True(t, math.IsInf(eloDiff(1), 1))
	assert.True(t, math.IsInf(eloDiff(0), -1))
}

func TestEloErrorShrinksWithMoreGames(t *testing.T) {
	variance := scoreVariance(5, 5, 0, 0.5)
	small := eloError(0.5, variance, 10)
	large := eloError(0.5, variance, 1000)
	assert.Greater(t, small, large)
}

func TestScoreVarianceZeroWhenAllDraws(t *testing.T) {
	v := scoreVariance(0, 0, 10, 0.5)
	assert.InDelta(t, 0, v, 1e-9)
}
