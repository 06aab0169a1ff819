//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/types"
)

func squares(coords [][2]int) types.Bitboard {
	var b types.Bitboard
	for _, c := range coords {
		b = b.Set(types.NewSquare(c[0], c[1]))
	}
	return b
}

func TestEvaluateFavorsMoreConnectedSide(t *testing.T) {
	var b board.Board
	b.Red = squares([][2]int{{4, 4}, {5, 4}, {5, 5}})
	b.Blue = squares([][2]int{{0, 0}, {3, 7}, {9, 1}})
	gs := board.NewGameState(b, types.Red)

	e := NewEvaluator()
	assert.Greater(t, e.Evaluate(gs), 0.0)
}

func TestEvaluateAgreesAcrossColorAndTurnMirror(t *testing.T) {
	var original, mirrored board.Board
	original.Red = squares([][2]int{{4, 4}, {5, 4}})
	original.Blue = squares([][2]int{{0, 0}, {9, 9}})
	mirrored.Red = original.Blue
	mirrored.Blue = original.Red

	gs := board.NewGameState(original, types.Red)
	gsMirrored := board.NewGameState(mirrored, types.Blue)

	e := NewEvaluator()
	// the mirrored state has blue sitting where red used to and blue to
	// move where red used to move - from the mover's own perspective,
	// the position is identical, so the evaluation must match exactly.
	assert.Equal(t, e.Evaluate(gs), e.Evaluate(gsMirrored))
}

func TestEvaluateRedWipeoutIsExtreme(t *testing.T) {
	var b board.Board
	b.Blue = squares([][2]int{{0, 0}, {9, 9}})
	gs := board.NewGameState(b, types.Red)
	e := NewEvaluator()
	assert.Less(t, e.Evaluate(gs), -100.0)
}

func TestEvaluateCachingIsConsistent(t *testing.T) {
	var b board.Board
	b.Red = squares([][2]int{{4, 4}, {5, 5}})
	b.Blue = squares([][2]int{{0, 0}, {9, 9}})
	gs := board.NewGameState(b, types.Red)

	e := NewEvaluator()
	first := e.Evaluate(gs)
	second := e.Evaluate(gs)
	assert.Equal(t, first, second)
}

func TestSwarmFeatureFullyConnectedIsOne(t *testing.T) {
	own := squares([][2]int{{4, 4}, {5, 4}, {5, 5}})
	assert.Equal(t, 1.0, swarmFeature(own))
}

func TestSpreadShrinksWithDistance(t *testing.T) {
	tight := squares([][2]int{{4, 4}, {5, 4}})
	loose := squares([][2]int{{0, 0}, {9, 9}})
	assert.Greater(t, spread(tight), spread(loose))
}

func TestSwarmDistanceFeatureZeroWhenFullyConnected(t *testing.T) {
	var b board.Board
	b.Red = squares([][2]int{{4, 4}, {5, 4}, {5, 5}})
	b.Blue = squares([][2]int{{0, 0}})
	gs := board.NewGameState(b, types.Red)
	assert.Equal(t, 0.0, swarmDistanceFeature(gs, b.Red, b.Blue))
}

func TestSwarmDistanceFeatureNegativeWhenFragmented(t *testing.T) {
	var b board.Board
	b.Red = squares([][2]int{{4, 4}, {5, 4}, {9, 9}})
	b.Blue = squares([][2]int{{0, 0}})
	gs := board.NewGameState(b, types.Red)
	assert.Less(t, swarmDistanceFeature(gs, b.Red, b.Blue), 0.0)
}
