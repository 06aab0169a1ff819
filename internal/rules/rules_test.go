//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/types"
)

func TestNotFinishedOnFreshSplitFields(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(0, 0)).Set(types.NewSquare(9, 9))
	b.Blue = b.Blue.Set(types.NewSquare(0, 9)).Set(types.NewSquare(9, 0))
	gs := board.NewGameState(b, types.Red)
	assert.False(t, IsFinished(gs))
}

func TestRedWinsWhenFullyConnected(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(4, 4)).Set(types.NewSquare(5, 5))
	b.Blue = b.Blue.Set(types.NewSquare(0, 9)).Set(types.NewSquare(9, 0))
	gs := board.NewGameState(b, types.Red)
	assert.True(t, IsFinished(gs))
	w, ok := Winner(gs)
	assert.True(t, ok)
	assert.Equal(t, types.Red, w)
}

func TestBlueWinsWhenRedIsWipedOut(t *testing.T) {
	var b board.Board
	b.Blue = b.Blue.Set(types.NewSquare(0, 9)).Set(types.NewSquare(9, 0))
	gs := board.NewGameState(b, types.Red)
	w, ok := Winner(gs)
	assert.True(t, ok)
	assert.Equal(t, types.Blue, w)
}
