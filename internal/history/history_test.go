//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/types"
)

func TestUpdateAccumulatesByDepthSquared(t *testing.T) {
	h := NewHistory()
	move := types.NewMove(types.NewSquare(1, 1), types.NewSquare(2, 2))

	h.Update(types.Red, move, 3, types.MoveNone)
	assert.EqualValues(t, 9, h.Score(types.Red, move))

	h.Update(types.Red, move, 3, types.MoveNone)
	assert.EqualValues(t, 18, h.Score(types.Red, move))

	assert.EqualValues(t, 0, h.Score(types.Blue, move))
}

func TestCounterMoveRecordsRefutation(t *testing.T) {
	h := NewHistory()
	lastMove := types.NewMove(types.NewSquare(0, 0), types.NewSquare(0, 1))
	reply := types.NewMove(types.NewSquare(5, 5), types.NewSquare(5, 6))

	assert.Equal(t, types.MoveNone, h.CounterMove(lastMove))

	h.Update(types.Red, reply, 2, lastMove)
	assert.Equal(t, reply, h.CounterMove(lastMove))
}

func TestCounterMoveNoneForMoveNone(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, types.MoveNone, h.CounterMove(types.MoveNone))
}

func TestClearResetsState(t *testing.T) {
	h := NewHistory()
	move := types.NewMove(types.NewSquare(1, 1), types.NewSquare(2, 2))
	h.Update(types.Red, move, 4, types.MoveNone)
	assert.NotZero(t, h.Score(types.Red, move))

	h.Clear()
	assert.Zero(t, h.Score(types.Red, move))
	assert.Equal(t, types.MoveNone, h.CounterMove(move))
}
