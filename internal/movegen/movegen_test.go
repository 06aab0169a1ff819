//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/types"
)

func TestDistanceOfLoneFishIsOne(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(4, 4))
	assert.Equal(t, 1, b.GetDistance(types.NewSquare(4, 4), types.East))
}

func TestDistanceCountsWholeLineBothWays(t *testing.T) {
	var b board.Board
	// three red fish on row 4: columns 2, 4 (the mover) and 7
	b.Red = b.Red.Set(types.NewSquare(2, 4)).Set(types.NewSquare(4, 4)).Set(types.NewSquare(7, 4))
	// distance is the same regardless of which of the two opposite
	// directions of the axis is queried
	assert.Equal(t, 3, b.GetDistance(types.NewSquare(4, 4), types.East))
	assert.Equal(t, 3, b.GetDistance(types.NewSquare(4, 4), types.West))
}

func TestObstaclesDoNotCountTowardDistance(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(4, 4))
	b.Obstacles = b.Obstacles.Set(types.NewSquare(6, 4))
	assert.Equal(t, 1, b.GetDistance(types.NewSquare(4, 4), types.East))
}

func TestLegalMovesLoneFishSlidesOneField(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(4, 4))
	gs := board.NewGameState(b, types.Red)
	moves := LegalMoves(gs)
	// all eight directions stay on the board from the center, each a
	// one-field slide since the lone fish is the only one on every line
	assert.Len(t, moves, 8)
	for _, m := range moves {
		assert.Equal(t, types.NewSquare(4, 4), m.From())
		dc := m.To().Col() - m.From().Col()
		dr := m.To().Row() - m.From().Row()
		assert.LessOrEqual(t, dc*dc, 1)
		assert.LessOrEqual(t, dr*dr, 1)
	}
}

func TestLegalMovesSlideDistanceMatchesLineCount(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(2, 4)).Set(types.NewSquare(4, 4))
	gs := board.NewGameState(b, types.Red)
	moves := LegalMoves(gs)

	found := false
	for _, m := range moves {
		if m.From() == types.NewSquare(2, 4) && m.To().Row() == 4 && m.To().Col() > m.From().Col() {
			found = true
			// distance on this line is 2 (the two red fish), so the
			// mover at col 2 lands on col 4 - but that's occupied by
			// its own fish, so this exact move must not be legal.
			assert.NotEqual(t, types.NewSquare(4, 4), m.To())
		}
	}
	_ = found
}

func TestLegalMovesExcludeOwnColorLanding(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(2, 4)).Set(types.NewSquare(4, 4))
	gs := board.NewGameState(b, types.Red)
	for _, m := range LegalMoves(gs) {
		assert.False(t, b.Red.Test(m.To()))
	}
}

func TestLegalMovesExcludeObstacleLanding(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(2, 4))
	b.Obstacles = b.Obstacles.Set(types.NewSquare(3, 4))
	gs := board.NewGameState(b, types.Red)
	for _, m := range LegalMoves(gs) {
		assert.NotEqual(t, types.NewSquare(3, 4), m.To())
	}
}

func TestLegalMovesCaptureOpponent(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(2, 4))
	b.Blue = b.Blue.Set(types.NewSquare(3, 4))
	gs := board.NewGameState(b, types.Red)

	caps := Captures(gs)
	assert.Len(t, caps, 1)
	assert.Equal(t, types.NewSquare(3, 4), caps[0].To())
}

func TestEnemyOnPathBlocksTheWholeDirection(t *testing.T) {
	var b board.Board
	// red at col 1 and col 5 and blue at col 2 on row 4 -> distance East
	// from col 1 is 3, landing on col 4. The blue fish on col 2 (strictly between)
	// must make this whole direction illegal, even though it isn't the
	// landing square.
	b.Red = b.Red.Set(types.NewSquare(1, 4)).Set(types.NewSquare(5, 4))
	b.Blue = b.Blue.Set(types.NewSquare(2, 4))
	gs := board.NewGameState(b, types.Red)
	for _, m := range LegalMoves(gs) {
		if m.From() == types.NewSquare(1, 4) {
			assert.NotEqual(t, types.East, directionOf(m))
		}
	}
}

func TestOwnFishAndObstaclesOnPathAreHoppedOver(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(1, 4)).Set(types.NewSquare(2, 4)).Set(types.NewSquare(5, 4))
	b.Obstacles = b.Obstacles.Set(types.NewSquare(3, 4))
	gs := board.NewGameState(b, types.Red)

	distance := gs.Board.GetDistance(types.NewSquare(1, 4), types.East)
	assert.Equal(t, 3, distance) // three red fish on the line, obstacle doesn't count

	found := false
	for _, m := range LegalMoves(gs) {
		if m.From() == types.NewSquare(1, 4) && directionOf(m) == types.East {
			found = true
			assert.Equal(t, types.NewSquare(1+distance, 4), m.To())
		}
	}
	assert.True(t, found)
}

func TestHasLegalMovesFalseWhenCompletelyBoxedIn(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(0, 0))
	b.Obstacles = b.Obstacles.
		Set(types.NewSquare(1, 0)).
		Set(types.NewSquare(0, 1)).
		Set(types.NewSquare(1, 1))
	gs := board.NewGameState(b, types.Red)
	assert.False(t, HasLegalMoves(gs))
	assert.Empty(t, LegalMoves(gs))
}

func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(2, 4))
	b.Blue = b.Blue.Set(types.NewSquare(3, 4))
	gs := board.NewGameState(b, types.Red)
	keyBefore := gs.Key

	moves := LegalMoves(gs)
	assert.NotEmpty(t, moves)
	gs.DoMove(moves[0])
	assert.NotEqual(t, keyBefore, gs.Key)
	gs.UndoMove()
	assert.Equal(t, keyBefore, gs.Key)
	assert.Equal(t, b, gs.Board)
}

// directionOf recovers which of the eight directions a move's from->to
// vector corresponds to, for tests that care about direction rather
// than just the landing square.
func directionOf(m types.Move) types.Direction {
	dc := m.To().Col() - m.From().Col()
	dr := m.To().Row() - m.From().Row()
	sign := func(x int) int {
		if x > 0 {
			return 1
		}
		if x < 0 {
			return -1
		}
		return 0
	}
	nc, nr := sign(dc), sign(dr)
	for _, d := range types.AllDirections {
		if d.DCol() == nc && d.DRow() == nr {
			return d
		}
	}
	return types.DirectionLength
}
