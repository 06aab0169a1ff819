//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//

package movegen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/board"
)

func TestPerftDepth1MatchesLegalMoveCount(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(1)))
	p := NewPerft()
	p.StartPerft(gs, 1)
	assert.Equal(t, uint64(len(LegalMoves(gs))), p.Nodes)
}

func TestPerftDepth2IsConsistentWithDepth1(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(2)))
	p1 := NewPerft()
	p1.StartPerft(gs, 1)
	p2 := NewPerft()
	p2.StartPerft(gs, 2)
	// every depth-1 branch has at least one legal reply (the game cannot
	// end after red's very first move from the initial layout), so depth
	// 2 must expand to strictly more nodes than depth 1.
	assert.Greater(t, p2.Nodes, p1.Nodes)
}

func TestPerftLeavesPositionUnchanged(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(3)))
	before := gs.Board
	beforeKey := gs.Key
	p := NewPerft()
	p.StartPerft(gs, 2)
	assert.Equal(t, before, gs.Board)
	assert.Equal(t, beforeKey, gs.Key)
}
