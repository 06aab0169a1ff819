//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//

package swarm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/types"
)

func squares(coords [][2]int) types.Bitboard {
	var b types.Bitboard
	for _, c := range coords {
		b = b.Set(types.NewSquare(c[0], c[1]))
	}
	return b
}

func TestGreatestSizeSingleConnectedGroup(t *testing.T) {
	own := squares([][2]int{{0, 0}, {1, 0}, {1, 1}})
	assert.Equal(t, 3, GreatestSize(own))
	assert.True(t, IsConnected(own))
}

func TestGreatestSizeTwoDisjointGroups(t *testing.T) {
	own := squares([][2]int{{0, 0}, {1, 0}, {8, 8}})
	assert.Equal(t, 2, GreatestSize(own))
	assert.False(t, IsConnected(own))
}

func TestDiagonalTouchCounts(t *testing.T) {
	// diagonal adjacency must count as connected (8-connectivity)
	own := squares([][2]int{{3, 3}, {4, 4}})
	assert.Equal(t, 2, GreatestSize(own))
}

func TestDecomposeOrdersLargestFirst(t *testing.T) {
	own := squares([][2]int{{0, 0}, {1, 0}, {1, 1}, {8, 8}})
	comps := Decompose(own)
	assert.Len(t, comps, 2)
	assert.Equal(t, 3, comps[0].PopCount())
	assert.Equal(t, 1, comps[1].PopCount())
}

func TestEmptyIsNotConnected(t *testing.T) {
	assert.False(t, IsConnected(types.Bitboard{}))
	assert.Equal(t, 0, GreatestSize(types.Bitboard{}))
}
