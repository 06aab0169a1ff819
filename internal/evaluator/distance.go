//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//

package evaluator

import (
	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/swarm"
	"github.com/frankkopp/piranhas/internal/types"
)

// swarmDistanceFeature is the `dist` term of the static evaluator: the
// mean negative squared shortest-path length, in 8-neighbor steps, from
// each of own's pieces to own's greatest swarm. The path may cross
// empty cells and own's own pieces but never a cell held by the enemy
// or by an obstacle - a fish cannot walk through what it cannot slide
// through.
func swarmDistanceFeature(gs *board.GameState, own, enemy types.Bitboard) float64 {
	n := own.PopCount()
	if n == 0 {
		return 0
	}
	greatest := greatestComponent(own)
	blocked := enemy.Or(gs.Board.Obstacles)

	dist := bfsDistances(greatest, blocked)

	var total float64
	remaining := own
	for !remaining.IsEmpty() {
		var sq types.Square
		sq, remaining = remaining.PopLsb()
		d := dist[sq]
		total += -float64(d * d)
	}
	return total / float64(n)
}

// greatestComponent returns the largest 8-connected component of own,
// or an empty bitboard if own itself is empty.
func greatestComponent(own types.Bitboard) types.Bitboard {
	components := swarm.Decompose(own)
	if len(components) == 0 {
		return types.Bitboard{}
	}
	return components[0]
}

// bfsDistances runs a multi-source breadth-first search outward from
// every cell of seed, stepping to 8-neighbors that are not set in
// blocked, and returns the step count to reach each of the 100 board
// cells (seed cells are distance 0). Cells unreachable without crossing
// blocked are left at their zero value, which only matters for cells
// that are themselves blocked and so never queried by the caller.
func bfsDistances(seed, blocked types.Bitboard) [100]int {
	var dist [100]int
	var visited [100]bool

	queue := make([]types.Square, 0, 100)
	remaining := seed
	for !remaining.IsEmpty() {
		var sq types.Square
		sq, remaining = remaining.PopLsb()
		visited[sq] = true
		queue = append(queue, sq)
	}

	for head := 0; head < len(queue); head++ {
		sq := queue[head]
		d := dist[sq]
		for _, dir := range types.AllDirections {
			next := types.NewSquare(sq.Col()+dir.DCol(), sq.Row()+dir.DRow())
			if next == types.SqNone || visited[next] || blocked.Test(next) {
				continue
			}
			visited[next] = true
			dist[next] = d + 1
			queue = append(queue, next)
		}
	}
	return dist
}
