//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package mcts

import (
	"math"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/types"
)

// edge labels a materialized child by the move that produces it and the
// key of the state it lands on. Nodes never hold a pointer to another
// node directly - every edge is a lookup key into the tree's table, so
// the graph a node participates in is a set of map keys, not a web of Go
// pointers. That keeps removal a local operation: dropping a node from
// the table is enough, there is no pointer elsewhere that needs fixing up.
type edge struct {
	move  types.Move
	child board.MinimalKey
}

// raveStats is the all-moves-as-first statistic tracked per move,
// independent of which node it was played from.
type raveStats struct {
	n float64
	q float64
}

// node is one position in the search tree, keyed by its MinimalKey in
// the owning tree's table. Value bookkeeping (n, q) is always from this
// node's own side-to-move perspective; a parent folds a child's value in
// as the complement (n-q) since the side to move alternates every ply.
type node struct {
	key types.Key // Zobrist key, kept only for logging/diagnostics

	n float64
	q float64

	// unexpanded holds remaining legal moves not yet materialized into
	// children, pre-sorted by policy score (best first) so expansion
	// always peels off the most promising move next.
	unexpanded []scoredMove
	children   []edge

	// parents lists every node currently pointing at this one by edge;
	// the same state can be reached by more than one path. Root reuse
	// prunes the table to what is still reachable from the new root
	// rather than walking this list to decrement refcounts directly,
	// but the list is kept so that invariant stays checkable.
	parents []board.MinimalKey

	leaf          bool
	terminalDepth int
	lowerBound    float64

	rave map[types.Move]*raveStats
}

type scoredMove struct {
	move  types.Move
	score float64
}

func newNode(key types.Key) *node {
	return &node{key: key, lowerBound: math.Inf(-1)}
}

// raveFor returns (creating if necessary) the RAVE entry for move.
func (nd *node) raveFor(move types.Move) *raveStats {
	if nd.rave == nil {
		nd.rave = make(map[types.Move]*raveStats)
	}
	rs, ok := nd.rave[move]
	if !ok {
		rs = &raveStats{}
		nd.rave[move] = rs
	}
	return rs
}

// childByMove returns the already-materialized child edge for move, if any.
func (nd *node) childByMove(move types.Move) (edge, bool) {
	for _, e := range nd.children {
		if e.move == move {
			return e, true
		}
	}
	return edge{}, false
}

// fullyExpanded reports whether every legal move at this node has a
// materialized child - nothing left in unexpanded.
func (nd *node) fullyExpanded() bool {
	return len(nd.unexpanded) == 0
}

// tree owns every node reachable from the current root, keyed by
// MinimalKey exactly the way the transposition table keys entries by
// Zobrist hash - except collisions here are impossible (the key is the
// full (red, blue, turn) triple, not a truncated hash), so one table
// slot per distinct state is exact, not probabilistic.
type tree struct {
	nodes map[board.MinimalKey]*node
	root  board.MinimalKey
}

func newTree() *tree {
	return &tree{nodes: make(map[board.MinimalKey]*node)}
}

func (t *tree) get(k board.MinimalKey) (*node, bool) {
	nd, ok := t.nodes[k]
	return nd, ok
}

func (t *tree) getOrCreate(gs *board.GameState) (board.MinimalKey, *node) {
	k := gs.Minimal()
	nd, ok := t.nodes[k]
	if !ok {
		nd = newNode(gs.Key)
		t.nodes[k] = nd
	}
	return k, nd
}

// reuseRoot keeps only the subtree reachable from newRoot, discarding
// every other node in the table in one pass - the practical equivalent
// of "rewire parent to a sentinel" when edges are keys rather than
// pointers: there is no parent pointer to rewire, so the table is simply
// rebuilt from what is still reachable.
func (t *tree) reuseRoot(newRoot board.MinimalKey) {
	if _, ok := t.nodes[newRoot]; !ok {
		t.nodes = make(map[board.MinimalKey]*node)
		t.root = newRoot
		return
	}

	reachable := make(map[board.MinimalKey]*node, len(t.nodes))
	queue := []board.MinimalKey{newRoot}
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		if _, already := reachable[k]; already {
			continue
		}
		nd := t.nodes[k]
		reachable[k] = nd
		for _, e := range nd.children {
			queue = append(queue, e.child)
		}
	}
	t.nodes = reachable
	t.root = newRoot
}
