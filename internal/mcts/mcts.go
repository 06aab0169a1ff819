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

// Package mcts implements Monte Carlo tree search with RAVE over a
// single GameState, the decision harness's alternative to the
// alpha-beta branch in internal/search for positions where a wide,
// shallow tree beats a narrow, deep one. Like internal/search, a Search
// here is called synchronously: Run blocks for its iteration budget and
// returns a Result, there is no background worker.
package mcts

import (
	"math"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/evaluator"
	myLogging "github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/rules"
	"github.com/frankkopp/piranhas/internal/types"
)

var out = message.NewPrinter(language.English)

// Result reports the outcome of one Run call.
type Result struct {
	BestMove   types.Move
	Value      float64
	Iterations uint64
	SearchTime time.Duration
}

func (r *Result) String() string {
	return out.Sprintf("bestmove=%s value=%.3f iterations=%d time=%dms",
		r.BestMove.String(), r.Value, r.Iterations, r.SearchTime.Milliseconds())
}

// Search is a reusable MCTS/RAVE searcher. Create one with NewSearch and
// call Run once per move the harness needs; AdvanceRoot lets the tree
// built for one move be reused (trimmed, not rebuilt) for the next.
type Search struct {
	log *logging.Logger

	tree *tree
	eval *evaluator.Evaluator

	iterations uint64
}

// NewSearch builds an empty Search with its own node table and evaluator.
func NewSearch() *Search {
	return &Search{
		log:  myLogging.GetLog(),
		tree: newTree(),
		eval: evaluator.NewEvaluator(),
	}
}

// NewGame discards the entire tree, called between independent games.
func (s *Search) NewGame() {
	s.tree = newTree()
}

// AdvanceRoot rewires the tree onto gs, keeping the subtree below it (if
// any) and discarding everything else - the root reuse the selection
// phase benefits from across successive moves of the same game.
func (s *Search) AdvanceRoot(gs *board.GameState) {
	s.tree.reuseRoot(gs.Minimal())
}

// Run grows the tree rooted at gs for budget (iteration count capped by
// config.Settings.Search.MctsIterationBudget when non-zero, wall clock
// budget always enforced) and returns its current best root move: the
// most-visited child, the standard MCTS choice since it is far less
// noisy than the highest-value one.
func (s *Search) Run(gs *board.GameState, budget time.Duration) Result {
	start := time.Now()
	s.iterations = 0
	rootKey, root := s.tree.getOrCreate(gs)
	s.tree.root = rootKey
	if root.unexpanded == nil && len(root.children) == 0 {
		root.unexpanded = rankedMoves(gs)
	}

	iterBudget := uint64(config.Settings.Search.MctsIterationBudget)
	for {
		if iterBudget != 0 && s.iterations >= iterBudget {
			break
		}
		if time.Since(start) >= budget {
			break
		}
		s.iterate(gs.Clone(), rootKey)
		s.iterations++
	}

	result := Result{
		SearchTime: time.Since(start),
		Iterations: s.iterations,
	}
	if best, value, ok := s.bestChild(root); ok {
		result.BestMove = best
		result.Value = value
	}
	return result
}

// bestChild picks the most-visited materialized child of nd, breaking
// ties by value.
func (s *Search) bestChild(nd *node) (types.Move, float64, bool) {
	var bestMove types.Move
	bestN, bestQ := -1.0, 0.0
	found := false
	for _, e := range nd.children {
		child, ok := s.tree.get(e.child)
		if !ok || child.n == 0 {
			continue
		}
		// child.q accumulates in the child's own side-to-move
		// perspective; flip it to the parent's before comparing.
		value := (child.n - child.q) / child.n
		if child.n > bestN || (child.n == bestN && value > bestQ) {
			bestN, bestQ = child.n, value
			bestMove = e.move
			found = true
		}
	}
	return bestMove, bestQ, found
}

// RootChildValue is one root child's move and its current estimated
// value from the root's side to move, for callers (the self-play
// logger) that want the whole visited-move distribution rather than
// just the single best move Run returns.
type RootChildValue struct {
	Move  types.Move
	Value float64
	Visits uint64
}

// RootChildValues reports every materialized root child's move, value
// and visit count as of the most recent Run call. Unvisited children
// (never selected, still in the root's unexpanded list) are omitted -
// they have no value estimate to report.
func (s *Search) RootChildValues() []RootChildValue {
	root, ok := s.tree.get(s.tree.root)
	if !ok {
		return nil
	}
	values := make([]RootChildValue, 0, len(root.children))
	for _, e := range root.children {
		child, ok := s.tree.get(e.child)
		if !ok || child.n == 0 {
			continue
		}
		values = append(values, RootChildValue{
			Move:   e.move,
			Value:  (child.n - child.q) / child.n,
			Visits: uint64(child.n),
		})
	}
	return values
}

// iterate runs one selection/expansion/simulation/backpropagation pass
// starting at rootKey, mutating gs in place (advancing and unwinding it)
// to avoid allocating a fresh GameState per node on the path.
func (s *Search) iterate(gs *board.GameState, rootKey board.MinimalKey) {
	type step struct {
		key  board.MinimalKey
		move types.Move
	}
	var path []step
	key := rootKey

	for {
		nd := s.tree.nodes[key]
		if nd.leaf || rules.IsFinished(gs) {
			break
		}

		move, _, isNewChild := s.selectOrExpand(gs, nd, key == rootKey)
		gs.DoMove(move)
		childKey := gs.Minimal()
		path = append(path, step{key: key, move: move})

		if isNewChild {
			childNode := newNode(gs.Key)
			childNode.parents = append(childNode.parents, key)
			s.tree.nodes[childKey] = childNode
			if rules.IsFinished(gs) {
				childNode.leaf = true
				childNode.lowerBound = terminalReward(gs)
			} else {
				childNode.unexpanded = rankedMoves(gs)
			}
			nd.children = append(nd.children, edge{move: move, child: childKey})
			for i, sm := range nd.unexpanded {
				if sm.move == move {
					nd.unexpanded = append(nd.unexpanded[:i], nd.unexpanded[i+1:]...)
					break
				}
			}
			key = childKey
			break
		}
		key = childKey
	}

	reward, rolloutMoves := s.rollout(gs)

	// keys runs from the leaf (the node the playout started from)
	// back up to the root, so the leaf's own statistics are folded in
	// before any ancestor's - a step the path slice alone does not
	// cover, since path records edges (parent, move), not the leaf key.
	keys := make([]board.MinimalKey, 0, len(path)+1)
	keys = append(keys, key)
	for i := len(path) - 1; i >= 0; i-- {
		keys = append(keys, path[i].key)
	}

	// raveMoves accumulates every move played anywhere below a node
	// (both the in-tree portion of the path and the playout) so RAVE
	// credit flows to moves this node never directly expanded.
	raveMoves := append([]types.Move(nil), rolloutMoves...)
	value := reward

	for idx, k := range keys {
		nd := s.tree.nodes[k]

		clamped := math.Max(value, nd.lowerBound)
		nd.n++
		nd.q += clamped

		for _, m := range raveMoves {
			rs := nd.raveFor(m)
			rs.n++
			rs.q += clamped
		}
		if idx < len(path) {
			raveMoves = append(raveMoves, path[len(path)-1-idx].move)
		}

		// the side to move alternates every ply, so the value the
		// next node up should fold in is this node's complement.
		value = 1 - clamped
	}
}

// selectOrExpand chooses the next move to descend with at nd: a
// materialized child scored by UCB+RAVE, or an unexpanded move scored by
// FPU, whichever currently ranks highest. It reports whether the chosen
// move is still unexpanded (the caller must then materialize it).
func (s *Search) selectOrExpand(gs *board.GameState, nd *node, atRoot bool) (types.Move, *node, bool) {
	bestScore := math.Inf(-1)
	var bestMove types.Move
	var bestChild *node
	isNew := false

	for _, e := range nd.children {
		child := s.tree.nodes[e.child]
		rs := nd.rave[e.move]
		raveN, raveQ := 0.0, 0.0
		if rs != nil {
			raveN, raveQ = rs.n, rs.q
		}
		var score float64
		if child.n == 0 {
			score = fpu(atRoot, nd.n, nd.q, raveN, raveQ)
		} else {
			// flip the child's self-perspective value sum to the
			// parent's before feeding it to the UCB exploitation term.
			score = ucbRave(math.Max(nd.n, 1), child.n, child.n-child.q, raveN, raveQ)
		}
		if score > bestScore {
			bestScore = score
			bestMove = e.move
			bestChild = child
			isNew = false
		}
	}

	for _, sm := range nd.unexpanded {
		rs := nd.rave[sm.move]
		raveN, raveQ := 0.0, 0.0
		if rs != nil {
			raveN, raveQ = rs.n, rs.q
		}
		score := fpu(atRoot, nd.n, nd.q, raveN, raveQ)
		if score > bestScore {
			bestScore = score
			bestMove = sm.move
			bestChild = nil
			isNew = true
		}
	}

	return bestMove, bestChild, isNew
}

// rewardCap bounds the swarm-progress bonus added to a decisive rollout
// result so it can never flip a loss into something scoring above a draw.
const rewardCap = 0.25

// rollout plays a single greedy, policy-driven game to completion from
// gs (which is mutated and left at the terminal position) and scores it
// from the perspective of perspective. It returns every move played
// along the way for RAVE credit assignment.
func (s *Search) rollout(gs *board.GameState) (float64, []types.Move) {
	perspective := gs.Turn
	var played []types.Move

	for !rules.IsFinished(gs) {
		ranked := rankedMoves(gs)
		if len(ranked) == 0 {
			break
		}
		m := ranked[0].move
		gs.DoMove(m)
		played = append(played, m)
	}

	base := 0.5
	switch rules.Result(gs) {
	case rules.RedWins:
		if perspective == types.Red {
			base = 1
		} else {
			base = 0
		}
	case rules.BlueWins:
		if perspective == types.Blue {
			base = 1
		} else {
			base = 0
		}
	}

	own := gs.Board.FieldsOf(perspective)
	opp := gs.Board.FieldsOf(perspective.Other())
	bonus := 0.0
	if own.PopCount() > 0 && opp.PopCount() > 0 {
		bonus = rewardCap * (progressFraction(own) - progressFraction(opp))
	}

	reward := base + bonus
	if reward > 1 {
		reward = 1
	}
	if reward < 0 {
		reward = 0
	}
	return reward, played
}

// terminalReward scores a just-finished position from the perspective of
// its own side to move, the same convention rollout uses: 1 for a win,
// 0 for a loss, 0.5 for a draw. Used to seed a newly expanded terminal
// node's lower bound so a noisy future simulation can never back up a
// worse value than the position's proven one.
func terminalReward(gs *board.GameState) float64 {
	switch rules.Result(gs) {
	case rules.RedWins:
		if gs.Turn == types.Red {
			return 1
		}
		return 0
	case rules.BlueWins:
		if gs.Turn == types.Blue {
			return 1
		}
		return 0
	default:
		return 0.5
	}
}

func progressFraction(own types.Bitboard) float64 {
	n := own.PopCount()
	if n == 0 {
		return 0
	}
	return math.Max(0, 1-variance(own)/float64(n*n))
}
