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
	"sort"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/movegen"
	"github.com/frankkopp/piranhas/internal/types"
)

// variance returns the sum of per-axis population variances of own's
// squares, the same quantity the static evaluator's spread feature is
// built from: Σx²-(Σx)²/n plus the matching term for y. A tighter, more
// huddled swarm scores a smaller variance.
func variance(own types.Bitboard) float64 {
	n := own.PopCount()
	if n == 0 {
		return 0
	}
	var sumX, sumY, sumX2, sumY2 float64
	remaining := own
	for !remaining.IsEmpty() {
		var sq types.Square
		sq, remaining = remaining.PopLsb()
		x, y := float64(sq.Col()), float64(sq.Row())
		sumX += x
		sumY += y
		sumX2 += x * x
		sumY2 += y * y
	}
	nf := float64(n)
	return (sumX2 - sumX*sumX/nf) + (sumY2 - sumY*sumY/nf)
}

// policyScore ranks a legal move m out of gs by how much it tightens the
// mover's own swarm: the drop in variance the move produces plus a
// capture bonus (removing an opponent fish is always worth considering
// first). There is no positional term.
func policyScore(gs *board.GameState, m types.Move) float64 {
	own := gs.Board.FieldsOf(gs.Turn)
	before := variance(own)

	captured := gs.Board.FieldsOf(gs.Turn.Other()).Test(m.To())

	afterOwn := own.Clear(m.From()).Set(m.To())
	after := variance(afterOwn)

	score := before - after
	if captured {
		score += 1000
	}
	return score
}

// rankedMoves returns gs's legal moves sorted best-first by policyScore,
// the order expansion peels children off in and the order the greedy
// playout policy picks from.
func rankedMoves(gs *board.GameState) []scoredMove {
	legal := movegen.LegalMoves(gs)
	ranked := make([]scoredMove, len(legal))
	for i, m := range legal {
		ranked[i] = scoredMove{move: m, score: policyScore(gs, m)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}
