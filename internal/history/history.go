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

// Package history provides data structures updated during search to give
// the move generator's ordering step information beyond the transposition
// table's single best move: which from/to pairs have produced cutoffs
// before, and which move tends to refute the move just played.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/piranhas/internal/types"
)

var out = message.NewPrinter(language.English)

// History tracks two move-ordering heuristics across a search: a
// history counter per color/from/to incremented whenever a move causes
// a beta cutoff (weighted by depth, so cutoffs found deep in the tree
// count for more), and a counter-move table recording, for each
// opponent move, the reply that most recently refuted it.
type History struct {
	HistoryCount [2][types.SquareLength][types.SquareLength]int64
	CounterMoves [types.SquareLength][types.SquareLength]types.Move
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Update records that move caused a beta cutoff at depth for color,
// and that it refuted lastMove (if any).
func (h *History) Update(color types.Color, move types.Move, depth int, lastMove types.Move) {
	h.HistoryCount[color][move.From()][move.To()] += int64(depth) * int64(depth)
	if lastMove != types.MoveNone {
		h.CounterMoves[lastMove.From()][lastMove.To()] = move
	}
}

// Score returns the accumulated history weight for color playing move -
// higher means this from/to pair has been a cutoff mover more often,
// and at greater depth, than its alternatives.
func (h *History) Score(color types.Color, move types.Move) int64 {
	return h.HistoryCount[color][move.From()][move.To()]
}

// CounterMove returns the move that most recently refuted lastMove, or
// MoveNone if none has been recorded.
func (h *History) CounterMove(lastMove types.Move) types.Move {
	if lastMove == types.MoveNone {
		return types.MoveNone
	}
	return h.CounterMoves[lastMove.From()][lastMove.To()]
}

// Clear resets all history and counter-move state, called between
// searches so one game's move-ordering bias doesn't leak into the next.
func (h *History) Clear() {
	h.HistoryCount = [2][types.SquareLength][types.SquareLength]int64{}
	h.CounterMoves = [types.SquareLength][types.SquareLength]types.Move{}
}

func (h *History) String() string {
	sb := strings.Builder{}
	for from := types.Square(0); from < types.SquareLength; from++ {
		for to := types.Square(0); to < types.SquareLength; to++ {
			red := h.HistoryCount[types.Red][from][to]
			blue := h.HistoryCount[types.Blue][from][to]
			if red == 0 && blue == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("Move=%s-%s: red=%-7d blue=%-7d cm=%s\n",
				from.String(), to.String(), red, blue, h.CounterMoves[from][to].String()))
		}
	}
	return sb.String()
}
