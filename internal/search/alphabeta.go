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

package search

import (
	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/movegen"
	"github.com/frankkopp/piranhas/internal/moveslice"
	"github.com/frankkopp/piranhas/internal/rules"
	"github.com/frankkopp/piranhas/internal/transpositiontable"
	"github.com/frankkopp/piranhas/internal/types"
)

// searchRoot runs one full iteration at depth over every root move,
// returning the value of the best one, its principal variation and
// whether the iteration was cut short by the time/node budget.
func (s *Search) searchRoot(pos *board.GameState, depth int, alpha, beta float64) (float64, moveslice.MoveSlice, bool) {
	var ttMove types.Move
	if s.tt != nil {
		if e := s.tt.Probe(pos.Key); e != nil {
			ttMove = e.Move()
		}
	}

	moves := orderedMoves(pos, s, 0, ttMove, pos.LastMove())
	if len(moves) == 0 {
		// no legal move for the side to move: evaluate the terminal
		// position directly, there is no child to recurse into.
		return s.terminalValue(pos, 0), nil, false
	}

	best := float64(-types.Mate - 1)
	var bestMove types.Move
	var bestPv moveslice.MoveSlice
	bestIndex := 0

	for i, m := range moves {
		var childPv moveslice.MoveSlice
		pos.DoMove(m)
		s.nodesVisited++

		var value float64
		if i == 0 || !config.Settings.Search.UsePVS {
			value = -s.search(pos, depth-1, 1, -beta, -alpha, m, &childPv)
		} else {
			value = -s.search(pos, depth-1, 1, -alpha-1, -alpha, m, &childPv)
			if value > alpha && value < beta {
				s.statistics.RootPvsResearches++
				childPv = childPv[:0]
				value = -s.search(pos, depth-1, 1, -beta, -alpha, m, &childPv)
			}
		}
		pos.UndoMove()

		if s.checkStop(depth) {
			return best, bestPv, true
		}

		if value > best {
			best = value
			bestMove = m
			bestIndex = i
			bestPv = append(moveslice.MoveSlice{m}, childPv...)
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			if i == 0 {
				s.statistics.BetaCuts1st++
			}
			break
		}
	}

	if s.tt != nil {
		s.tt.Put(pos.Key, bestMove, depth, best, transpositiontable.Exact)
	}
	s.statistics.CurrentBestRootMove = bestMove
	s.statistics.CurrentBestRootMoveValue = best
	s.statistics.CurrentRootMoveIndex = bestIndex
	return best, bestPv, false
}

// search is the negamax workhorse: alpha/beta over gs at the given
// remaining depth and ply from root, writing the principal variation
// below this node into pv. lastMove is the move that led to gs, used
// for counter-move ordering of the reply.
func (s *Search) search(gs *board.GameState, depth, ply int, alpha, beta float64, lastMove types.Move, pv *moveslice.MoveSlice) float64 {
	if s.checkStop(depth) {
		return 0
	}

	if rules.IsFinished(gs) {
		return s.terminalValue(gs, ply)
	}

	if depth <= 0 {
		return s.quiescence(gs, ply, alpha, beta)
	}

	origAlpha := alpha
	var ttMove types.Move
	if s.tt != nil {
		if e := s.tt.Probe(gs.Key); e != nil {
			s.statistics.TTHit++
			ttMove = e.Move()
			if config.Settings.Search.UseTTValue && e.Depth() >= depth {
				switch e.Vtype() {
				case transpositiontable.Exact:
					s.statistics.TTCuts++
					return e.Value()
				case transpositiontable.LowerBound:
					if e.Value() > alpha {
						alpha = e.Value()
					}
				case transpositiontable.UpperBound:
					if e.Value() < beta {
						beta = e.Value()
					}
				}
				if alpha >= beta {
					s.statistics.TTCuts++
					return e.Value()
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	// null move pruning: if passing the turn entirely still leaves the
	// opponent unable to beat beta, this node is not worth searching
	// in full. Skipped below NmpDepth and at the root; no zugzwang
	// safeguard is applied.
	if config.Settings.Search.UseNullMove && depth >= config.Settings.Search.NmpDepth && ply > 0 {
		gs.DoNullMove()
		nullValue := -s.search(gs, depth-1-config.Settings.Search.NmpReduction, ply+1, -beta, -beta+1, types.MoveNone, &moveslice.MoveSlice{})
		gs.UndoNullMove()
		if s.stopped {
			return 0
		}
		if nullValue >= beta {
			s.statistics.NullMoveCuts++
			return nullValue
		}
	}

	moves := orderedMoves(gs, s, ply, ttMove, lastMove)
	if len(moves) == 0 {
		return s.terminalValue(gs, ply)
	}

	best := float64(-types.Mate - 1)
	var bestMove types.Move

	for i, m := range moves {
		var childPv moveslice.MoveSlice
		reduction := 0
		if config.Settings.Search.UseLMR && depth >= config.Settings.Search.LmrDepth &&
			i >= config.Settings.Search.LmrMovesSearched && !gs.Board.FieldsOf(gs.Turn.Other()).Test(m.To()) {
			reduction = LmrReduction(depth, i)
		}

		gs.DoMove(m)
		s.nodesVisited++

		var value float64
		switch {
		case i == 0 || !config.Settings.Search.UsePVS:
			value = -s.search(gs, depth-1-reduction, ply+1, -beta, -alpha, m, &childPv)
		default:
			value = -s.search(gs, depth-1-reduction, ply+1, -alpha-1, -alpha, m, &childPv)
			if value > alpha {
				s.statistics.PvsResearches++
				childPv = childPv[:0]
				value = -s.search(gs, depth-1-reduction, ply+1, -beta, -alpha, m, &childPv)
			}
		}
		if reduction > 0 && value > alpha {
			s.statistics.LmrResearches++
			childPv = childPv[:0]
			value = -s.search(gs, depth-1, ply+1, -beta, -alpha, m, &childPv)
		} else if reduction > 0 {
			s.statistics.LmrReductions++
		}

		gs.UndoMove()

		if s.stopped {
			return 0
		}

		if value > best {
			best = value
			bestMove = m
			*pv = append((*pv)[:0], m)
			*pv = append(*pv, childPv...)
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			if i == 0 {
				s.statistics.BetaCuts1st++
			}
			if !gs.Board.FieldsOf(gs.Turn.Other()).Test(m.To()) {
				if config.Settings.Search.UseKillers {
					s.storeKiller(ply, m)
				}
				if config.Settings.Search.UseHistory {
					s.history.Update(gs.Turn, m, depth, lastMove)
				}
			}
			break
		}
	}

	if s.tt != nil {
		vtype := transpositiontable.Exact
		switch {
		case best <= origAlpha:
			vtype = transpositiontable.UpperBound
		case best >= beta:
			vtype = transpositiontable.LowerBound
		}
		s.tt.Put(gs.Key, bestMove, depth, best, vtype)
	}

	return best
}

// quiescence extends the search along capture lines only, to avoid
// evaluating a position in the middle of an exchange. Captures are
// finite here (the board shrinks every capture) so this always
// terminates without an explicit depth bound.
func (s *Search) quiescence(gs *board.GameState, ply int, alpha, beta float64) float64 {
	if s.checkStop(0) {
		return 0
	}
	if rules.IsFinished(gs) {
		return s.terminalValue(gs, ply)
	}
	if !config.Settings.Search.UseQuiescence {
		return s.evaluate(gs)
	}

	var ttMove types.Move
	if config.Settings.Search.UseQSTT && s.tt != nil {
		if e := s.tt.Probe(gs.Key); e != nil {
			ttMove = e.Move()
			if e.Vtype() == transpositiontable.Exact {
				return e.Value()
			}
		}
	}

	standPat := s.evaluate(gs)
	if config.Settings.Search.UseQSStandpat {
		if standPat >= beta {
			s.statistics.StandpatCuts++
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	captures := movegen.Captures(gs)
	scores := s.scoreMoves(gs, captures, ply, ttMove, gs.LastMove())
	captures.SortByScore(scores)

	best := standPat
	for _, m := range captures {
		gs.DoMove(m)
		s.nodesVisited++
		value := -s.quiescence(gs, ply+1, -beta, -alpha)
		gs.UndoMove()

		if s.stopped {
			return 0
		}
		if value > best {
			best = value
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			break
		}
	}
	return best
}

// terminalValue scores a finished position from the perspective of the
// side to move, anchored on types.Mate so that a faster win always
// outscores a slower one and ties at the ply limit score exactly zero.
func (s *Search) terminalValue(gs *board.GameState, ply int) float64 {
	switch rules.Result(gs) {
	case rules.Draw, rules.NotOver:
		return 0
	default:
		winner, _ := rules.Winner(gs)
		if winner == gs.Turn {
			return types.MateIn(ply)
		}
		return -types.MateIn(ply)
	}
}

// evaluate wraps the static evaluator, counting the call for statistics.
func (s *Search) evaluate(gs *board.GameState) float64 {
	s.statistics.Evaluations++
	return s.eval.Evaluate(gs)
}
