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

// Package search implements iterative-deepening alpha-beta over a
// single GameState. Unlike a UCI engine, a Piranhas search is called
// and answered synchronously by the decision harness: there is no
// ponder, no background timer thread, no stop command arriving on a
// channel mid-search - Run blocks until the time budget (or Limits)
// is spent and returns a Result. Keep one Search per decision harness
// goroutine; it owns a transposition table, history table and killer
// table that are all reused (not cleared) across successive Run calls
// within the same game, and reset by NewGame between games.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/evaluator"
	"github.com/frankkopp/piranhas/internal/history"
	myLogging "github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/movegen"
	"github.com/frankkopp/piranhas/internal/moveslice"
	"github.com/frankkopp/piranhas/internal/transpositiontable"
	"github.com/frankkopp/piranhas/internal/types"
)

var out = message.NewPrinter(language.English)

// maxKillers is the number of quiet killer moves remembered per ply.
const maxKillers = 2

// maxDepth bounds the iterative deepening depth and sizes the per-ply
// killer table.
const maxDepth = 128

// Search is a reusable iterative-deepening alpha-beta searcher.
// Create one with NewSearch and call Run for each move the harness
// needs; it is not safe for concurrent use by more than one goroutine
// at a time.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	tt      *transpositiontable.TtTable
	eval    *evaluator.Evaluator
	history *history.History
	killers [maxDepth][maxKillers]types.Move

	startTime    time.Time
	timeLimit    time.Duration
	nodesLimit   uint64
	nodesVisited uint64
	stopped      bool

	statistics Statistics
}

// NewSearch builds a Search with its own transposition table sized per
// configuration, a fresh history table and evaluator.
func NewSearch() *Search {
	s := &Search{
		log:     myLogging.GetLog(),
		slog:    myLogging.GetSearchLog(),
		eval:    evaluator.NewEvaluator(),
		history: history.NewHistory(),
	}
	if config.Settings.Search.UseTT {
		s.tt = transpositiontable.NewTtTable(config.Settings.Search.TTSizeMb)
	}
	return s
}

// NewGame resets all state that must not leak across independent games:
// the transposition table, history/counter-move table and killer table.
func (s *Search) NewGame() {
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history.Clear()
	s.killers = [maxDepth][maxKillers]types.Move{}
}

// Stats returns the statistics gathered by the most recent Run call.
func (s *Search) Stats() Statistics {
	return s.statistics
}

// Run searches gs synchronously and returns the best move found within
// limits. It never panics and never returns Result.Aborted with a zero
// BestMove once the position has at least one legal move - the first
// iterative-deepening iteration is always allowed to finish before the
// time budget is checked, so depth 1 always completes.
func (s *Search) Run(gs *board.GameState, limits Limits) Result {
	s.startTime = time.Now()
	s.stopped = false
	s.nodesVisited = 0
	s.statistics = Statistics{}

	moveTimeMillis := limits.MoveTimeMillis
	if moveTimeMillis == 0 {
		moveTimeMillis = config.Settings.Search.MoveTimeMillis
	}
	s.timeLimit = time.Duration(moveTimeMillis) * time.Millisecond
	if limits.Infinite {
		s.timeLimit = 0
	}
	s.nodesLimit = limits.Nodes

	maxD := limits.Depth
	if maxD == 0 {
		maxD = config.Settings.Search.MaxDepth
	}
	if maxD >= maxDepth {
		maxD = maxDepth - 1
	}

	if s.tt != nil {
		s.tt.AgeEntries()
	}

	pos := gs.Clone()
	result := Result{}
	alpha, beta := float64(-types.Mate), float64(types.Mate)

	for depth := 1; depth <= maxD; depth++ {
		s.statistics.CurrentIterationDepth = depth

		value, pv, aborted := s.searchRoot(pos, depth, alpha, beta)
		if aborted && depth > 1 {
			result.Aborted = true
			break
		}

		// aspiration re-search: widen and redo this depth if the root
		// value fell outside the narrow window we tried it with.
		if config.Settings.Search.UseAspiration && depth > 1 {
			delta := float64(config.Settings.Search.AspirationDelta)
			for (value <= alpha || value >= beta) && !aborted {
				s.statistics.AspirationResearches++
				if value <= alpha {
					alpha = value - delta
				} else {
					beta = value + delta
				}
				delta *= 2
				value, pv, aborted = s.searchRoot(pos, depth, alpha, beta)
			}
			if aborted {
				result.Aborted = true
				break
			}
		}

		result.BestValue = value
		result.SearchDepth = depth
		result.Pv = append(moveslice.MoveSlice(nil), pv...)
		if len(pv) > 0 {
			result.BestMove = pv[0]
		}

		if config.Settings.Search.UseAspiration {
			delta := float64(config.Settings.Search.AspirationDelta)
			alpha, beta = value-delta, value+delta
		}

		if s.timedOut() {
			break
		}
		// a forced mate found at this depth cannot be improved on by
		// searching deeper: the fastest win is already in hand.
		if value >= types.MateIn(maxDepth) || value <= -types.MateIn(maxDepth) {
			break
		}
	}

	result.SearchTime = time.Since(s.startTime)
	return result
}

// timedOut reports whether the configured time budget has elapsed.
// Infinite searches (timeLimit == 0) never time out.
func (s *Search) timedOut() bool {
	if s.timeLimit == 0 {
		return false
	}
	return time.Since(s.startTime) >= s.timeLimit
}

// checkStop is called at every node. It checks the node limit on each
// call but reads the clock only at depth 3 or more and on every 1024th
// node, so the overhead of reading the clock stays negligible.
func (s *Search) checkStop(depth int) bool {
	if s.stopped {
		return true
	}
	if s.nodesLimit != 0 && s.nodesVisited >= s.nodesLimit {
		s.stopped = true
		return true
	}
	if depth >= 3 && s.nodesVisited&1023 == 0 && s.timedOut() {
		s.stopped = true
		return true
	}
	return false
}

func (s *Search) storeKiller(ply int, m types.Move) {
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

func (s *Search) isKiller(ply int, m types.Move) bool {
	return m == s.killers[ply][0] || m == s.killers[ply][1]
}

// scoreMoves assigns a move-ordering score to each move in ms for the
// node at ply, highest score first: TT move, then captures, then
// killers, then the counter-move reply to lastMove, then history.
func (s *Search) scoreMoves(gs *board.GameState, ms moveslice.MoveSlice, ply int, ttMove types.Move, lastMove types.Move) []int {
	scores := make([]int, len(ms))
	counter := types.MoveNone
	if config.Settings.Search.UseCounterMoves {
		counter = s.history.CounterMove(lastMove)
	}
	opponent := gs.Board.FieldsOf(gs.Turn.Other())
	for i, m := range ms {
		switch {
		case config.Settings.Search.UseTTMove && m == ttMove:
			scores[i] = 1_000_000
		case opponent.Test(m.To()):
			scores[i] = 500_000
		case config.Settings.Search.UseKillers && s.isKiller(ply, m):
			scores[i] = 400_000
		case config.Settings.Search.UseCounterMoves && m == counter:
			scores[i] = 300_000
		case config.Settings.Search.UseHistory:
			scores[i] = 1000 + int(s.history.Score(gs.Turn, m))
		default:
			scores[i] = 0
		}
	}
	return scores
}

func orderedMoves(gs *board.GameState, s *Search, ply int, ttMove types.Move, lastMove types.Move) moveslice.MoveSlice {
	ms := movegen.LegalMoves(gs)
	scores := s.scoreMoves(gs, ms, ply, ttMove, lastMove)
	ms.SortByScore(scores)
	return ms
}
