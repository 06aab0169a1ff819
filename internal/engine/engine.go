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

// Package engine is the decision harness: the single entry point a
// player (human-driven CLI, match driver, or xmlclient) calls to turn a
// position into a move, without needing to know whether that move came
// from alpha-beta or MCTS this turn.
package engine

import (
	"errors"
	"time"

	"github.com/op/go-logging"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/config"
	myLogging "github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/mcts"
	"github.com/frankkopp/piranhas/internal/movegen"
	"github.com/frankkopp/piranhas/internal/search"
	"github.com/frankkopp/piranhas/internal/types"
)

// ErrNoMove is returned by OnMoveRequest when it has no move to play:
// either the side to move has no legal move, or neither search produced
// one. Callers treat it as fatal rather than retry.
var ErrNoMove = errors.New("engine: no move produced")

// Engine owns one alpha-beta searcher and one MCTS searcher and picks
// between them per move. Not safe for concurrent use; a match worker
// that plays several games concurrently needs one Engine per game.
type Engine struct {
	log *logging.Logger

	ab   *search.Search
	tree *mcts.Search

	lastValues     []RootValue
	policyOverride *bool
}

// RootValue is one root move this engine considered on its most recent
// OnMoveRequest call, and the value it settled on for that move - not
// just the move it ultimately played. Alpha-beta only ever reports its
// single principal move, so its RootValue slice always has length 1;
// MCTS reports every child it actually visited.
type RootValue struct {
	Move  types.Move
	Value float64
}

// LastValues reports the root-move distribution from the most recent
// OnMoveRequest call, for callers (the self-play logger) that want more
// than just the chosen move.
func (e *Engine) LastValues() []RootValue {
	return e.lastValues
}

// NewEngine builds an Engine with a fresh alpha-beta searcher and MCTS tree.
func NewEngine() *Engine {
	return &Engine{
		log:  myLogging.GetLog(),
		ab:   search.NewSearch(),
		tree: mcts.NewSearch(),
	}
}

// NewEngineWithMCTS builds an Engine that always uses (or always
// avoids) MCTS, ignoring Settings.Search's turn-based policy
// entirely. Used by contestants that must keep a fixed,
// config-independent strategy while playing concurrently with other
// contestants that share the same global configuration - e.g. the
// match driver's built-in --scrimmage opponents.
func NewEngineWithMCTS(useMCTS bool) *Engine {
	e := NewEngine()
	e.policyOverride = &useMCTS
	return e
}

// NewGame resets both searches' game-scoped state, called between
// independent games played by the same Engine.
func (e *Engine) NewGame() {
	e.ab.NewGame()
	e.tree.NewGame()
}

// OnMoveRequest picks a move for gs within the configured time budget.
// It starts the clock immediately, selects alpha-beta or MCTS by
// Settings.Search's turn-based policy, and runs that search with
// whatever budget remains. Per spec, failing to find a move for a
// position that has one is a bug, reported as ErrNoMove rather than a
// zero-value types.Move a caller could mistake for a legal pass.
func (e *Engine) OnMoveRequest(gs *board.GameState) (types.Move, error) {
	start := time.Now()

	if len(movegen.LegalMoves(gs)) == 0 {
		return types.MoveNone, ErrNoMove
	}

	budget := time.Duration(config.Settings.Search.MoveTimeMillis) * time.Millisecond
	remaining := budget - time.Since(start)
	if remaining <= 0 {
		remaining = time.Millisecond
	}

	var move types.Move
	if e.useMCTS(gs) {
		e.tree.AdvanceRoot(gs)
		result := e.tree.Run(gs, remaining)
		e.log.Debugf("mcts %s", result.String())
		move = result.BestMove
		e.lastValues = nil
		for _, rc := range e.tree.RootChildValues() {
			e.lastValues = append(e.lastValues, RootValue{Move: rc.Move, Value: rc.Value})
		}
	} else {
		limits := search.Limits{MoveTimeMillis: int(remaining.Milliseconds())}
		result := e.ab.Run(gs, limits)
		e.log.Debugf("alphabeta %s", result.String())
		move = result.BestMove
		e.lastValues = []RootValue{{Move: result.BestMove, Value: result.BestValue}}
	}

	if move == types.MoveNone {
		return types.MoveNone, ErrNoMove
	}
	return move, nil
}

// useMCTS applies the configured engine-selection policy for gs's turn.
func (e *Engine) useMCTS(gs *board.GameState) bool {
	if e.policyOverride != nil {
		return *e.policyOverride
	}
	if config.Settings.Search.UseMCTS {
		return true
	}
	return gs.Ply < config.Settings.Search.MctsTurnThreshold
}
