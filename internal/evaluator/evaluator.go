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

// Package evaluator scores a position statically, without search, for
// use as the leaf value of alpha-beta. MCTS/RAVE does not call it; it
// scores leaves by playouts. Every feature is swarm-shaped: how close
// is each side to its one-swarm win condition.
package evaluator

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/config"
	myLogging "github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/swarm"
	"github.com/frankkopp/piranhas/internal/types"
)

// maxTurns is the turn budget a match is scored against; phase runs
// from 1 (turn 0, opening) down towards 0 as the turn counter
// approaches the limit, independent of how many fish remain.
const maxTurns = 60

// Evaluator scores positions by blending four phase-interpolated swarm
// features. Create one with NewEvaluator and reuse it across a search -
// it only holds a logger and an eval cache, no per-call allocations.
type Evaluator struct {
	log   *logging.Logger
	cache *evalCache
}

// NewEvaluator creates an Evaluator, wiring an eval cache when the
// configuration enables one.
func NewEvaluator() *Evaluator {
	e := &Evaluator{log: myLogging.GetLog()}
	if config.Settings.Eval.UseEvalCache {
		e.cache = newEvalCache()
	} else {
		e.log.Info("Eval cache is disabled in configuration")
	}
	return e
}

// Evaluate scores gs from the perspective of the side to move: positive
// means the side to move stands better, the sign convention the
// negamax search expects from its leaf evaluation.
func (e *Evaluator) Evaluate(gs *board.GameState) float64 {
	redScore, ok := e.cachedRedScore(gs.Key)
	if !ok {
		redScore = e.evaluateRed(gs)
		if e.cache != nil {
			e.cache.put(gs.Key, redScore)
		}
	}
	if gs.Turn == types.Blue {
		return -redScore
	}
	return redScore
}

func (e *Evaluator) cachedRedScore(key types.Key) (float64, bool) {
	if e.cache == nil {
		return 0, false
	}
	return e.cache.get(key)
}

// evaluateRed scores gs from red's perspective (positive favors red),
// independent of whose turn it is. This is the value stored in the eval
// cache - callers ask Evaluate, which flips the sign for blue.
func (e *Evaluator) evaluateRed(gs *board.GameState) float64 {
	red, blue := gs.Board.Red, gs.Board.Blue
	redCount, blueCount := red.PopCount(), blue.PopCount()

	if redCount == 0 {
		return -types.Mate
	}
	if blueCount == 0 {
		return types.Mate
	}

	phase := 1 - float64(gs.Ply)/maxTurns
	eval := &config.Settings.Eval

	score := weighted(eval.SwarmStartWeight, eval.SwarmEndWeight, phase)*(swarmFeature(red)-swarmFeature(blue))

	score += weighted(eval.DistStartWeight, eval.DistEndWeight, phase) *
		(swarmDistanceFeature(gs, red, blue) - swarmDistanceFeature(gs, blue, red))

	score += weighted(eval.CountStartWeight, eval.CountEndWeight, phase) * float64(redCount-blueCount)

	score += weighted(eval.VarStartWeight, eval.VarEndWeight, phase) * (spread(red) - spread(blue))

	if gs.Turn == types.Red {
		score += eval.Tempo
	} else {
		score -= eval.Tempo
	}

	return score
}

// weighted linearly interpolates between an opening weight (phase close
// to 1, early in the game) and an endgame weight (phase close to 0).
func weighted(start, end, phase float64) float64 {
	return end + (start-end)*phase
}

// swarmFeature rewards a color for being close to a single connected
// swarm: the fraction of its fish that belong to the largest component.
func swarmFeature(own types.Bitboard) float64 {
	n := own.PopCount()
	if n == 0 {
		return 0
	}
	return float64(swarm.GreatestSize(own)) / float64(n)
}

// spread is the negative sum of own's coordinate variances,
// Σx² − (Σx)²/n + Σy² − (Σy)²/n computed separately over column and row
// coordinates - a fragmented, spread-out army scores lower than one
// huddled together, regardless of where on the board it sits.
func spread(own types.Bitboard) float64 {
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
	varSum := (sumX2 - sumX*sumX/nf) + (sumY2 - sumY*sumY/nf)
	return -varSum
}

// Report prints a human-readable breakdown of the evaluation for
// debugging - the per-feature terms read from e.evaluateRed are not
// retained, so it recomputes them individually against gs.
func (e *Evaluator) Report(gs *board.GameState) string {
	red, blue := gs.Board.Red, gs.Board.Blue
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(gs.Board.String())
	report.WriteString(fmt.Sprintf("Red swarm feature : %.3f   Blue swarm feature : %.3f\n", swarmFeature(red), swarmFeature(blue)))
	report.WriteString(fmt.Sprintf("Red dist feature  : %.3f   Blue dist feature  : %.3f\n", swarmDistanceFeature(gs, red, blue), swarmDistanceFeature(gs, blue, red)))
	report.WriteString(fmt.Sprintf("Red fish count    : %d       Blue fish count    : %d\n", red.PopCount(), blue.PopCount()))
	report.WriteString(fmt.Sprintf("-------------------------\n"))
	report.WriteString(fmt.Sprintf("Eval value (side to move %s): %.3f\n", gs.Turn.String(), e.Evaluate(gs)))
	return report.String()
}
