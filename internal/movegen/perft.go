/*
 * Piranhas - bitboard-based engine for the two-player Piranhas board game
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/rules"
)

var out = message.NewPrinter(language.English)

// Perft counts the nodes of the full game tree to a fixed depth, used to
// cross-check LegalMoves/DoMove/UndoMove against a known-good node count
// the way a chess perft cross-checks a move generator against published
// figures.
type Perft struct {
	Nodes          uint64
	CaptureCounter uint64
	TerminalCount  uint64
	stopFlag       bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a perft run in progress on another goroutine abort
// as soon as it next checks in.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerft runs perft from gs to the given depth, printing a summary in
// the style of the engine's other diagnostic commands.
func (perft *Perft) StartPerft(gs *board.GameState, depth int) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	perft.resetCounters()

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, gs.Clone())
	elapsed := time.Since(start)

	if result == 0 && perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}
	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   Terminals : %d\n", perft.TerminalCount)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) miniMax(depth int, gs *board.GameState) uint64 {
	if perft.stopFlag {
		return 0
	}
	if rules.IsFinished(gs) {
		perft.TerminalCount++
		return 1
	}

	moves := LegalMoves(gs)
	opponent := gs.Board.FieldsOf(gs.Turn.Other())
	totalNodes := uint64(0)

	for _, m := range moves {
		if perft.stopFlag {
			return 0
		}
		isCapture := opponent.Test(m.To())
		gs.DoMove(m)
		if depth > 1 {
			totalNodes += perft.miniMax(depth-1, gs)
		} else {
			totalNodes++
			if isCapture {
				perft.CaptureCounter++
			}
		}
		gs.UndoMove()
	}
	return totalNodes
}

func (perft *Perft) resetCounters() {
	perft.Nodes = 0
	perft.CaptureCounter = 0
	perft.TerminalCount = 0
}
