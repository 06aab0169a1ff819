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

// Package rules decides when a game is over and who won it. A player
// wins the instant their entire remaining fish population is one
// 8-connected swarm. If both sides are connected at once, or neither has
// connected by the ply limit, the larger greatest swarm wins, and a
// true tie is a draw.
package rules

import (
	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/swarm"
	"github.com/frankkopp/piranhas/internal/types"
)

// MaxPlies bounds game length; a game that reaches it is scored by
// swarm progress rather than played out indefinitely.
const MaxPlies = 60

// Outcome describes how a finished game ended.
type Outcome int

const (
	// NotOver means the game has not finished yet.
	NotOver Outcome = iota
	// RedWins means red connected its whole swarm, or led on the ply limit.
	RedWins
	// BlueWins is the mirror of RedWins.
	BlueWins
	// Draw means both sides were equally (dis)connected at the ply limit.
	Draw
)

// IsFinished reports whether gs is a terminal position.
func IsFinished(gs *board.GameState) bool {
	return Result(gs) != NotOver
}

// Result computes the terminal outcome of gs, or NotOver if play continues.
//
// A side with zero surviving pieces has lost; that case is decided from
// the piece counts before the connectivity check, without a move
// generation pass.
func Result(gs *board.GameState) Outcome {
	redCount := gs.Board.Red.PopCount()
	blueCount := gs.Board.Blue.PopCount()

	if redCount == 0 {
		return BlueWins
	}
	if blueCount == 0 {
		return RedWins
	}
	redConnected := swarm.IsConnected(gs.Board.Red)
	blueConnected := swarm.IsConnected(gs.Board.Blue)
	if redConnected && blueConnected {
		return largerSwarmWins(gs)
	}
	if redConnected {
		return RedWins
	}
	if blueConnected {
		return BlueWins
	}
	if gs.Ply >= MaxPlies {
		return largerSwarmWins(gs)
	}
	return NotOver
}

// largerSwarmWins breaks a tie (both connected, or the ply limit hit
// with neither connected) by comparing raw greatest-swarm size; an
// exact tie is a draw.
func largerSwarmWins(gs *board.GameState) Outcome {
	redSize := swarm.GreatestSize(gs.Board.Red)
	blueSize := swarm.GreatestSize(gs.Board.Blue)
	switch {
	case redSize > blueSize:
		return RedWins
	case blueSize > redSize:
		return BlueWins
	default:
		return Draw
	}
}

// Winner reports the winning color and true, or (Red, false) if the
// game is not over or ended in a draw - callers that reach this branch
// should check IsFinished and Result(gs) == Draw first.
func Winner(gs *board.GameState) (types.Color, bool) {
	switch Result(gs) {
	case RedWins:
		return types.Red, true
	case BlueWins:
		return types.Blue, true
	default:
		return types.Red, false
	}
}
