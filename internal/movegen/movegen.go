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

// Package movegen generates the legal moves of a position. A fish slides
// in one of the eight compass directions a number of fields equal to the
// total fish (either color) lying on the full line through its square
// along that direction's axis - the same count whichever of the two
// opposite directions of that axis is chosen. It may hop clean over
// obstacles and over its own fish, but an opponent fish anywhere on the
// path makes the whole direction illegal, and the landing field itself
// must be neither an obstacle nor the mover's own color.
package movegen

import (
	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/moveslice"
	"github.com/frankkopp/piranhas/internal/types"
)

// destination returns the square reached by stepping n fields from from
// in direction d, or SqNone if that leaves the board.
func destination(from types.Square, d types.Direction, n int) types.Square {
	return types.NewSquare(from.Col()+d.DCol()*n, from.Row()+d.DRow()*n)
}

// pathClear reports whether every field strictly between from and to
// (exclusive) along direction d is free of enemy fish. Own fish and
// obstacles on the path do not block it.
func pathClear(b *board.Board, from types.Square, d types.Direction, distance int, enemy types.Color) bool {
	for step := 1; step < distance; step++ {
		sq := destination(from, d, step)
		if b.FieldAt(sq) == types.OfColor(enemy) {
			return false
		}
	}
	return true
}

// moveInDirection computes the (possibly illegal) slide from `from` in
// direction d, returning the move and whether it is legal.
func moveInDirection(b *board.Board, from types.Square, d types.Direction, mover types.Color) (types.Move, bool) {
	distance := b.GetDistance(from, d)
	to := destination(from, d, distance)
	if to == types.SqNone {
		return types.MoveNone, false
	}
	switch b.FieldAt(to) {
	case types.OfColor(mover), types.Obstacle:
		return types.MoveNone, false
	}
	if !pathClear(b, from, d, distance, mover.Other()) {
		return types.MoveNone, false
	}
	return types.NewMove(from, to), true
}

// LegalMoves returns every legal move for the side to move in gs.
func LegalMoves(gs *board.GameState) moveslice.MoveSlice {
	moves := make(moveslice.MoveSlice, 0, 32)
	own := gs.Board.FieldsOf(gs.Turn)
	remaining := own

	for !remaining.IsEmpty() {
		var from types.Square
		from, remaining = remaining.PopLsb()
		for _, d := range types.AllDirections {
			if m, ok := moveInDirection(&gs.Board, from, d, gs.Turn); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Captures returns the subset of legal moves that land on an opponent fish.
func Captures(gs *board.GameState) moveslice.MoveSlice {
	all := LegalMoves(gs)
	opponent := gs.Board.FieldsOf(gs.Turn.Other())
	caps := make(moveslice.MoveSlice, 0, len(all))
	for _, m := range all {
		if opponent.Test(m.To()) {
			caps = append(caps, m)
		}
	}
	return caps
}

// AttackBoard returns the union of destination fields reachable by
// captures for the side to move.
func AttackBoard(gs *board.GameState) types.Bitboard {
	var attacks types.Bitboard
	for _, m := range Captures(gs) {
		attacks = attacks.Set(m.To())
	}
	return attacks
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, without allocating the full move list.
func HasLegalMoves(gs *board.GameState) bool {
	own := gs.Board.FieldsOf(gs.Turn)
	remaining := own
	for !remaining.IsEmpty() {
		var from types.Square
		from, remaining = remaining.PopLsb()
		for _, d := range types.AllDirections {
			if _, ok := moveInDirection(&gs.Board, from, d, gs.Turn); ok {
				return true
			}
		}
	}
	return false
}
