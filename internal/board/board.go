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

// Package board holds the bitboard-based position representation:
// which fields carry a red fish, a blue fish or a permanent obstacle,
// plus the reversible DoMove/UndoMove machinery the search uses to walk
// the game tree without reallocating a board per node.
package board

import (
	"strings"

	"github.com/frankkopp/piranhas/internal/types"
	"github.com/frankkopp/piranhas/internal/zobrist"
)

// Board is the minimal, copyable field layout: three bitboards that
// partition (a subset of) the 100 fields. A field with no bit set in
// any of the three is simply Empty.
type Board struct {
	Red       types.Bitboard
	Blue      types.Bitboard
	Obstacles types.Bitboard
}

// FieldAt classifies a single square.
func (b *Board) FieldAt(sq types.Square) types.FieldType {
	switch {
	case b.Red.Test(sq):
		return types.RedField
	case b.Blue.Test(sq):
		return types.BlueField
	case b.Obstacles.Test(sq):
		return types.Obstacle
	default:
		return types.Empty
	}
}

// FieldsOf returns the bitboard of fields occupied by color c.
func (b *Board) FieldsOf(c types.Color) types.Bitboard {
	if c == types.Red {
		return b.Red
	}
	return b.Blue
}

// Occupied returns every field that is not empty (either color or obstacle).
func (b *Board) Occupied() types.Bitboard {
	return b.Red.Or(b.Blue).Or(b.Obstacles)
}

// occupiedByFish reports whether sq carries a red or blue fish -
// obstacles do not count, matching the rule that distance is measured
// only over fish and that a fish may hop clean over an obstacle.
func (b *Board) occupiedByFish(sq types.Square) bool {
	return b.Red.Test(sq) || b.Blue.Test(sq)
}

// GetDistance returns the number of fish (either color) lying on the
// full line through sq along the axis of d - the move length a fish on
// sq travels when it slides in direction d. The line runs the entire
// board in both the direction and its opposite, so North and South
// report the same distance for the same origin.
func (b *Board) GetDistance(sq types.Square, d types.Direction) int {
	dcol, drow := d.DCol(), d.DRow()
	count := 0
	if b.occupiedByFish(sq) {
		count++
	}
	for _, sign := range [2]int{1, -1} {
		for step := 1; ; step++ {
			s := types.NewSquare(sq.Col()+sign*dcol*step, sq.Row()+sign*drow*step)
			if s == types.SqNone {
				break
			}
			if b.occupiedByFish(s) {
				count++
			}
		}
	}
	return count
}

// String renders the board bottom row last, top row first, one character
// per field ('R','B','#','.'), matching FieldType.String().
func (b *Board) String() string {
	var sb strings.Builder
	for row := types.FieldSize - 1; row >= 0; row-- {
		for col := 0; col < types.FieldSize; col++ {
			sb.WriteString(b.FieldAt(types.NewSquare(col, row)).String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// undoEntry captures everything needed to reverse one DoMove call.
type undoEntry struct {
	move     types.Move
	captured types.FieldType
	prevKey  types.Key
}

// GameState is a full, reversible position: the board plus whose turn
// it is, the ply counter and the incremental Zobrist key. Search walks
// the tree by mutating one GameState in place via DoMove/UndoMove.
type GameState struct {
	Board Board
	Turn  types.Color
	Ply   int
	Key   types.Key

	history []undoEntry
}

// NewGameState builds a position from an explicit board and side to move,
// computing its Zobrist key from scratch. Used by tests and by replay
// loading; the match driver normally starts from NewInitialGameState.
func NewGameState(b Board, turn types.Color) *GameState {
	gs := &GameState{Board: b, Turn: turn}
	gs.Key = computeKey(&gs.Board, turn)
	return gs
}

func computeKey(b *Board, turn types.Color) types.Key {
	var key types.Key
	red := b.Red
	for !red.IsEmpty() {
		var sq types.Square
		sq, red = red.PopLsb()
		key ^= zobrist.FieldKey(sq, types.Red)
	}
	blue := b.Blue
	for !blue.IsEmpty() {
		var sq types.Square
		sq, blue = blue.PopLsb()
		key ^= zobrist.FieldKey(sq, types.Blue)
	}
	if turn == types.Blue {
		key ^= zobrist.TurnKey()
	}
	return key
}

// DoMove applies a pseudo-legal move (as produced by the movegen package)
// to the position, pushing an undo entry. It does not validate legality -
// callers are expected to only ever pass moves from the legal move list.
func (gs *GameState) DoMove(m types.Move) {
	from, to := m.From(), m.To()
	mover := gs.Turn

	entry := undoEntry{move: m, captured: gs.Board.FieldAt(to), prevKey: gs.Key}
	gs.history = append(gs.history, entry)

	// remove the mover from its origin
	gs.removePiece(from, mover)
	// remove a captured opponent fish, if any
	if entry.captured == types.OfColor(mover.Other()) {
		gs.removePiece(to, mover.Other())
	}
	// place the mover at its destination
	gs.placePiece(to, mover)

	gs.Turn = mover.Other()
	gs.Key ^= zobrist.TurnKey()
	gs.Ply++
}

// UndoMove reverses the most recent DoMove call.
func (gs *GameState) UndoMove() {
	n := len(gs.history)
	entry := gs.history[n-1]
	gs.history = gs.history[:n-1]

	gs.Ply--
	gs.Turn = gs.Turn.Other()
	mover := gs.Turn
	from, to := entry.move.From(), entry.move.To()

	gs.removePiece(to, mover)
	gs.placePiece(from, mover)
	if entry.captured == types.OfColor(mover.Other()) {
		gs.placePiece(to, mover.Other())
	}
	gs.Key = entry.prevKey
}

// DoNullMove flips the side to move without placing or removing any
// fish - a hypothetical "pass" used by the search to ask "would the
// position still be fine for me even if I let the opponent move
// twice?". Must be paired with UndoNullMove and never appears in the
// game's own move history.
func (gs *GameState) DoNullMove() {
	entry := undoEntry{move: types.MoveNone, prevKey: gs.Key}
	gs.history = append(gs.history, entry)
	gs.Turn = gs.Turn.Other()
	gs.Key ^= zobrist.TurnKey()
	gs.Ply++
}

// UndoNullMove reverses the most recent DoNullMove call.
func (gs *GameState) UndoNullMove() {
	n := len(gs.history)
	entry := gs.history[n-1]
	gs.history = gs.history[:n-1]
	gs.Ply--
	gs.Turn = gs.Turn.Other()
	gs.Key = entry.prevKey
}

func (gs *GameState) placePiece(sq types.Square, c types.Color) {
	if c == types.Red {
		gs.Board.Red = gs.Board.Red.Set(sq)
	} else {
		gs.Board.Blue = gs.Board.Blue.Set(sq)
	}
	gs.Key ^= zobrist.FieldKey(sq, c)
}

func (gs *GameState) removePiece(sq types.Square, c types.Color) {
	if c == types.Red {
		gs.Board.Red = gs.Board.Red.Clear(sq)
	} else {
		gs.Board.Blue = gs.Board.Blue.Clear(sq)
	}
	gs.Key ^= zobrist.FieldKey(sq, c)
}

// LastMove returns the move that produced the current position, or
// types.MoveNone if gs is the initial position or the most recent
// entry is a null move. Used by the search's counter-move heuristic.
func (gs *GameState) LastMove() types.Move {
	if len(gs.history) == 0 {
		return types.MoveNone
	}
	return gs.history[len(gs.history)-1].move
}

// Clone returns a deep copy that shares no history slice with gs, for
// callers (e.g. MCTS root reuse) that need an independent position to
// keep mutating while the original is still in use elsewhere.
func (gs *GameState) Clone() *GameState {
	cp := *gs
	cp.history = append([]undoEntry(nil), gs.history...)
	return &cp
}

// MinimalKey is the (red, blue, turn) triple used by the original
// engine's hash-map based transposition table. Kept alongside the
// Zobrist Key: Key is used for the array-backed table (fast, approximate
// since collisions are possible), MinimalKey lets callers that need an
// exact, collision-free identity (e.g. the MCTS node table) compare
// states structurally instead of by 64-bit hash.
type MinimalKey struct {
	Red  types.Bitboard
	Blue types.Bitboard
	Turn types.Color
}

// Minimal returns the exact-identity key for the current position.
func (gs *GameState) Minimal() MinimalKey {
	return MinimalKey{Red: gs.Board.Red, Blue: gs.Board.Blue, Turn: gs.Turn}
}
