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

// Package selfplay persists one training record per ply of a self-play
// game: the board, whose turn it was, and the value the search assigned
// to every root move it considered - not just the one it played. A
// batch of records is flushed to a single length-bounded JSON file,
// named by a monotonically increasing index, so downstream training
// code can stream files in rather than loading one unbounded log.
package selfplay

import (
	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/types"
)

// MoveValue is one candidate move's estimated value at the position a
// Record describes, in the perspective of the side to move there.
type MoveValue struct {
	Move  string  `json:"move"`
	Value float64 `json:"value"`
}

// Record is one ply of a logged game.
type Record struct {
	Board        [types.FieldSize][types.FieldSize]int8 `json:"board"`
	CurrentColor string                                  `json:"current_color"`
	Turn         int                                     `json:"turn"`
	Moves        []MoveValue                             `json:"moves"`
	Winner       *string                                 `json:"winner,omitempty"`
}

// NewRecord builds a Record from the position the engine was asked to
// move in and the move/value distribution it reported, optionally
// stamped with the game's eventual winner (nil while the game is still
// in progress; the match driver backfills it once the result is known).
func NewRecord(gs *board.GameState, moves []MoveValue, winner *types.Color) Record {
	var grid [types.FieldSize][types.FieldSize]int8
	for col := 0; col < types.FieldSize; col++ {
		for row := 0; row < types.FieldSize; row++ {
			grid[col][row] = int8(gs.Board.FieldAt(types.NewSquare(col, row)))
		}
	}
	rec := Record{
		Board:        grid,
		CurrentColor: gs.Turn.String(),
		Turn:         gs.Ply,
		Moves:        moves,
	}
	if winner != nil {
		w := winner.String()
		rec.Winner = &w
	}
	return rec
}
