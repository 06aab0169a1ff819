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

package types

import "fmt"

const (
	// FieldSize is the edge length of the square Piranhas board.
	FieldSize = 10
	// SquareLength is the number of fields on the board (FieldSize^2).
	SquareLength = FieldSize * FieldSize
)

// Square identifies one of the 100 fields of the board, row-major,
// 0 == (col 0, row 0) up to 99 == (col 9, row 9).
type Square int8

// SqNone is the invalid/sentinel square.
const SqNone Square = -1

// NewSquare builds a Square from zero-based column and row indices.
// Returns SqNone if either coordinate is off the board.
func NewSquare(col, row int) Square {
	if col < 0 || col >= FieldSize || row < 0 || row >= FieldSize {
		return SqNone
	}
	return Square(row*FieldSize + col)
}

// Col returns the zero-based column (0='A' .. 9='J').
func (s Square) Col() int {
	return int(s) % FieldSize
}

// Row returns the zero-based row (0..9).
func (s Square) Row() int {
	return int(s) / FieldSize
}

// IsValid reports whether s is within the 10x10 board.
func (s Square) IsValid() bool {
	return s >= 0 && int(s) < SquareLength
}

// String renders a square in the coordinate system used by replays and
// logging, e.g. square 0 -> "A0", square 99 -> "J9".
func (s Square) String() string {
	if !s.IsValid() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'A'+s.Col(), s.Row())
}
