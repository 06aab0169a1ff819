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

// FieldType classifies the content of a single field on the board.
type FieldType int8

const (
	// Empty marks a field with no fish and no obstacle.
	Empty FieldType = iota
	// RedField marks a field occupied by a red fish.
	RedField
	// BlueField marks a field occupied by a blue fish.
	BlueField
	// Obstacle marks a field permanently blocked for the whole game.
	Obstacle
)

// String renders a single character per field type, used by Board.String().
func (f FieldType) String() string {
	switch f {
	case RedField:
		return "R"
	case BlueField:
		return "B"
	case Obstacle:
		return "#"
	default:
		return "."
	}
}

// OfColor returns the FieldType that a fish of the given color occupies.
func OfColor(c Color) FieldType {
	if c == Red {
		return RedField
	}
	return BlueField
}
