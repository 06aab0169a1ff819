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

// Move packs a from-square and a to-square into a single 16-bit value:
// bits 0-6 the origin, bits 7-13 the destination. Two spare bits are
// reserved and always zero so Move can grow a flag (e.g. capture) later
// without changing the encoding of existing bits.
type Move uint16

const (
	moveFromMask = 0x007F
	moveToShift  = 7
	moveToMask   = 0x007F << moveToShift
)

// MoveNone is the zero/invalid move - from and to both square 0, which
// can never be a legal move since origin == destination is never generated.
const MoveNone Move = 0

// NewMove packs the given origin and destination squares into a Move.
func NewMove(from, to Square) Move {
	return Move(uint16(from)&moveFromMask | (uint16(to)<<moveToShift)&moveToMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(uint16(m) & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((uint16(m) & moveToMask) >> moveToShift)
}

// IsValid reports whether the move has distinct, on-board endpoints.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To() && m.From().IsValid() && m.To().IsValid()
}

// String renders a move in the same "A0-B1" style used by the XML wire
// protocol and replay files.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	return m.From().String() + "-" + m.To().String()
}
