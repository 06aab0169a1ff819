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

import (
	"math/bits"
	"strings"
)

// Bitboard represents a set of the 100 fields of a Piranhas board.
// Go has no native 128-bit integer, so the 100 bits are split across
// two uint64 words: Lo holds squares 0..63, Hi holds squares 64..99
// (only the low 36 bits of Hi are ever used).
type Bitboard struct {
	Lo uint64
	Hi uint64
}

// EmptyBB is the zero value bitboard - no bits set. Defined for readability
// at call sites (types.Empty is shadowed by FieldType.Empty in this
// package's namespace only when referred to unqualified; use the zero
// value Bitboard{} directly when in doubt).
var EmptyBB = Bitboard{}

// squareMasks[sq] has exactly the bit for sq set. validMask has exactly
// the 100 playable bits set. notColA/notColJ exclude the leftmost/
// rightmost board column and are used to stop horizontal/diagonal
// shifts from wrapping across row boundaries.
var (
	squareMasks [SquareLength]Bitboard
	validMask   Bitboard
	notColA     Bitboard
	notColJ     Bitboard
)

func bitAt(sq int) Bitboard {
	if sq < 64 {
		return Bitboard{Lo: uint64(1) << uint(sq)}
	}
	return Bitboard{Hi: uint64(1) << uint(sq-64)}
}

func init() {
	for sq := 0; sq < SquareLength; sq++ {
		squareMasks[sq] = bitAt(sq)
		validMask = validMask.Or(squareMasks[sq])
	}
	for row := 0; row < FieldSize; row++ {
		for col := 0; col < FieldSize; col++ {
			sq := row*FieldSize + col
			if col != 0 {
				notColA = notColA.Or(squareMasks[sq])
			}
			if col != FieldSize-1 {
				notColJ = notColJ.Or(squareMasks[sq])
			}
		}
	}
}

// SquareBB returns the bitboard with only sq set.
func SquareBB(sq Square) Bitboard {
	if !sq.IsValid() {
		return Bitboard{}
	}
	return squareMasks[sq]
}

// ValidMask returns the bitboard with exactly the 100 playable fields set.
func ValidMask() Bitboard {
	return validMask
}

// Set returns a copy of b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b.Or(SquareBB(sq))
}

// Clear returns a copy of b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b.AndNot(SquareBB(sq))
}

// Test reports whether sq is set in b.
func (b Bitboard) Test(sq Square) bool {
	return !b.And(SquareBB(sq)).IsEmpty()
}

// Or returns the bitwise union.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{Lo: b.Lo | o.Lo, Hi: b.Hi | o.Hi}
}

// And returns the bitwise intersection.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{Lo: b.Lo & o.Lo, Hi: b.Hi & o.Hi}
}

// Xor returns the bitwise symmetric difference.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{Lo: b.Lo ^ o.Lo, Hi: b.Hi ^ o.Hi}
}

// AndNot returns b with every bit set in o cleared.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{Lo: b.Lo &^ o.Lo, Hi: b.Hi &^ o.Hi}
}

// Not returns the complement of b restricted to the 100 playable fields.
func (b Bitboard) Not() Bitboard {
	return Bitboard{Lo: ^b.Lo, Hi: ^b.Hi}.And(validMask)
}

// IsEmpty reports whether no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b.Lo == 0 && b.Hi == 0
}

// Equals reports whether b and o have exactly the same bits set.
func (b Bitboard) Equals(o Bitboard) bool {
	return b.Lo == o.Lo && b.Hi == o.Hi
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// Lsb returns the lowest-indexed set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b.Lo != 0 {
		return Square(bits.TrailingZeros64(b.Lo))
	}
	if b.Hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.Hi))
	}
	return SqNone
}

// PopLsb returns the lowest-indexed set square together with the
// bitboard that results from clearing it. Returns (SqNone, b) if empty.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone, b
	}
	return sq, b.Clear(sq)
}

// Shl performs a logical left shift by n bits (0..127) across the full
// 128-bit value, propagating carry between the two words.
func (b Bitboard) Shl(n uint) Bitboard {
	switch {
	case n == 0:
		return b
	case n >= 128:
		return Bitboard{}
	case n >= 64:
		return Bitboard{Hi: b.Lo << (n - 64)}
	default:
		return Bitboard{
			Lo: b.Lo << n,
			Hi: (b.Hi << n) | (b.Lo >> (64 - n)),
		}
	}
}

// Shr performs a logical right shift by n bits (0..127) across the full
// 128-bit value, propagating carry between the two words.
func (b Bitboard) Shr(n uint) Bitboard {
	switch {
	case n == 0:
		return b
	case n >= 128:
		return Bitboard{}
	case n >= 64:
		return Bitboard{Lo: b.Hi >> (n - 64)}
	default:
		return Bitboard{
			Lo: (b.Lo >> n) | (b.Hi << (64 - n)),
			Hi: b.Hi >> n,
		}
	}
}

// ShiftDir moves every bit of b one step in the given direction,
// dropping bits that would fall off the board edge. This is the single
// primitive move/swarm generation builds rays and flood-fills from.
func (b Bitboard) ShiftDir(d Direction) Bitboard {
	switch d {
	case North:
		return b.Shl(10).And(validMask)
	case South:
		return b.Shr(10)
	case East:
		return b.And(notColJ).Shl(1)
	case West:
		return b.And(notColA).Shr(1)
	case NorthEast:
		return b.And(notColJ).Shl(11).And(validMask)
	case NorthWest:
		return b.And(notColA).Shl(9).And(validMask)
	case SouthEast:
		return b.And(notColJ).Shr(9)
	case SouthWest:
		return b.And(notColA).Shr(11)
	default:
		return Bitboard{}
	}
}

// String renders the board as a 10x10 ASCII grid, row 9 (top) to row 0
// (bottom), matching the way board.String() prints the full position.
func (b Bitboard) String() string {
	var sb strings.Builder
	for row := FieldSize - 1; row >= 0; row-- {
		for col := 0; col < FieldSize; col++ {
			if b.Test(NewSquare(col, row)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
