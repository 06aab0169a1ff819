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

package transpositiontable

import (
	"github.com/frankkopp/piranhas/internal/types"
)

// ValueType tags what an entry's stored value means relative to the
// window it was searched with.
type ValueType uint8

const (
	// NoneType marks a freshly-allocated, never-written slot.
	NoneType ValueType = iota
	// Exact means the stored value is the true minimax value.
	Exact
	// LowerBound means the real value is at least the stored value
	// (a beta cutoff occurred).
	LowerBound
	// UpperBound means the real value is at most the stored value
	// (no move raised alpha).
	UpperBound
)

// TtEntry is one transposition table slot, 24 bytes: a 64-bit Zobrist
// key, the search value as a float64 (Piranhas scores are not centipawn
// integers, so a 32-bit float would clip precision the evaluator
// actually produces), the best move, and depth/vtype/age packed into a
// single 16-bit vmeta the way the teacher packs its TtEntry.
type TtEntry struct {
	key   types.Key
	value float64
	move  types.Move
	vmeta uint16
	// vmeta: depth 11-bit, vtype 2-bit, age 3-bit
}

const (
	// TtEntrySize is the size in bytes of each TtEntry.
	TtEntrySize = 24

	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b1111_1111_1110_0000)
	depthShift = uint16(5)
)

func newEntry(key types.Key, value float64, move types.Move, depth int, vtype ValueType, age uint8) TtEntry {
	vmeta := (uint16(depth)<<depthShift)&depthMask |
		(uint16(vtype)<<vtypeShift)&vtypeMask |
		uint16(age)&ageMask
	return TtEntry{key: key, value: value, move: move, vmeta: vmeta}
}

func (e *TtEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *TtEntry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the full Zobrist key stored in this slot, for collision
// detection against the probing key.
func (e *TtEntry) Key() types.Key { return e.key }

// Move returns the best move found the last time this slot was written.
func (e *TtEntry) Move() types.Move { return e.move }

// Value returns the stored search value.
func (e *TtEntry) Value() float64 { return e.value }

// Depth returns the depth this entry was searched to.
func (e *TtEntry) Depth() int { return int((e.vmeta & depthMask) >> depthShift) }

// Age returns the generation counter used by the replacement policy.
func (e *TtEntry) Age() uint8 { return uint8(e.vmeta & ageMask) }

// Vtype returns the entry's bound type.
func (e *TtEntry) Vtype() ValueType { return ValueType((e.vmeta & vtypeMask) >> vtypeShift) }
