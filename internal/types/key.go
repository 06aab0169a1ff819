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

// Key is a 64-bit Zobrist hash identifying a game state for the
// transposition table and the evaluation cache.
type Key uint64

// ValueType classifies a transposition table entry's stored value
// relative to the search window that produced it.
type ValueType uint8

const (
	// NoValueType marks a freshly allocated, never-written entry.
	NoValueType ValueType = iota
	// Exact means the stored value is the true minimax value.
	Exact
	// UpperBound means the true value is at most the stored value (failed low).
	UpperBound
	// LowerBound means the true value is at least the stored value (failed high).
	LowerBound
)

func (v ValueType) String() string {
	switch v {
	case Exact:
		return "EXACT"
	case UpperBound:
		return "UPPER"
	case LowerBound:
		return "LOWER"
	default:
		return "NONE"
	}
}
