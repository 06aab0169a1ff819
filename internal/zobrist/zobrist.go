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

// Package zobrist provides the random keys used to incrementally hash a
// game state. Keys are derived once, at package init time, from a fixed
// seed via a splitmix64 generator, so every process (and every worker
// goroutine spawned by the match driver) agrees on the same table
// without any runtime coordination.
package zobrist

import "github.com/frankkopp/piranhas/internal/types"

const seed uint64 = 0x9E3779B97F4A7C15

// fieldKeys[sq][color] is XORed into the running key whenever a fish of
// that color is placed on or removed from sq. turnKey is XORed in
// whenever the side to move changes.
var (
	fieldKeys [types.SquareLength][2]types.Key
	turnKey   types.Key
)

// splitmix64 is a fast, fixed-point PRNG well suited to deriving a
// table of independent-looking constants from a single seed.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}

func init() {
	gen := &splitmix64{state: seed}
	for sq := 0; sq < types.SquareLength; sq++ {
		fieldKeys[sq][types.Red] = types.Key(gen.next())
		fieldKeys[sq][types.Blue] = types.Key(gen.next())
	}
	turnKey = types.Key(gen.next())
}

// FieldKey returns the Zobrist constant for a fish of color c on sq.
func FieldKey(sq types.Square, c types.Color) types.Key {
	return fieldKeys[sq][c]
}

// TurnKey returns the constant XORed in on every turn change.
func TurnKey() types.Key {
	return turnKey
}
