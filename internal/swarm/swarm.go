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

// Package swarm decomposes a color's fields into 8-connected components
// ("swarms") via bitboard flood fill. A player wins the moment their
// whole remaining fish population forms a single swarm, so the size of
// the greatest swarm is both a termination check and (scaled) the
// dominant term of the static evaluator.
package swarm

import "github.com/frankkopp/piranhas/internal/types"

// extend grows seed by one step of 8-connectivity dilation, staying
// within own, and returns the fixed point: repeatedly OR-ing in every
// neighbor of the current frontier that is still part of own, until
// nothing changes.
func extend(seed, own types.Bitboard) types.Bitboard {
	for {
		next := seed
		for _, d := range types.AllDirections {
			next = next.Or(seed.ShiftDir(d))
		}
		next = next.And(own)
		if next.Equals(seed) {
			return seed
		}
		seed = next
	}
}

// GreatestSize returns the size of the largest 8-connected component of
// own's set bits, and 0 if own is empty.
func GreatestSize(own types.Bitboard) int {
	best := 0
	remaining := own
	for !remaining.IsEmpty() {
		var start types.Square
		start, _ = remaining.PopLsb()
		component := extend(types.SquareBB(start), own)
		if n := component.PopCount(); n > best {
			best = n
		}
		remaining = remaining.AndNot(component)
	}
	return best
}

// IsConnected reports whether every set bit of own belongs to a single
// 8-connected component - the win condition for the owning color.
func IsConnected(own types.Bitboard) bool {
	n := own.PopCount()
	if n == 0 {
		return false
	}
	return GreatestSize(own) == n
}

// Decompose splits own into its 8-connected components, largest first.
func Decompose(own types.Bitboard) []types.Bitboard {
	var components []types.Bitboard
	remaining := own
	for !remaining.IsEmpty() {
		var start types.Square
		start, _ = remaining.PopLsb()
		component := extend(types.SquareBB(start), own)
		components = append(components, component)
		remaining = remaining.AndNot(component)
	}
	for i := 1; i < len(components); i++ {
		for j := i; j > 0 && components[j].PopCount() > components[j-1].PopCount(); j-- {
			components[j], components[j-1] = components[j-1], components[j]
		}
	}
	return components
}
