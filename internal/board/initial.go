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

package board

import (
	"math/rand"

	"github.com/frankkopp/piranhas/internal/types"
)

// centralLo/centralHi bound the 6x6 inner square (indices 2..7) obstacles
// are drawn from, keeping them clear of the fixed fish frame.
const (
	centralLo = 2
	centralHi = 7
)

// NewInitialGameState builds the fixed starting fish layout - red fills
// the top and bottom border rows, blue fills the left and right border
// columns, the four corners stay empty so neither color gets a
// numerical edge - and drops two obstacles at random, non-aligned
// positions inside the central 6x6 square. Red always moves first.
func NewInitialGameState(rng *rand.Rand) *GameState {
	var b Board
	for col := 0; col < types.FieldSize; col++ {
		for _, row := range []int{0, types.FieldSize - 1} {
			if isCorner(col, row) {
				continue
			}
			b.Red = b.Red.Set(types.NewSquare(col, row))
		}
	}
	for row := 1; row < types.FieldSize-1; row++ {
		for _, col := range []int{0, types.FieldSize - 1} {
			b.Blue = b.Blue.Set(types.NewSquare(col, row))
		}
	}

	c1, c2 := drawObstaclePair(rng)
	b.Obstacles = b.Obstacles.Set(c1).Set(c2)

	return NewGameState(b, types.Red)
}

func isCorner(col, row int) bool {
	return (col == 0 || col == types.FieldSize-1) && (row == 0 || row == types.FieldSize-1)
}

// drawObstaclePair rejection-samples two distinct cells from the central
// 6x6 square that do not share a row, a column or a diagonal, so a
// single obstacle never blocks two whole lines at once.
func drawObstaclePair(rng *rand.Rand) (types.Square, types.Square) {
	span := centralHi - centralLo + 1
	for {
		col1 := centralLo + rng.Intn(span)
		row1 := centralLo + rng.Intn(span)
		col2 := centralLo + rng.Intn(span)
		row2 := centralLo + rng.Intn(span)
		if col1 == col2 || row1 == row2 {
			continue
		}
		if abs(col1-col2) == abs(row1-row2) {
			continue
		}
		return types.NewSquare(col1, row1), types.NewSquare(col2, row2)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
