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

package xmlclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/piranhas/internal/types"
)

func TestDirectionNameCoversAllEightDirections(t *testing.T) {
	want := map[types.Direction]string{
		types.North:     "UP",
		types.NorthEast: "UP_RIGHT",
		types.East:      "RIGHT",
		types.SouthEast: "DOWN_RIGHT",
		types.South:     "DOWN",
		types.SouthWest: "DOWN_LEFT",
		types.West:      "LEFT",
		types.NorthWest: "UP_LEFT",
	}
	for d, name := range want {
		assert.Equal(t, name, directionName(d))
	}
}

func TestDirectionOfDerivesFromEndpoints(t *testing.T) {
	m := types.NewMove(types.NewSquare(2, 2), types.NewSquare(7, 7))
	d, ok := directionOf(m)
	require.True(t, ok)
	assert.Equal(t, types.NorthEast, d)

	m = types.NewMove(types.NewSquare(5, 3), types.NewSquare(0, 3))
	d, ok = directionOf(m)
	require.True(t, ok)
	assert.Equal(t, types.West, d)
}

func TestMoveXMLRendersFromSquareAndDirection(t *testing.T) {
	m := types.NewMove(types.NewSquare(2, 2), types.NewSquare(2, 6))
	frag, err := moveXML(m)
	require.NoError(t, err)
	assert.Contains(t, frag, `class="move"`)
	assert.Contains(t, frag, `x="2"`)
	assert.Contains(t, frag, `y="2"`)
	assert.Contains(t, frag, `direction="UP"`)
}

func TestFieldTypeMapsServerVocabulary(t *testing.T) {
	assert.Equal(t, types.RedField, fieldType("RED"))
	assert.Equal(t, types.BlueField, fieldType("BLUE"))
	assert.Equal(t, types.Obstacle, fieldType("OBSTRUCTED"))
	assert.Equal(t, types.Empty, fieldType("EMPTY"))
}

func TestStateFrameToGameStateRebuildsBoardAndTurn(t *testing.T) {
	f := &stateFrame{
		Turn: 3,
		Board: boardFrame{Fields: fieldsFrame{Field: []fieldFrame{
			{X: 0, Y: 0, State: "RED"},
			{X: 9, Y: 9, State: "BLUE"},
			{X: 5, Y: 5, State: "OBSTRUCTED"},
		}}},
	}
	gs := f.toGameState()
	assert.Equal(t, types.Blue, gs.Turn, "odd turn counters are blue to move")
	assert.Equal(t, 3, gs.Ply)
	assert.True(t, gs.Board.Red.Test(types.NewSquare(0, 0)))
	assert.True(t, gs.Board.Blue.Test(types.NewSquare(9, 9)))
	assert.True(t, gs.Board.Obstacles.Test(types.NewSquare(5, 5)))
}

func TestColorFromStringRejectsUnknownValues(t *testing.T) {
	c, err := colorFromString("RED")
	require.NoError(t, err)
	assert.Equal(t, types.Red, c)

	_, err = colorFromString("GREEN")
	assert.Error(t, err)
}
