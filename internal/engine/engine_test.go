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

package engine

import (
	"math/rand"
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/movegen"
	"github.com/frankkopp/piranhas/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func withBudget(t *testing.T, millis int) func() {
	t.Helper()
	original := config.Settings.Search.MoveTimeMillis
	config.Settings.Search.MoveTimeMillis = millis
	return func() { config.Settings.Search.MoveTimeMillis = original }
}

func TestOnMoveRequestReturnsLegalMove(t *testing.T) {
	defer withBudget(t, 100)()
	gs := board.NewInitialGameState(rand.New(rand.NewSource(1)))
	e := NewEngine()

	move, err := e.OnMoveRequest(gs)

	assert.NoError(t, err)
	assert.Contains(t, movegen.LegalMoves(gs), move)
}

func TestOnMoveRequestUsesMCTSEarlyAndAlphaBetaLate(t *testing.T) {
	defer withBudget(t, 80)()
	gs := board.NewInitialGameState(rand.New(rand.NewSource(2)))

	e := NewEngine()
	assert.True(t, e.useMCTS(gs))

	gs.Ply = config.Settings.Search.MctsTurnThreshold
	assert.False(t, e.useMCTS(gs))
}

func TestOnMoveRequestForcesMCTSWhenConfigured(t *testing.T) {
	defer withBudget(t, 80)()
	original := config.Settings.Search.UseMCTS
	config.Settings.Search.UseMCTS = true
	defer func() { config.Settings.Search.UseMCTS = original }()

	gs := board.NewInitialGameState(rand.New(rand.NewSource(3)))
	gs.Ply = 5000
	e := NewEngine()
	assert.True(t, e.useMCTS(gs))
}

func TestOnMoveRequestFailsLoudlyOnWipedOutSide(t *testing.T) {
	var b board.Board
	b.Blue = b.Blue.Set(types.NewSquare(0, 0))
	gs := board.NewGameState(b, types.Red)

	e := NewEngine()
	move, err := e.OnMoveRequest(gs)

	assert.ErrorIs(t, err, ErrNoMove)
	assert.Equal(t, types.MoveNone, move)
}
