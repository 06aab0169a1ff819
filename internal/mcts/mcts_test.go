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

package mcts

import (
	"math/rand"
	"os"
	"path"
	"runtime"
	"testing"
	"time"

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

// winningCaptureSetup gives each side two separated fish. Red's slide
// (0,4)->(2,4) captures a blue fish and lands next to red's (3,5): both
// sides are then connected and red wins on the larger swarm, 2 to 1.
func winningCaptureSetup() *board.GameState {
	var b board.Board
	b.Red = b.Red.Set(types.NewSquare(0, 4)).Set(types.NewSquare(3, 5))
	b.Blue = b.Blue.Set(types.NewSquare(2, 4)).Set(types.NewSquare(9, 9))
	return board.NewGameState(b, types.Red)
}

func TestRunReturnsLegalRootMove(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(1)))
	s := NewSearch()

	result := s.Run(gs, 200*time.Millisecond)

	assert.Contains(t, movegen.LegalMoves(gs), result.BestMove)
	assert.Greater(t, result.Iterations, uint64(0))
}

func TestRunFindsImmediateWinningCapture(t *testing.T) {
	gs := winningCaptureSetup()
	s := NewSearch()

	result := s.Run(gs, 200*time.Millisecond)

	assert.Equal(t, types.NewSquare(2, 4), result.BestMove.To())
	assert.Greater(t, result.Value, 0.5)
}

func TestRunHonorsTimeBudget(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(2)))
	s := NewSearch()

	result := s.Run(gs, 50*time.Millisecond)

	assert.LessOrEqual(t, result.SearchTime.Milliseconds(), int64(500))
}

func TestAdvanceRootPrunesUnreachableNodes(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(3)))
	s := NewSearch()
	s.Run(gs, 100*time.Millisecond)
	before := len(s.tree.nodes)
	assert.Greater(t, before, 1)

	rootKey, root := s.tree.getOrCreate(gs)
	assert.NotEmpty(t, root.children)
	child, ok := s.tree.get(root.children[0].child)
	assert.True(t, ok)
	_ = child

	s.AdvanceRoot(gs)
	assert.Equal(t, rootKey, s.tree.root)
	assert.LessOrEqual(t, len(s.tree.nodes), before)
}

func TestNewGameDiscardsTree(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(4)))
	s := NewSearch()
	s.Run(gs, 50*time.Millisecond)
	assert.NotZero(t, len(s.tree.nodes))

	s.NewGame()
	assert.Zero(t, len(s.tree.nodes))
}

func TestRaveBetaDecaysWithVisits(t *testing.T) {
	high := raveBeta(100, 1)
	low := raveBeta(100, 1000)
	assert.Greater(t, high, low)
}

func TestPolicyScorePrefersCaptures(t *testing.T) {
	gs := winningCaptureSetup()
	moves := movegen.LegalMoves(gs)
	ranked := rankedMoves(gs)
	assert.NotEmpty(t, moves)
	assert.Equal(t, types.NewSquare(2, 4), ranked[0].move.To())
}
