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

package search

import (
	"math/rand"
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/movegen"
	"github.com/frankkopp/piranhas/internal/types"
)

var logTest *logging2.Logger

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
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestRunReturnsLegalRootMove(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(1)))
	s := NewSearch()

	result := s.Run(gs, Limits{Depth: 3})

	assert.False(t, result.Aborted)
	assert.Contains(t, movegen.LegalMoves(gs), result.BestMove)
	assert.GreaterOrEqual(t, result.SearchDepth, 1)
	logTest.Debug(result.String())
}

func TestRunRespectsDepthLimit(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(2)))
	s := NewSearch()

	result := s.Run(gs, Limits{Depth: 2})

	assert.LessOrEqual(t, result.SearchDepth, 2)
}

func TestRunHonorsTimeBudget(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(3)))
	s := NewSearch()

	result := s.Run(gs, Limits{MoveTimeMillis: 50, Depth: config.Settings.Search.MaxDepth})

	assert.LessOrEqual(t, result.SearchTime.Milliseconds(), int64(500))
}

func TestNewGameClearsTables(t *testing.T) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(4)))
	s := NewSearch()
	m := movegen.LegalMoves(gs)[0]

	s.history.Update(gs.Turn, m, 4, types.MoveNone)
	assert.NotZero(t, s.history.Score(gs.Turn, m))
	s.Run(gs, Limits{Depth: 2})
	if s.tt != nil {
		assert.Greater(t, s.tt.Len(), uint64(0))
	}

	s.NewGame()
	assert.Zero(t, s.history.Score(gs.Turn, m))
	if s.tt != nil {
		assert.EqualValues(t, 0, s.tt.Len())
	}
}

func TestKillerStorageAndLookup(t *testing.T) {
	s := NewSearch()
	m := movegen.LegalMoves(board.NewInitialGameState(rand.New(rand.NewSource(5))))[0]

	assert.False(t, s.isKiller(2, m))
	s.storeKiller(2, m)
	assert.True(t, s.isKiller(2, m))
}
