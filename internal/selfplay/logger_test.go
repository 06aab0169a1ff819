package selfplay

import (
	"encoding/json"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func newTestGameState() *board.GameState {
	return board.NewInitialGameState(rand.New(rand.NewSource(1)))
}

func TestLoggerFlushesOnceStatesPerFileReached(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir, 2)
	require.NoError(t, err)

	gs := newTestGameState()
	rec := NewRecord(gs, []MoveValue{{Move: "a", Value: 0.1}}, nil)
	l.AddPly(1, rec)
	l.AddPly(1, rec)
	l.AddPly(1, rec)

	red := types.Red
	l.EndGame(1, &red)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "0", entries[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, "0"))
	require.NoError(t, err)
	var batch []Record
	require.NoError(t, json.Unmarshal(data, &batch))
	assert.Len(t, batch, 2)
	require.NotNil(t, batch[0].Winner)
	assert.Equal(t, "Red", *batch[0].Winner)
}

func TestLoggerCloseFlushesPartialBatch(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir, 100)
	require.NoError(t, err)

	gs := newTestGameState()
	l.AddPly(1, NewRecord(gs, nil, nil))
	l.EndGame(1, nil)

	require.NoError(t, l.Close())

	data, err := os.ReadFile(filepath.Join(dir, "0"))
	require.NoError(t, err)
	var batch []Record
	require.NoError(t, json.Unmarshal(data, &batch))
	require.Len(t, batch, 1)
	assert.Nil(t, batch[0].Winner)
}

func TestNewLoggerResumesAfterExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1"), []byte("[]"), 0o644))

	l, err := NewLogger(dir, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, l.index)
}

func TestEndGameWithNoPliesIsANoop(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir, 10)
	require.NoError(t, err)

	l.EndGame(99, nil)
	require.NoError(t, l.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
