package match

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/engine"
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
	config.Settings.Search.MoveTimeMillis = 10
	os.Exit(m.Run())
}

func TestPlayGameRunsToATerminalResult(t *testing.T) {
	red := Contestant{Name: "red", Engine: engine.NewEngine()}
	blue := Contestant{Name: "blue", Engine: engine.NewEngine()}

	result, records, err := playGame(1, 42, red, blue, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ID)
	assert.Greater(t, result.Plies, 0)
	assert.True(t, result.Draw || result.Winner != nil)
	assert.Empty(t, records)
}

func TestPlayGameCollectsOneRecordPerPly(t *testing.T) {
	red := Contestant{Name: "red", Engine: engine.NewEngine()}
	blue := Contestant{Name: "blue", Engine: engine.NewEngine()}

	result, records, err := playGame(2, 7, red, blue, true)
	require.NoError(t, err)
	assert.Len(t, records, result.Plies)
	assert.NotEmpty(t, records[0].Moves)
}

func TestPlayGameSameEngineBothSidesIsSelfPlay(t *testing.T) {
	c := Contestant{Name: "solo", Engine: engine.NewEngine()}
	result, _, err := playGame(3, 99, c, c, false)
	require.NoError(t, err)
	assert.Equal(t, "solo", result.First)
	assert.Equal(t, "solo", result.Second)
}
