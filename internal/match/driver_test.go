package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/piranhas/internal/engine"
	"github.com/frankkopp/piranhas/internal/selfplay"
)

func TestDriverRunPlaysEveryPairing(t *testing.T) {
	a := Contestant{Name: "a", Engine: engine.NewEngine()}
	b := Contestant{Name: "b", Engine: engine.NewEngine()}
	pairings := HeadToHeadPairings(a, b, 4, 1000)

	d := NewDriver(2, false, nil)
	results := d.Run(pairings)

	require.Len(t, results, 4)
	table := Standings(results)
	assert.Equal(t, table["a"].Games()+table["b"].Games() > 0, true)
}

func TestDriverRunWithCollectFlushesSelfPlayRecords(t *testing.T) {
	dir := t.TempDir()
	logger, err := selfplay.NewLogger(dir, 1)
	require.NoError(t, err)

	c := Contestant{Name: "solo", Engine: engine.NewEngine()}
	pairings := SelfPlayPairings(c, 1, 2000)

	d := NewDriver(1, true, logger)
	results := d.Run(pairings)
	require.Len(t, results, 1)

	require.NoError(t, logger.Close())
}
