package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/engine"
)

func TestRoundRobinPairingsCoversEveryUnorderedPair(t *testing.T) {
	a := Contestant{Name: "a", Engine: engine.NewEngine()}
	b := Contestant{Name: "b", Engine: engine.NewEngine()}
	c := Contestant{Name: "c", Engine: engine.NewEngine()}

	pairings := RoundRobinPairings([]Contestant{a, b, c}, 2, 0)
	assert.Len(t, pairings, 3*2)

	seen := map[string]int{}
	for _, p := range pairings {
		seen[p.Red.Name+p.Blue.Name]++
	}
	assert.Equal(t, 1, seen["ab"])
	assert.Equal(t, 1, seen["ba"])
}

func TestRoundRobinPairingsAssignUniqueSeeds(t *testing.T) {
	a := Contestant{Name: "a", Engine: engine.NewEngine()}
	b := Contestant{Name: "b", Engine: engine.NewEngine()}
	pairings := RoundRobinPairings([]Contestant{a, b}, 4, 100)
	seeds := map[int64]bool{}
	for _, p := range pairings {
		seeds[p.Seed] = true
	}
	assert.Len(t, seeds, 4)
}

func TestSelfPlayPairingsUseSameContestantBothSides(t *testing.T) {
	c := Contestant{Name: "solo", Engine: engine.NewEngine()}
	pairings := SelfPlayPairings(c, 3, 0)
	assert.Len(t, pairings, 3)
	for _, p := range pairings {
		assert.Equal(t, "solo", p.Red.Name)
		assert.Equal(t, "solo", p.Blue.Name)
	}
}

func TestHeadToHeadPairingsAlternateColor(t *testing.T) {
	a := Contestant{Name: "a", Engine: engine.NewEngine()}
	b := Contestant{Name: "b", Engine: engine.NewEngine()}
	pairings := HeadToHeadPairings(a, b, 4, 0)
	assert.Equal(t, "a", pairings[0].Red.Name)
	assert.Equal(t, "b", pairings[1].Red.Name)
	assert.Equal(t, "a", pairings[2].Red.Name)
}
