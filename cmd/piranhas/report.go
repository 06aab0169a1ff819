package main

import (
	"sort"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/piranhas/internal/match"
)

var out = message.NewPrinter(language.English)

// reportThroughput prints a terse labeled throughput summary in the
// style of the engine's own perft benchmark output, rather than a
// win/loss table - a --benchmark run cares about games per second, not
// who won.
func reportThroughput(games int, elapsed time.Duration) {
	out.Printf("-----------------------------------------\n")
	out.Printf("Games        : %d\n", games)
	out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
	if elapsed > 0 {
		out.Printf("Games/sec    : %d\n", (int64(games)*time.Second.Nanoseconds())/elapsed.Nanoseconds())
	}
	out.Printf("-----------------------------------------\n")
}

// reportStandings prints one line per contestant, best to worst by
// Elo, colored green/red by whether its Elo difference is positive or
// negative so a scrimmage run's winner is visible at a glance.
func reportStandings(results []match.GameResult) {
	table := match.Standings(results)

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		di, _ := table[names[i]].Elo()
		dj, _ := table[names[j]].Elo()
		return di > dj
	})

	for _, name := range names {
		score := table[name]
		diff, _ := score.Elo()
		line := out.Sprintf("%-12s %s", name, score.String())
		switch {
		case diff > 0:
			color.Green(line)
		case diff < 0:
			color.Red(line)
		default:
			color.Yellow(line)
		}
	}
}
