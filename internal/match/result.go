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

// Package match is the tournament/self-play driver: it plays many
// independent games of two contestants across a fixed-size worker
// pool and reports the aggregate result as a win/loss/draw count with
// an Elo estimate. Each worker appends its finished game to a shared
// result slice under a mutex and, when collecting, hands the game's
// records to the self-play logger itself; there is no separate
// scoring or logging goroutine.
package match

import (
	"fmt"
	"time"

	"github.com/frankkopp/piranhas/internal/types"
)

// GameResult is what one finished game reports back to the driver.
type GameResult struct {
	ID       int
	First    string // contestant that played Red in this game
	Second   string // contestant that played Blue in this game
	Winner   *types.Color
	Draw     bool
	Plies    int
	Duration time.Duration
	Err      error
}

// Score accumulates decisive and drawn outcomes from the point of view
// of the contestant named to AddFor, across every game that contestant
// has played, regardless of which color it
// held in any individual game - round-robin play alternates colors
// specifically so that color-dependent advantage cancels out of this
// tally.
type Score struct {
	Wins   int
	Losses int
	Draws  int
}

// AddFor folds one GameResult into the score from the point of view of
// the contestant named subject - regardless of which color subject
// held in this particular game, since round-robin play alternates
// colors precisely so a Score can be kept per contestant pair rather
// than per color assignment.
func (s *Score) AddFor(r GameResult, subject string) {
	if r.Draw || r.Winner == nil {
		s.Draws++
		return
	}
	winner := r.First
	if *r.Winner == types.Blue {
		winner = r.Second
	}
	if winner == subject {
		s.Wins++
	} else {
		s.Losses++
	}
}

// Games is the total number of decided-or-drawn games folded in.
func (s Score) Games() int {
	return s.Wins + s.Losses + s.Draws
}

// WinRate is the fractional score (win=1, draw=0.5, loss=0) in [0,1].
func (s Score) WinRate() float64 {
	n := s.Games()
	if n == 0 {
		return 0.5
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(n)
}

// Elo reports the estimated Elo difference and its 95% confidence
// half-width, in that order.
func (s Score) Elo() (diff, errBound float64) {
	rate := s.WinRate()
	variance := scoreVariance(s.Wins, s.Losses, s.Draws, rate)
	return eloDiff(rate), eloError(rate, variance, s.Games())
}

// Standings folds a batch of GameResults into one Score per contestant
// name, across every opponent it faced - the tournament table a
// --scrimmage run reports at the end.
func Standings(results []GameResult) map[string]*Score {
	table := make(map[string]*Score)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		for _, name := range []string{r.First, r.Second} {
			if _, ok := table[name]; !ok {
				table[name] = &Score{}
			}
			table[name].AddFor(r, name)
		}
	}
	return table
}

func (s Score) String() string {
	diff, errBound := s.Elo()
	return fmt.Sprintf("+%d -%d =%d, elo %+.1f +/- %.1f",
		s.Wins, s.Losses, s.Draws, diff, errBound)
}
