/*
 * Piranhas - bitboard-based engine for the two-player Piranhas board game
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// searchConfiguration holds the configuration of one decision-harness
// invocation: both the alpha-beta branch and the MCTS/RAVE branch read
// from this struct so a single config file tunes both search modes.
type searchConfiguration struct {
	// overall time budget
	MoveTimeMillis int
	UsePondering   bool

	// which search the decision harness prefers when both are viable:
	// UseMCTS forces MCTS for every move regardless of turn number;
	// otherwise the harness switches to alpha-beta once Ply reaches
	// MctsTurnThreshold, where the board is sparse enough that a deep,
	// narrow search reads further than a wide, shallow one.
	UseMCTS           bool
	MctsTurnThreshold int

	// alpha-beta
	UseAspiration   bool
	AspirationDelta int
	UseQuiescence   bool
	UseQSStandpat   bool
	UsePVS          bool
	UseKillers      bool
	UseCounterMoves bool
	UseHistory      bool
	MaxDepth        int

	UseTT      bool
	TTSizeMb   int
	UseTTMove  bool
	UseTTValue bool
	UseQSTT    bool

	UseLMR           bool
	LmrDepth         int
	LmrMovesSearched int

	UseNullMove  bool
	NmpDepth     int
	NmpReduction int

	// MCTS/RAVE
	MctsIterationBudget int
	RaveBSquared        float64
	FpuRoot             float64
	FpuEpsilon          float64
	UctC                float64
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.MoveTimeMillis = 1700
	Settings.Search.UsePondering = false

	Settings.Search.UseMCTS = false
	Settings.Search.MctsTurnThreshold = 20

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationDelta = 50
	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true
	Settings.Search.UsePVS = true
	Settings.Search.UseKillers = true
	Settings.Search.UseCounterMoves = true
	Settings.Search.UseHistory = true
	Settings.Search.MaxDepth = 64

	Settings.Search.UseTT = true
	Settings.Search.TTSizeMb = 64
	Settings.Search.UseTTMove = true
	Settings.Search.UseTTValue = true
	Settings.Search.UseQSTT = true

	Settings.Search.UseLMR = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 3

	Settings.Search.UseNullMove = false
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 2

	Settings.Search.MctsIterationBudget = 0 // 0 == governed purely by time budget
	Settings.Search.RaveBSquared = 0.35
	Settings.Search.FpuRoot = 1.5
	Settings.Search.FpuEpsilon = 1e-2
	Settings.Search.UctC = 0.7
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
}
