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

// matchConfiguration holds the defaults for the tournament/match driver
// (cmd/piranhas). Command line flags overwrite these after Setup() runs.
type matchConfiguration struct {
	Threads        int
	NumberOfGames  int
	XMLReplay      bool
	DataCollection bool
	SelfPlay       bool
	Benchmark      bool
	Scrimmage      bool

	ReplayDir     string
	SelfPlayDir   string
	StatesPerFile int

	Host string
	Port int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Match.Threads = 7
	Settings.Match.NumberOfGames = 1
	Settings.Match.XMLReplay = false
	Settings.Match.DataCollection = false
	Settings.Match.SelfPlay = false
	Settings.Match.Benchmark = false
	Settings.Match.Scrimmage = false

	Settings.Match.ReplayDir = "./replays"
	Settings.Match.SelfPlayDir = "./replays/vals"
	Settings.Match.StatesPerFile = 100

	Settings.Match.Host = "localhost"
	Settings.Match.Port = 13050
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupMatch() {
}
