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

package config

// evalConfiguration holds the weights of the texel-style, phase-interpolated
// static evaluator. Every feature carries a "start" (opening, low swarm
// fragmentation) and an "end" (late game, fields mostly connected) weight;
// the evaluator blends them by the current game phase.
type evalConfiguration struct {
	Tempo float64

	UseEvalCache  bool
	EvalCacheSize int

	// swarm connectivity: reward growing the largest connected group of own fields
	SwarmStartWeight float64
	SwarmEndWeight   float64

	// mean negative squared shortest-path distance of own fish to the own
	// greatest swarm: reward compactness
	DistStartWeight float64
	DistEndWeight   float64

	// piece count differential
	CountStartWeight float64
	CountEndWeight   float64

	// positional variance of own fields: penalize a spread-out formation
	VarStartWeight float64
	VarEndWeight   float64
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.Tempo = 0.1

	Settings.Eval.UseEvalCache = true
	Settings.Eval.EvalCacheSize = 64

	Settings.Eval.SwarmStartWeight = 3.0
	Settings.Eval.SwarmEndWeight = 8.0

	Settings.Eval.DistStartWeight = 1.5
	Settings.Eval.DistEndWeight = 0.5

	Settings.Eval.CountStartWeight = 2.0
	Settings.Eval.CountEndWeight = 2.0

	Settings.Eval.VarStartWeight = 1.0
	Settings.Eval.VarEndWeight = 0.2
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
