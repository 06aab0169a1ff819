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

package mcts

import (
	"math"

	"github.com/frankkopp/piranhas/internal/config"
)

// cBase inflates the exploration constant as the parent's visit count
// grows, the same schedule AlphaGo-style RAVE blends use so that
// exploration does not collapse too early on a node with many visits.
const cBase = 10_000.0

// raveBeta is the weight given to a child's RAVE (all-moves-as-first)
// estimate against its raw UCB value, falling as the child accumulates
// its own direct visits.
func raveBeta(raveN, childN float64) float64 {
	bSquared := config.Settings.Search.RaveBSquared
	denom := raveN + childN + 4*bSquared*raveN*childN
	if denom == 0 {
		return 0
	}
	return raveN / denom
}

func inflatedC(parentN float64) float64 {
	c := config.Settings.Search.UctC
	return c * (1 + 2.2*math.Log((1+parentN+cBase)/cBase))
}

// ucbRave scores an already-expanded child for selection: the usual
// UCB1 exploitation/exploration terms blended with its RAVE estimate.
func ucbRave(parentN, childN, childQ, raveN, raveQ float64) float64 {
	c := inflatedC(parentN)
	beta := raveBeta(raveN, childN)
	exploit := childQ / childN
	explore := c * math.Sqrt(2*math.Log(parentN)/childN)
	raveEstimate := 0.0
	if raveN > 0 {
		raveEstimate = raveQ / raveN
	}
	return (1-beta)*exploit + explore + beta*raveEstimate
}

// fpu scores a not-yet-expanded move, giving it a first-play-urgency
// value that competes with already-expanded children without having
// been visited itself. atRoot uses the teacher-tuned FpuRoot constant;
// elsewhere fpu decays with the parent's accumulated value the way an
// optimistic-but-bounded estimate should.
func fpu(atRoot bool, parentN, parentQ float64, raveN, raveQ float64) float64 {
	c := inflatedC(parentN)
	beta := raveBeta(raveN, parentN)
	raveEstimate := 0.0
	if raveN > 0 {
		raveEstimate = raveQ / raveN
	}
	var base float64
	if atRoot {
		base = config.Settings.Search.FpuRoot
	} else if parentN > 0 {
		base = (parentN-parentQ)/parentN - config.Settings.Search.FpuEpsilon
	}
	explore := 0.0
	if parentN > 0 {
		explore = c * math.Sqrt(math.Log(parentN))
	}
	return base + explore + beta*raveEstimate
}
