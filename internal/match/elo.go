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

package match

import "math"

// eloDiff converts a win rate in (0,1) into an Elo rating difference
// using the standard logistic approximation: a score of 0.5 is a
// difference of 0, a score approaching 1 diverges to +Inf.
func eloDiff(score float64) float64 {
	if score <= 0 {
		return math.Inf(-1)
	}
	if score >= 1 {
		return math.Inf(1)
	}
	return -400 * math.Log10(1/score-1)
}

// eloError estimates the 95% confidence half-width of an Elo
// difference computed from n decisive-weighted games with the given
// per-game score variance, via a first-order (delta-method)
// propagation through eloDiff - the same approach cutechess-cli and
// similar round-robin tournament managers use to report "+/-" next to
// an Elo estimate, rather than a closed-form binomial interval that
// doesn't account for draws carrying half weight.
func eloError(score float64, variance float64, n int) float64 {
	if n == 0 || score <= 0 || score >= 1 {
		return math.Inf(1)
	}
	stderr := math.Sqrt(variance / float64(n))
	// d(eloDiff)/d(score) = 400 / (ln(10) * score * (1-score))
	slope := 400 / (math.Ln10 * score * (1 - score))
	return 1.96 * slope * stderr
}

// scoreVariance is the sample variance of the per-game score (1 for a
// win, 0.5 for a draw, 0 for a loss) given the observed counts.
func scoreVariance(wins, losses, draws int, score float64) float64 {
	n := wins + losses + draws
	if n == 0 {
		return 0
	}
	sum := float64(wins)*sq(1-score) + float64(draws)*sq(0.5-score) + float64(losses)*sq(0-score)
	return sum / float64(n)
}

func sq(v float64) float64 { return v * v }
