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

package search

import (
	"time"

	"github.com/frankkopp/piranhas/internal/moveslice"
	"github.com/frankkopp/piranhas/internal/types"
)

// Result stores the outcome of one Run call. Aborted is set when the
// time budget (or node limit) ran out before the current iteration
// finished; BestMove is still populated from the last fully completed
// iteration in that case, never from a partial one - iterative
// deepening guarantees a usable move is always available after the
// first depth completes.
type Result struct {
	BestMove    types.Move
	BestValue   float64
	SearchTime  time.Duration
	SearchDepth int
	ExtraDepth  int
	Aborted     bool
	Pv          moveslice.MoveSlice
}

func (r *Result) String() string {
	return out.Sprintf("bestmove=%s value=%.2f depth=%d/%d time=%dms aborted=%t pv=%s",
		r.BestMove.String(), r.BestValue, r.SearchDepth, r.ExtraDepth, r.SearchTime.Milliseconds(), r.Aborted, r.Pv.String())
}
