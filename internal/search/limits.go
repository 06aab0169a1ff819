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

// Limits controls how long/deep a single Run call is allowed to search.
// A zero value means "use the configured defaults": the decision
// harness's time budget and config.Settings.Search.MaxDepth.
type Limits struct {
	// MoveTimeMillis overrides the configured time budget for this
	// call only. 0 means use config.Settings.Search.MoveTimeMillis.
	MoveTimeMillis int
	// Depth caps the iterative deepening loop. 0 means use
	// config.Settings.Search.MaxDepth.
	Depth int
	// Nodes caps the number of nodes visited, 0 means unlimited.
	Nodes uint64
	// Infinite disables the time budget entirely - only Depth or Nodes
	// (or an external Stop, once the harness wires one in) end the
	// search. Match play never sets it.
	Infinite bool
}

// NewSearchLimits returns a Limits using every configured default.
func NewSearchLimits() *Limits {
	return &Limits{}
}
