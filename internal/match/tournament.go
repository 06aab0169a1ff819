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

// RoundRobinPairings builds every game a --scrimmage run plays: each
// unordered pair of distinct contestants meets gamesPerPairing times,
// alternating which one plays Red so neither side's first-move
// advantage biases the pairing's Score.
func RoundRobinPairings(contestants []Contestant, gamesPerPairing int, seedBase int64) []Pairing {
	var pairings []Pairing
	id := 0
	for i := 0; i < len(contestants); i++ {
		for j := i + 1; j < len(contestants); j++ {
			for g := 0; g < gamesPerPairing; g++ {
				red, blue := contestants[i], contestants[j]
				if g%2 == 1 {
					red, blue = blue, red
				}
				pairings = append(pairings, Pairing{
					ID:   id,
					Seed: seedBase + int64(id),
					Red:  red,
					Blue: blue,
				})
				id++
			}
		}
	}
	return pairings
}

// SelfPlayPairings builds games of one contestant against itself,
// the --selfplay mode: the same *engine.Engine plays both colors, so
// its transposition table and MCTS tree both see and learn from the
// whole game regardless of whose move it was.
func SelfPlayPairings(c Contestant, games int, seedBase int64) []Pairing {
	pairings := make([]Pairing, games)
	for g := 0; g < games; g++ {
		pairings[g] = Pairing{ID: g, Seed: seedBase + int64(g), Red: c, Blue: c}
	}
	return pairings
}

// HeadToHeadPairings builds games of two named contestants played
// repeatedly, alternating color.
func HeadToHeadPairings(a, b Contestant, games int, seedBase int64) []Pairing {
	pairings := make([]Pairing, games)
	for g := 0; g < games; g++ {
		red, blue := a, b
		if g%2 == 1 {
			red, blue = b, a
		}
		pairings[g] = Pairing{ID: g, Seed: seedBase + int64(g), Red: red, Blue: blue}
	}
	return pairings
}
