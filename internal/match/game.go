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

import (
	"math/rand"
	"time"

	"github.com/frankkopp/piranhas/internal/board"
	"github.com/frankkopp/piranhas/internal/engine"
	"github.com/frankkopp/piranhas/internal/rules"
	"github.com/frankkopp/piranhas/internal/selfplay"
	"github.com/frankkopp/piranhas/internal/types"
)

// Contestant names one side of a game and owns the engine that plays
// it. The driver builds one Contestant (and one *engine.Engine) per
// concurrent game per worker - engines are never shared across games
// or goroutines.
type Contestant struct {
	Name   string
	Engine *engine.Engine
}

// playGame runs one game to completion: Contestants alternate
// OnMoveRequest calls following gs.Turn until rules.IsFinished, then
// reports the outcome. If collect is true, every ply's root-move
// distribution is appended to records for the caller to hand to a
// selfplay.Logger once the game (and its winner) is known - playGame
// itself never touches the logger, so it has no disk-I/O error
// category to worry about.
func playGame(id int, seed int64, red, blue Contestant, collect bool) (GameResult, []selfplay.Record, error) {
	gs := board.NewInitialGameState(rand.New(rand.NewSource(seed)))
	start := time.Now()

	red.Engine.NewGame()
	if blue.Engine != red.Engine {
		blue.Engine.NewGame()
	}

	var records []selfplay.Record
	for !rules.IsFinished(gs) {
		mover := red
		if gs.Turn == types.Blue {
			mover = blue
		}
		move, err := mover.Engine.OnMoveRequest(gs)
		if err != nil {
			return GameResult{ID: id, First: red.Name, Second: blue.Name, Err: err}, nil, err
		}
		if collect {
			var moves []selfplay.MoveValue
			for _, v := range mover.Engine.LastValues() {
				moves = append(moves, selfplay.MoveValue{Move: v.Move.String(), Value: v.Value})
			}
			records = append(records, selfplay.NewRecord(gs, moves, nil))
		}
		gs.DoMove(move)
	}

	outcome := rules.Result(gs)
	result := GameResult{
		ID:       id,
		First:    red.Name,
		Second:   blue.Name,
		Plies:    gs.Ply,
		Duration: time.Since(start),
	}
	switch outcome {
	case rules.RedWins:
		w := types.Red
		result.Winner = &w
	case rules.BlueWins:
		w := types.Blue
		result.Winner = &w
	default:
		result.Draw = true
	}
	return result, records, nil
}
