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
	"context"
	"sync"

	"github.com/frankkopp/workerpool"
	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	myLogging "github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/selfplay"
)

// Pairing is one game still to be played: which two Contestants face
// off, which random seed draws its initial obstacles, and a numeric id
// used to correlate its result and its self-play records.
type Pairing struct {
	ID   int
	Seed int64
	Red  Contestant
	Blue Contestant
}

// Driver runs a batch of Pairings across a fixed-size worker pool, one
// worker per concurrent game; each Contestant's *engine.Engine is
// reused across every game it plays but never shared between workers
// running at the same time, per spec's "no sharing" concurrency rule.
// A bounded semaphore caps in-flight games independently of how many
// Pairings are queued, so a large --number doesn't block on pool
// submission the way an unbounded Submit loop would.
type Driver struct {
	log      *logging.Logger
	matchLog *logging.Logger

	pool *workerpool.WorkerPool
	sem  *semaphore.Weighted

	collect bool
	logger  *selfplay.Logger
}

// NewDriver builds a Driver with threads workers. logger may be nil;
// it is only consulted when collect is true.
func NewDriver(threads int, collect bool, logger *selfplay.Logger) *Driver {
	return &Driver{
		log:      myLogging.GetLog(),
		matchLog: myLogging.GetMatchLog(),
		pool:     workerpool.New(threads),
		sem:      semaphore.NewWeighted(int64(threads)),
		collect:  collect,
		logger:   logger,
	}
}

// Run plays every Pairing to completion and returns their results in
// completion order (not submission order). It blocks until the whole
// batch has finished and the pool has drained.
func (d *Driver) Run(pairings []Pairing) []GameResult {
	results := make([]GameResult, 0, len(pairings))
	var mu sync.Mutex
	ctx := context.Background()

	for _, p := range pairings {
		p := p
		if err := d.sem.Acquire(ctx, 1); err != nil {
			d.log.Errorf("match: semaphore acquire: %v", err)
			break
		}
		d.pool.Submit(func() {
			defer d.sem.Release(1)
			result, records, err := playGame(p.ID, p.Seed, p.Red, p.Blue, d.collect)
			if err != nil {
				d.log.Errorf("game %d (%s vs %s): %v", p.ID, p.Red.Name, p.Blue.Name, err)
			} else {
				d.matchLog.Infof("game %d: %s vs %s -> %s", p.ID, p.Red.Name, p.Blue.Name, outcomeString(result))
			}
			if d.collect && d.logger != nil {
				for _, rec := range records {
					d.logger.AddPly(p.ID, rec)
				}
				d.logger.EndGame(p.ID, result.Winner)
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		})
	}
	d.pool.StopWait()
	return results
}

func outcomeString(r GameResult) string {
	switch {
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case r.Draw:
		return "draw"
	case r.Winner != nil:
		return r.Winner.String() + " wins"
	default:
		return "unknown"
	}
}
