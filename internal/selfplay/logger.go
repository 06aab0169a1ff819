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

package selfplay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/op/go-logging"

	"github.com/frankkopp/piranhas/internal/config"
	myLogging "github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/types"
)

// Logger accumulates Records for games still in progress and flushes
// them to disk in fixed-size batches once enough have queued up, so a
// long-running match never holds its entire self-play history in
// memory. Every exported method is safe for concurrent use - the match
// driver shares one Logger across all its workers.
type Logger struct {
	log *logging.Logger

	dir           string
	statesPerFile int

	mu      sync.Mutex
	index   int
	pending []Record
	byGame  map[int][]Record
}

// NewLogger creates dir if needed and picks up numbering where a
// previous run left off: it scans for the first file name under dir
// that does not yet exist, rather than always starting at 0, so
// repeated self-play runs accumulate into the same directory instead
// of overwriting each other.
func NewLogger(dir string, statesPerFile int) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("selfplay: creating %s: %w", dir, err)
	}
	index := 0
	for {
		if _, err := os.Stat(filepath.Join(dir, strconv.Itoa(index))); os.IsNotExist(err) {
			break
		}
		index++
	}
	return &Logger{
		log:           myLogging.GetLog(),
		dir:           dir,
		statesPerFile: statesPerFile,
		index:         index,
		byGame:        make(map[int][]Record),
	}, nil
}

// NewDefaultLogger builds a Logger from the match configuration's
// SelfPlayDir/StatesPerFile settings.
func NewDefaultLogger() (*Logger, error) {
	return NewLogger(config.Settings.Match.SelfPlayDir, config.Settings.Match.StatesPerFile)
}

// AddPly records one ply of game id's history. The record's Winner
// field is left unset here; EndGame fills it in once the outcome is
// known, for every ply of that game at once.
func (l *Logger) AddPly(gameID int, rec Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byGame[gameID] = append(l.byGame[gameID], rec)
}

// EndGame stamps every accumulated ply of gameID with winner (nil for
// a draw) and moves them into the flush queue, draining and discarding
// that game's in-progress history either way.
func (l *Logger) EndGame(gameID int, winner *types.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	recs := l.byGame[gameID]
	delete(l.byGame, gameID)
	if len(recs) == 0 {
		return
	}
	var label *string
	if winner != nil {
		w := winner.String()
		label = &w
	}
	for i := range recs {
		recs[i].Winner = label
	}
	l.pending = append(l.pending, recs...)
	for len(l.pending) >= l.statesPerFile {
		l.flushOneLocked()
	}
}

// Close flushes whatever is left in the queue, even if it is short of
// a full batch. Any games still mid-play when Close is called lose
// their unflushed history - the match driver is expected to call
// EndGame for every game it starts before shutting the logger down.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for len(l.pending) > 0 {
		l.flushOneLocked()
	}
	return nil
}

// flushOneLocked writes exactly one file's worth of records (the
// oldest statesPerFile entries, or everything if fewer remain) and
// advances the file index. Write failures are logged and swallowed
// rather than returned, per the engine-wide "I/O error while writing
// replays/data: log and continue" rule - losing one batch of training
// data must never abort a running match.
func (l *Logger) flushOneLocked() {
	n := l.statesPerFile
	if n > len(l.pending) {
		n = len(l.pending)
	}
	batch := l.pending[:n]
	l.pending = l.pending[n:]

	path := filepath.Join(l.dir, strconv.Itoa(l.index))
	data, err := json.Marshal(batch)
	if err != nil {
		l.log.Errorf("selfplay: marshalling batch for %s: %v", path, err)
		return
	}

	f, err := os.Create(path)
	if err != nil {
		l.log.Errorf("selfplay: creating %s: %v", path, err)
		return
	}
	if _, err := f.Write(data); err != nil {
		l.log.Errorf("selfplay: writing %s: %v", path, err)
		_ = f.Close()
		return
	}
	if err := f.Close(); err != nil {
		l.log.Errorf("selfplay: closing %s: %v", path, err)
		return
	}
	l.index++
}
