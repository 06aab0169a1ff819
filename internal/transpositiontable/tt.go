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

// Package transpositiontable implements a transposition table (cache) for
// the alpha-beta search: an open-addressed, direct-mapped, power-of-2
// sized array keyed by the low bits of a Zobrist hash. Not thread safe -
// each search worker owns its own table.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/types"
	"github.com/frankkopp/piranhas/internal/util"
)

var out = message.NewPrinter(language.English)

// MaxSizeInMB is the largest table this package will allocate even if asked for more.
const MaxSizeInMB = 65_536

// TtTable is the transposition table. Create with NewTtTable.
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds running usage counters for logging/diagnostics.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a table sized to the largest power-of-2 entry count
// that fits within sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize reallocates the table, clearing all entries. Not safe to call
// while a search using this table is in progress.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Errorf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * types.MB
	tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
	tt.hashKeyMask = tt.maxNumberOfEntries - 1

	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	}
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)

	tt.log.Infof("TT size %d MByte, capacity %d entries (size=%d Byte) (requested %d MByte)",
		tt.sizeInByte/types.MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), sizeInMByte)
	tt.log.Debug(util.MemStat())
}

// GetEntry returns a pointer to the slot for key if its stored key
// matches, without touching statistics or age.
func (tt *TtTable) GetEntry(key types.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		return e
	}
	return nil
}

// Probe looks up key, recording a hit/miss and aging the entry on hit
// (an entry that keeps being found stays "young").
func (tt *TtTable) Probe(key types.Key) *TtEntry {
	tt.Stats.numberOfProbes++
	if tt.maxNumberOfEntries == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		e.decreaseAge()
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result. An empty slot is always filled; a
// colliding slot is overwritten only if the new entry searched deeper,
// or searched the same depth but the resident entry has aged; a slot
// that already holds this exact key is refreshed in place.
func (tt *TtTable) Put(key types.Key, move types.Move, depth int, value float64, vtype ValueType) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.numberOfPuts++

	slot := &tt.data[tt.hash(key)]

	switch {
	case slot.key == 0:
		tt.numberOfEntries++
		*slot = newEntry(key, value, move, depth, vtype, 1)
	case slot.key != key:
		tt.Stats.numberOfCollisions++
		if depth > slot.Depth() || (depth == slot.Depth() && slot.Age() > 1) {
			tt.Stats.numberOfOverwrites++
			*slot = newEntry(key, value, move, depth, vtype, 1)
		}
	default:
		tt.Stats.numberOfUpdates++
		*slot = newEntry(key, value, move, depth, vtype, 1)
	}
}

// Clear empties the table and resets statistics.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull reports how full the table is, in permille.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// String renders a usage summary for logging.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/types.MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 { return tt.numberOfEntries }

// AgeEntries increments the age of every occupied slot in parallel,
// called once between searches so stale entries become preferentially
// replaceable without being cleared outright.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	if tt.numberOfEntries > 0 {
		numberOfGoroutines := uint64(32)
		var wg sync.WaitGroup
		wg.Add(int(numberOfGoroutines))
		slice := tt.maxNumberOfEntries / numberOfGoroutines
		for i := uint64(0); i < numberOfGoroutines; i++ {
			go func(i uint64) {
				defer wg.Done()
				start := i * slice
				end := start + slice
				if i == numberOfGoroutines-1 {
					end = tt.maxNumberOfEntries
				}
				for n := start; n < end; n++ {
					if tt.data[n].key != 0 {
						tt.data[n].increaseAge()
					}
				}
			}(i)
		}
		wg.Wait()
	}
	elapsed := time.Since(startTime)
	tt.log.Debugf("Aged %d entries of %d in %s", tt.numberOfEntries, len(tt.data), elapsed)
}

func (tt *TtTable) hash(key types.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
