/*
 * Piranhas - bitboard-based engine for the two-player Piranhas board game
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package evaluator

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"

	"github.com/frankkopp/piranhas/internal/config"
	myLogging "github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/types"
)

// MaxSizeInMB is the largest eval cache size accepted from configuration.
const MaxSizeInMB = 1_024

// EntrySize is the size in bytes of one evalCache entry.
const EntrySize = 24

// evalCache is a direct-mapped, always-replace cache from a position's
// Zobrist key to its red-perspective static evaluation, sized as a
// power of two so the hash is a mask instead of a modulo.
type evalCache struct {
	log                *logging.Logger
	data               []cacheEntry
	sizeInByte         uint64
	maxNumberOfEntries uint64
	hashKeyMask        uint64
	entries            uint64
	hits               uint64
	misses             uint64
	replace            uint64
}

type cacheEntry struct {
	key   types.Key
	score float64
	used  bool
}

func newEvalCache() *evalCache {
	ec := &evalCache{log: myLogging.GetLog()}
	ec.resize(config.Settings.Eval.EvalCacheSize)
	return ec
}

func (ec *evalCache) resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		ec.log.Errorf("Requested size for eval cache of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}

	ec.sizeInByte = uint64(sizeInMByte) * types.MB
	ec.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(ec.sizeInByte/EntrySize))))
	ec.hashKeyMask = ec.maxNumberOfEntries - 1
	if ec.sizeInByte == 0 {
		ec.maxNumberOfEntries = 0
	}
	ec.sizeInByte = ec.maxNumberOfEntries * EntrySize

	ec.data = make([]cacheEntry, ec.maxNumberOfEntries)

	ec.log.Infof("Eval cache size %d MByte, capacity %d entries (size=%d Byte) (requested %d MByte)",
		ec.sizeInByte/types.MB, ec.maxNumberOfEntries, unsafe.Sizeof(cacheEntry{}), sizeInMByte)
}

// get returns the cached score for key, and whether it was present.
func (ec *evalCache) get(key types.Key) (float64, bool) {
	if ec.maxNumberOfEntries == 0 {
		return 0, false
	}
	e := &ec.data[ec.hash(key)]
	if e.used && e.key == key {
		ec.hits++
		return e.score, true
	}
	ec.misses++
	return 0, false
}

// put stores score for key, replacing whatever entry currently shares
// its hash slot.
func (ec *evalCache) put(key types.Key, score float64) {
	if ec.maxNumberOfEntries == 0 {
		return
	}
	e := &ec.data[ec.hash(key)]
	if !e.used {
		ec.entries++
	} else if e.key != key {
		ec.replace++
	}
	e.used = true
	e.key = key
	e.score = score
}

// clear drops every entry, keeping the current capacity.
func (ec *evalCache) clear() {
	ec.data = make([]cacheEntry, ec.maxNumberOfEntries)
	ec.entries = 0
	ec.hits = 0
	ec.misses = 0
	ec.replace = 0
}

func (ec *evalCache) len() uint64 {
	return ec.entries
}

func (ec *evalCache) hash(key types.Key) uint64 {
	return uint64(key) & ec.hashKeyMask
}
