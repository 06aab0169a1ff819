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

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/types"
)

var logTest *logging2.Logger

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	e := TtEntry{}
	assert.EqualValues(t, TtEntrySize, unsafe.Sizeof(e))
	logTest.Debugf("Size of Entry %d bytes", unsafe.Sizeof(e))
}

func TestNew(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(65_536), tt.maxNumberOfEntries)
	logTest.Debug(tt.String())

	tt = NewTtTable(64)
	assert.Equal(t, uint64(2_097_152), tt.maxNumberOfEntries)

	tt = NewTtTable(0)
	assert.Equal(t, uint64(0), tt.maxNumberOfEntries)
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTtTable(4)
	move := types.NewMove(types.NewSquare(0, 0), types.NewSquare(1, 0))

	key := types.Key(12345)
	tt.Put(key, move, 5, 1.5, Exact)

	e := tt.GetEntry(key)
	assert.NotNil(t, e)
	assert.Equal(t, key, e.Key())
	assert.Equal(t, move, e.Move())
	assert.Equal(t, 5, e.Depth())
	assert.Equal(t, Exact, e.Vtype())
	assert.EqualValues(t, 1, e.Age())

	// age reduced on probe
	e = tt.Probe(key)
	assert.EqualValues(t, 0, e.Age())

	// age does not go below zero
	e = tt.Probe(key)
	assert.EqualValues(t, 0, e.Age())

	// not in table
	e = tt.Probe(key + 1)
	assert.Nil(t, e)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	move := types.NewMove(types.NewSquare(0, 0), types.NewSquare(1, 0))

	key := types.Key(42)
	tt.Put(key, move, 3, -2.0, UpperBound)
	assert.EqualValues(t, 1, tt.Len())

	e := tt.Probe(key)
	assert.NotNil(t, e)

	tt.Clear()

	e = tt.Probe(key)
	assert.Nil(t, e)
	assert.EqualValues(t, 0, tt.Len())
}

func TestAge(t *testing.T) {
	tt := NewTtTable(64)
	move := types.NewMove(types.NewSquare(0, 0), types.NewSquare(1, 0))

	tt.Put(1, move, 1, 0, Exact)
	tt.Put(2, move, 1, 0, Exact)

	assert.EqualValues(t, 1, tt.GetEntry(1).Age())
	assert.EqualValues(t, 1, tt.GetEntry(2).Age())

	tt.AgeEntries()

	assert.EqualValues(t, 2, tt.GetEntry(1).Age())
	assert.EqualValues(t, 2, tt.GetEntry(2).Age())
}

func TestPut(t *testing.T) {
	tt := NewTtTable(4)
	move := types.NewMove(types.NewSquare(0, 0), types.NewSquare(1, 0))

	tt.Put(111, move, 4, 1.5, LowerBound)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)
	e := tt.Probe(111)
	assert.EqualValues(t, 111, e.Key())
	assert.Equal(t, move, e.Move())
	assert.Equal(t, 4, e.Depth())
	assert.Equal(t, LowerBound, e.Vtype())

	// update same key
	tt.Put(111, move, 5, 1.6, UpperBound)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.numberOfPuts)
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)
	e = tt.Probe(111)
	assert.Equal(t, 5, e.Depth())
	assert.Equal(t, UpperBound, e.Vtype())

	// collision: deeper entry overwrites
	collisionKey := types.Key(111 + tt.maxNumberOfEntries)
	tt.Put(collisionKey, move, 6, 1.7, Exact)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	e = tt.Probe(collisionKey)
	assert.EqualValues(t, collisionKey, e.Key())
	assert.Equal(t, 6, e.Depth())

	// collision at shallower depth, resident still young: rejected
	collisionKey2 := types.Key(111 + 2*tt.maxNumberOfEntries)
	tt.Put(collisionKey2, move, 4, 1.8, LowerBound)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	e = tt.Probe(collisionKey2)
	assert.Nil(t, e)
	e = tt.Probe(collisionKey)
	assert.EqualValues(t, collisionKey, e.Key())
}

func TestHashfull(t *testing.T) {
	tt := NewTtTable(64)
	assert.Equal(t, 0, tt.Hashfull())
	for i := 0; i < 1000; i++ {
		tt.Put(types.Key(i), types.MoveNone, 1, 0, Exact)
	}
	assert.Greater(t, tt.Hashfull(), 0)
}
