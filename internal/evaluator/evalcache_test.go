//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/piranhas/internal/types"
)

func TestEvalCacheMissThenHit(t *testing.T) {
	ec := newEvalCache()
	_, ok := ec.get(types.Key(42))
	assert.False(t, ok)

	ec.put(types.Key(42), 3.5)
	v, ok := ec.get(types.Key(42))
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)
	assert.Equal(t, uint64(1), ec.len())
}

func TestEvalCacheClear(t *testing.T) {
	ec := newEvalCache()
	ec.put(types.Key(1), 1.0)
	ec.clear()
	_, ok := ec.get(types.Key(1))
	assert.False(t, ok)
	assert.Equal(t, uint64(0), ec.len())
}

func TestEvalCacheResizeCapsAtMax(t *testing.T) {
	ec := newEvalCache()
	ec.resize(MaxSizeInMB + 1)
	assert.LessOrEqual(t, ec.sizeInByte, MaxSizeInMB*types.MB)
}
