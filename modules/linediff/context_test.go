package linediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextBufferEvictsPastLimit(t *testing.T) {
	cb := newContextBuffer(2)
	for i := 0; i < 5; i++ {
		cb.push(lineCache{raw: string(rune('a' + i))}, false)
	}
	assert.Equal(t, 4, cb.size())
	first, ok := cb.popFront()
	assert.True(t, ok)
	assert.Equal(t, "b", first.raw)
}

func TestContextBufferHalfFull(t *testing.T) {
	cb := newContextBuffer(2)
	assert.False(t, cb.halfFull())
	cb.push(lineCache{raw: "1"}, true)
	assert.False(t, cb.halfFull())
	cb.push(lineCache{raw: "2"}, true)
	assert.True(t, cb.halfFull())
}

func TestContextBufferZeroSizeIsAlwaysEmptyAndNoop(t *testing.T) {
	cb := newContextBuffer(0)
	assert.True(t, cb.empty())
	full := cb.push(lineCache{raw: "x"}, false)
	assert.True(t, full)
	assert.Equal(t, 0, cb.size())
}

func TestContextBufferHalfSize(t *testing.T) {
	cb := newContextBuffer(3)
	cb.push(lineCache{raw: "1"}, false)
	cb.push(lineCache{raw: "2"}, false)
	assert.Equal(t, 2, cb.halfSize())
	cb.push(lineCache{raw: "3"}, false)
	cb.push(lineCache{raw: "4"}, false)
	assert.Equal(t, 3, cb.halfSize())
}
