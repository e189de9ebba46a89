package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStaircase(t *testing.T) {
	tests := []struct {
		m, configured, want int
	}{
		{m: 2, configured: 3, want: 0},
		{m: 3, configured: 1, want: 0},
		{m: 4, configured: 3, want: 1},
		{m: 7, configured: 0, want: 0},
		{m: 7, configured: 3, want: 1},
		{m: 8, configured: 3, want: 2},
		{m: 11, configured: 1, want: 1},
		{m: 12, configured: 1, want: 1},
		{m: 12, configured: 3, want: 3},
		{m: 64, configured: 3, want: 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorStaircase(tt.m, tt.configured))
	}
}

func TestPatternPrepareFoldsAndSetsMatchBit(t *testing.T) {
	var p pattern
	p.prepare([]byte("HeLLo"), 2)

	assert.True(t, p.ready)
	assert.Equal(t, 5, p.length)
	assert.Equal(t, "hello", string(p.bytes[:p.length]))
	assert.Equal(t, uint64(1<<4), p.matchBit)
}

func TestPatternPrepareTruncatesOverLongQueries(t *testing.T) {
	raw := make([]byte, MaxPatternLen+10)
	for i := range raw {
		raw[i] = 'a'
	}

	var p pattern
	p.prepare(raw, 1)

	assert.Equal(t, MaxPatternLen, p.length)
}

func TestPatternPrepareEmptyIsNotReady(t *testing.T) {
	var p pattern
	p.prepare(nil, 2)
	assert.False(t, p.ready)
}

func TestPatternMasksMarkEveryOccurrence(t *testing.T) {
	var p pattern
	p.prepare([]byte("aba"), 0)

	// 'a' occurs at positions 0 and 2.
	assert.Equal(t, uint64(1<<0|1<<2), p.masks['a'])
	assert.Equal(t, uint64(1<<1), p.masks['b'])
	assert.Equal(t, uint64(0), p.masks['c'])
}

func TestPatternClear(t *testing.T) {
	var p pattern
	p.prepare([]byte("x"), 0)
	assert.True(t, p.ready)

	p.clear()
	assert.False(t, p.ready)
}
