package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTableReserveIsFirstFit(t *testing.T) {
	var tbl recordTable

	i0, ok := tbl.reserve()
	require.True(t, ok)
	assert.Equal(t, 0, i0)
	tbl.put(i0, 1, 0, 4, 0)

	i1, ok := tbl.reserve()
	require.True(t, ok)
	assert.Equal(t, 1, i1)
	tbl.put(i1, 2, 4, 4, 0)

	require.True(t, tbl.remove(1))
	assert.Equal(t, 1, tbl.count())

	// Slot 0 is free again; the next reserve must reuse it rather
	// than growing past the high-water mark.
	i2, ok := tbl.reserve()
	require.True(t, ok)
	assert.Equal(t, 0, i2)
}

func TestRecordTableFindAndRemove(t *testing.T) {
	var tbl recordTable

	i, _ := tbl.reserve()
	tbl.put(i, 42, 0, 3, 7)

	assert.Equal(t, i, tbl.find(42))
	assert.Equal(t, -1, tbl.find(99))

	assert.True(t, tbl.remove(42))
	assert.Equal(t, -1, tbl.find(42))
	assert.False(t, tbl.remove(42))
}

func TestRecordTablePutRewritesInPlace(t *testing.T) {
	var tbl recordTable

	i, _ := tbl.reserve()
	tbl.put(i, 1, 0, 4, 0)
	assert.Equal(t, 1, tbl.count())

	// Re-adding a live id replaces it in place: same slot, count
	// unchanged.
	tbl.put(i, 1, 20, 6, 0)
	assert.Equal(t, 1, tbl.count())
	assert.Equal(t, 20, tbl.slots[i].offset)
	assert.Equal(t, 6, tbl.slots[i].length)
}

func TestRecordTableReset(t *testing.T) {
	var tbl recordTable
	i, _ := tbl.reserve()
	tbl.put(i, 1, 0, 4, 0)

	tbl.reset()

	assert.Equal(t, 0, tbl.count())
	assert.Equal(t, 0, tbl.high)
	assert.Equal(t, -1, tbl.find(1))
}

func TestRecordTableReserveFailsWhenFull(t *testing.T) {
	var tbl recordTable
	tbl.high = MaxRecords
	tbl.n = MaxRecords
	for i := range tbl.slots {
		tbl.slots[i].live = true
		tbl.slots[i].id = uint32(i) + 1
	}

	_, ok := tbl.reserve()
	assert.False(t, ok)
}

func TestRecordTableLiveOffsetsAndLens(t *testing.T) {
	var tbl recordTable
	i0, _ := tbl.reserve()
	tbl.put(i0, 1, 0, 5, 0)
	i1, _ := tbl.reserve()
	tbl.put(i1, 2, 5, 4, 0)
	tbl.remove(1)

	offsets, lens, slotIdx := tbl.liveOffsetsAndLens()
	require.Len(t, offsets, 1)
	assert.Equal(t, 5, offsets[0])
	assert.Equal(t, 4, lens[0])
	assert.Equal(t, i1, slotIdx[0])
}
