package index

import "errors"

// errArenaFull is returned internally when an allocation would exceed
// ArenaCap. It never escapes the package: callers observe it only as
// the boolean "false" return of add.
var errArenaFull = errors.New("index: arena exhausted")

// arena is a single contiguous, pre-allocated byte buffer with
// bump-only allocation. Nothing is ever freed in place; remove leaves
// the bytes behind until compact rewrites the buffer.
type arena struct {
	data []byte // len == ArenaCap, fixed for the arena's lifetime
	used int    // bump pointer: bytes 0..used are live or leaked
}

func newArena() *arena {
	return &arena{data: make([]byte, ArenaCap)}
}

// alloc reserves n bytes at the current bump pointer and returns their
// offset. It fails when the new pointer would exceed ArenaCap.
func (a *arena) alloc(n int) (offset int, err error) {
	if n < 0 || a.used+n > len(a.data) {
		return 0, errArenaFull
	}
	offset = a.used
	a.used += n
	return offset, nil
}

// slice returns the byte range [offset, offset+n) of the arena. The
// returned slice aliases the arena's storage and is invalidated by the
// next compact.
func (a *arena) slice(offset, n int) []byte {
	return a.data[offset : offset+n]
}

// reset rewinds the bump pointer to zero. Previously allocated ranges
// become invalid; the underlying storage is not zeroed.
func (a *arena) reset() {
	a.used = 0
}

// stringPoolUsed reports the number of bytes currently allocated,
// live or leaked.
func (a *arena) stringPoolUsed() int {
	return a.used
}

// availableMemory reports the number of bytes left before alloc fails.
func (a *arena) availableMemory() int {
	return len(a.data) - a.used
}

// compact rewrites the live ranges described by offsets (in the order
// given) end-to-end starting at offset 0, updating each entry's start
// in place, and rewinds the bump pointer to the new used length. It
// returns the number of bytes reclaimed. offsets must describe
// non-overlapping live ranges; lens[i] is the length of offsets[i].
func (a *arena) compact(offsets []int, lens []int) int {
	oldUsed := a.used

	total := 0
	for _, n := range lens {
		total += n
	}

	// A short-lived scratch copy keeps the rewrite correct regardless
	// of the relative order between each record's old and new offset;
	// compact is not on the query hot path, so this allocation is
	// acceptable.
	scratch := make([]byte, total)
	pos := 0
	for i, off := range offsets {
		n := lens[i]
		copy(scratch[pos:pos+n], a.data[off:off+n])
		offsets[i] = pos
		pos += n
	}

	copy(a.data, scratch)
	a.used = total

	return oldUsed - a.used
}
