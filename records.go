package index

// slot is one entry of the fixed record table. An empty slot has
// live == false; its other fields are stale and must not be read.
type slot struct {
	live   bool
	id     uint32
	offset int
	length int
	sig    uint64
}

// recordTable is the fixed-length slot vector backing the index:
// id -> (slot, offset, length, signature). Allocation is first-fit
// from index 0, so the live prefix stays dense after churn and scan
// cost stays bounded by high, the slot high-water mark.
type recordTable struct {
	slots [MaxRecords]slot
	high  int // one past the highest slot index ever assigned
	n     int // live count
}

// find returns the slot index holding id, or -1 if id has no live
// slot. Cost is bounded by high, not MaxRecords.
func (t *recordTable) find(id uint32) int {
	for i := 0; i < t.high; i++ {
		if t.slots[i].live && t.slots[i].id == id {
			return i
		}
	}
	return -1
}

// firstEmpty returns the first empty slot index in [0, high), or -1
// if the live prefix has no gaps.
func (t *recordTable) firstEmpty() int {
	for i := 0; i < t.high; i++ {
		if !t.slots[i].live {
			return i
		}
	}
	return -1
}

// reserve returns the slot index to use for a brand-new id: a gap in
// the live prefix if one exists, otherwise the next slot past high.
// It reports false when the table is full.
func (t *recordTable) reserve() (int, bool) {
	if i := t.firstEmpty(); i >= 0 {
		return i, true
	}
	if t.high >= MaxRecords {
		return 0, false
	}
	i := t.high
	t.high++
	return i, true
}

// put installs a live record at slot i, replacing whatever was there.
// Callers are responsible for arena bookkeeping (put does not free the
// slot's previous allocation; the caller decides whether i already
// held a live record for the same id and is rewriting it in place).
func (t *recordTable) put(i int, id uint32, offset, length int, sig uint64) {
	wasLive := t.slots[i].live
	t.slots[i] = slot{live: true, id: id, offset: offset, length: length, sig: sig}
	if !wasLive {
		t.n++
	}
}

// remove tombstones the slot holding id. The slot becomes immediately
// reusable by a later reserve; arena bytes are not reclaimed.
func (t *recordTable) remove(id uint32) bool {
	i := t.find(id)
	if i < 0 {
		return false
	}
	t.slots[i].live = false
	t.n--
	return true
}

// reset clears every slot, the live count, and the high-water mark.
func (t *recordTable) reset() {
	for i := 0; i < t.high; i++ {
		t.slots[i] = slot{}
	}
	t.high = 0
	t.n = 0
}

// count reports the number of currently live records.
func (t *recordTable) count() int {
	return t.n
}

// liveOffsetsAndLens returns the (offset, length) pairs of every live
// slot, in slot order, for compact to rewrite. The returned slices
// alias no table state and may be mutated by the caller.
func (t *recordTable) liveOffsetsAndLens() (offsets, lens []int, slotIdx []int) {
	offsets = make([]int, 0, t.n)
	lens = make([]int, 0, t.n)
	slotIdx = make([]int, 0, t.n)
	for i := 0; i < t.high; i++ {
		s := &t.slots[i]
		if s.live {
			offsets = append(offsets, s.offset)
			lens = append(lens, s.length)
			slotIdx = append(slotIdx, i)
		}
	}
	return offsets, lens, slotIdx
}

// applyCompactedOffsets writes back the offsets compact computed for
// each live slot named in slotIdx, in the same order returned by
// liveOffsetsAndLens.
func (t *recordTable) applyCompactedOffsets(slotIdx []int, offsets []int) {
	for k, i := range slotIdx {
		t.slots[i].offset = offsets[k]
	}
}
