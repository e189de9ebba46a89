package index

// Result is one ranked match: the record's identifier, its score on
// the [0,1000] wire encoding, and the matched byte span [Start, End)
// within the record's (already-folded) text.
type Result struct {
	ID    uint32
	Score int
	Start int
	End   int
}

// ScoreFloat returns Score rescaled to [0,1].
func (r Result) ScoreFloat() float64 {
	return float64(r.Score) / 1000
}

// Init (re-)installs the index's pools and resets its configuration to
// defaults. It is idempotent: calling it twice leaves the same
// observable state as calling it once.
func (ix *Index) Init() {
	ix.table.reset()
	ix.arena.reset()
	ix.scratch.clear()
	ix.pat.clear()
	ix.coll.reset()
	ix.SetThreshold(defaultThreshold)
	ix.SetMaxErrors(defaultMaxErrors)
	ix.SetMaxResults(defaultMaxResults)
	ix.state = stateIdle
}

// Reset clears every record and rewinds the arena, preserving the
// index's current threshold, max-errors, and max-results settings.
func (ix *Index) Reset() {
	ix.table.reset()
	ix.arena.reset()
	ix.scratch.clear()
	ix.pat.clear()
	ix.coll.reset()
	ix.state = stateIdle
}

// GetWriteBuffer returns a slice of the scratch buffer's first n
// bytes for the caller to fill, or nil when n exceeds its capacity.
func (ix *Index) GetWriteBuffer(n int) []byte {
	return ix.scratch.get(n)
}

// CommitWrite marks the first n bytes written into the scratch buffer
// as the current payload, consumed by the next AddRecord or
// PreparePattern.
func (ix *Index) CommitWrite(n int) {
	ix.scratch.commit(n)
}

// AddRecord consumes the scratch buffer as a record's text, folding it
// and installing it under id. It replaces any existing live record
// with the same id in place. It returns false on empty or
// over-length text, or on arena/slot exhaustion; the scratch buffer is
// consumed (cleared) either way.
func (ix *Index) AddRecord(id uint32) bool {
	text := ix.scratch.bytes()
	ix.scratch.clear()

	n := len(text)
	if n == 0 || n > MaxTextLen {
		return false
	}

	var folded [MaxTextLen]byte
	copy(folded[:n], text)
	foldInPlace(folded[:n])
	recordSig := sig(folded[:n])

	slotIdx := ix.table.find(id)
	if slotIdx < 0 {
		var ok bool
		slotIdx, ok = ix.table.reserve()
		if !ok {
			return false
		}
	}

	offset, err := ix.arena.alloc(n)
	if err != nil {
		return false
	}
	copy(ix.arena.slice(offset, n), folded[:n])
	ix.table.put(slotIdx, id, offset, n, recordSig)
	return true
}

// RemoveRecord tombstones the live record with id, if any.
func (ix *Index) RemoveRecord(id uint32) bool {
	return ix.table.remove(id)
}

// Compact rewrites the arena so live records sit end-to-end in slot
// order, reclaiming bytes leaked by removed or rewritten records. It
// returns the number of bytes reclaimed.
func (ix *Index) Compact() int {
	offsets, lens, slotIdx := ix.table.liveOffsetsAndLens()
	reclaimed := ix.arena.compact(offsets, lens)
	ix.table.applyCompactedOffsets(slotIdx, offsets)
	return reclaimed
}

// PreparePattern consumes the scratch buffer as a query pattern:
// folding, clamping to MaxPatternLen, and building the matcher's
// position masks and relaxed signature.
func (ix *Index) PreparePattern() {
	raw := ix.scratch.bytes()
	ix.scratch.clear()
	ix.pat.prepare(raw, ix.maxErrors)
	ix.state = statePreparing
}

// Search scans every live record in slot order, admitting candidates
// past the signature filter, running the approximate matcher over
// each admitted record, and offering accepted matches to the
// collector. It returns the final result count. Calling Search before
// PreparePattern, or with an empty pattern, returns 0.
func (ix *Index) Search() int {
	ix.coll.reset()

	if ix.state != statePreparing || !ix.pat.ready {
		ix.state = stateIdle
		return 0
	}
	ix.state = stateScanning

	for i := 0; i < ix.table.high; i++ {
		s := &ix.table.slots[i]
		if !s.live {
			continue
		}
		if !admits(s.sig, ix.pat.sig) {
			continue
		}

		text := ix.arena.slice(s.offset, s.length)
		m := ix.pat.search(text)
		if !m.found {
			continue
		}

		score := computeScore(m.errors, m.start)
		if score < ix.threshold {
			continue
		}

		ix.coll.offer(candidate{id: s.id, score: score, start: m.start, end: m.end})
	}

	ix.state = stateDraining
	n := ix.coll.n
	ix.state = stateIdle
	return n
}

// ResultID returns the identifier of the i-th result from the last
// Search, or 0 if i is past the result count.
func (ix *Index) ResultID(i int) uint32 {
	if i < 0 || i >= ix.coll.n {
		return 0
	}
	return ix.coll.items[i].id
}

// ResultScore returns the wire-encoded score of the i-th result.
func (ix *Index) ResultScore(i int) int {
	if i < 0 || i >= ix.coll.n {
		return 0
	}
	return ix.coll.items[i].score
}

// ResultStart returns the start offset of the i-th result's match.
func (ix *Index) ResultStart(i int) int {
	if i < 0 || i >= ix.coll.n {
		return 0
	}
	return ix.coll.items[i].start
}

// ResultEnd returns the end offset of the i-th result's match.
func (ix *Index) ResultEnd(i int) int {
	if i < 0 || i >= ix.coll.n {
		return 0
	}
	return ix.coll.items[i].end
}

// SetThreshold sets the minimum score gate, clamped to [0,1000].
func (ix *Index) SetThreshold(t uint32) {
	if t > 1000 {
		t = 1000
	}
	ix.threshold = int(t)
}

// SetMaxErrors sets the configured edit-distance budget, clamped to
// [0,MaxErrorsCap]. The effective budget applied to any one query is
// further capped by that query's pattern length (see errorStaircase).
func (ix *Index) SetMaxErrors(k uint32) {
	if k > MaxErrorsCap {
		k = MaxErrorsCap
	}
	ix.maxErrors = int(k)
}

// SetMaxResults sets the collector's capacity, clamped to
// [1,MaxResults].
func (ix *Index) SetMaxResults(r uint32) {
	ix.coll.setCapacity(int(r))
}

// RecordCount returns the number of currently live records.
func (ix *Index) RecordCount() int {
	return ix.table.count()
}

// StringPoolUsed returns the number of arena bytes currently
// allocated, live or leaked.
func (ix *Index) StringPoolUsed() int {
	return ix.arena.stringPoolUsed()
}

// AvailableMemory returns the number of arena bytes left before the
// next allocation would fail.
func (ix *Index) AvailableMemory() int {
	return ix.arena.availableMemory()
}

// Add stages text through the scratch buffer (GetWriteBuffer and
// CommitWrite) and installs it under id via AddRecord, which folds it,
// in one call, the way a host that already has Go strings in hand
// normally wants to. It returns false when GetWriteBuffer refuses the
// length or AddRecord fails.
func (ix *Index) Add(id uint32, text string) bool {
	b := []byte(text)
	buf := ix.GetWriteBuffer(len(b))
	if buf == nil {
		return false
	}
	copy(buf, b)
	ix.CommitWrite(len(b))
	return ix.AddRecord(id)
}

// Remove is an alias for RemoveRecord, for symmetry with Add.
func (ix *Index) Remove(id uint32) bool {
	return ix.RemoveRecord(id)
}

// Query stages q through the scratch buffer, prepares it as a
// pattern, runs Search, and returns the ranked results as a fresh
// slice (one allocation, never aliasing the collector's internal
// buffer, so a caller may safely hold it across the next Query call).
func (ix *Index) Query(q string) []Result {
	b := []byte(q)
	buf := ix.GetWriteBuffer(len(b))
	if buf == nil {
		ix.scratch.clear()
		return nil
	}
	copy(buf, b)
	ix.CommitWrite(len(b))
	ix.PreparePattern()

	n := ix.Search()
	if n == 0 {
		return nil
	}

	out := make([]Result, n)
	for i := 0; i < n; i++ {
		out[i] = resultFromCandidate(ix.coll.items[i])
	}
	return out
}
