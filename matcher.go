package index

// match is the best approximate occurrence of a pattern found in one
// record's text.
type match struct {
	errors int
	start  int
	end    int
	found  bool
}

// search runs the Wu-Manber bit-parallel approximate matcher for p
// over text, returning the occurrence with the smallest edit distance
// (ties broken by earliest discovery, per the scan order). text must
// already be folded, as must p.bytes (prepare folds the pattern;
// AddRecord folds record text before storing it).
//
// The algorithm maintains k+1 state words R[0..k], one per permitted
// edit count. R[j] is a bitmap over pattern positions: bit i set
// means "the pattern prefix ending at position i is alive, within j
// edits, ending at the current text position". A new potential match
// start is injected at every text position (the |1 term) because this
// is substring search, not whole-string matching.
func (p *pattern) search(text []byte) match {
	m := p.length
	k := p.maxErrors
	if m == 0 {
		return match{}
	}

	var r [4]uint64 // k <= MaxErrorsCap == 3, so k+1 <= 4
	// r[j] starts at 0: no prefix matched yet, at any length.

	best := match{errors: k + 1} // sentinel: worse than any real match

	for i, c := range text {
		mask := p.masks[c]

		var next [4]uint64
		next[0] = ((r[0] << 1) | 1) & mask
		for j := 1; j <= k; j++ {
			sub := (r[j] << 1) | 1
			sub &= mask
			ins := next[j-1] << 1
			del := r[j-1] << 1
			same := r[j-1]
			next[j] = sub | ins | del | same
		}

		for j := 0; j <= k; j++ {
			if next[j]&p.matchBit != 0 && j < best.errors {
				best.errors = j
				best.end = i + 1
				best.found = true
				break
			}
		}

		r = next
	}

	if !best.found {
		return match{}
	}
	best.start = best.end - m - best.errors
	if best.start < 0 {
		best.start = 0
	}
	return best
}

// computeScore turns a match's error count and start position into
// the integer score on the [0,1000] wire encoding. base rewards exact
// matches over fuzzy ones; bonus rewards matches near the record
// start.
func computeScore(errors, start int) int {
	base := 1000 - 250*errors
	bonus := 50 - start
	if bonus < 0 {
		bonus = 0
	}
	if bonus > 50 {
		bonus = 50
	}
	score := base + bonus
	if score > 1000 {
		score = 1000
	}
	if score < 0 {
		score = 0
	}
	return score
}
