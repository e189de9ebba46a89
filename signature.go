package index

// sig computes the 64-bit signature of a folded byte sequence: the
// union, over every byte b, of the bin 1<<(b&63). It is a lossy 64-bin
// set approximation over the byte alphabet, used as an O(1) admission
// test before running the matcher.
func sig(folded []byte) uint64 {
	var s uint64
	for _, b := range folded {
		s |= 1 << (b & 63)
	}
	return s
}

// admits reports whether a record's signature can possibly contain a
// match for a (possibly relaxed) pattern signature. The rule is
// necessary but not sufficient: every pattern byte's bin must be
// present in the record's signature.
func admits(recordSig, patternSig uint64) bool {
	return recordSig&patternSig == patternSig
}

// relaxSignature clears up to k bits from patternSig, one per distinct
// byte bin, in order of that bin's first occurrence in the folded
// pattern. This keeps admission a necessary condition for matches
// within k edits under the single-bin-per-byte approximation: a
// substitution can land in a bin the strict signature would otherwise
// have required.
func relaxSignature(folded []byte, full uint64, k int) uint64 {
	if k <= 0 {
		return full
	}
	relaxed := full
	var seen [64]bool
	cleared := 0
	for _, b := range folded {
		if cleared >= k {
			break
		}
		bin := b & 63
		if seen[bin] {
			continue
		}
		seen[bin] = true
		relaxed &^= 1 << bin
		cleared++
	}
	return relaxed
}
