package index

// candidate is one accepted match, ready for ranking.
type candidate struct {
	id    uint32
	score int
	start int
	end   int
}

// better reports whether a ranks strictly ahead of b: higher score
// first, then earlier start, then smaller id.
func (a candidate) better(b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.start != b.start {
		return a.start < b.start
	}
	return a.id < b.id
}

// collector is a fixed-capacity, always-sorted top-K buffer. It is
// kept in descending rank order by insertion, matching the original
// engine's insert_result-style ordered insert, rather than via a
// textbook heap: with a capacity of at most MaxResults (100), a
// shift-on-insert is simpler and just as cheap, and avoids a
// container/heap dependency neither reference implementation uses.
type collector struct {
	items [MaxResults]candidate
	n     int
	cap   int // configured max_results, 1..MaxResults
}

func (c *collector) setCapacity(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxResults {
		n = MaxResults
	}
	c.cap = n
	if c.n > c.cap {
		c.n = c.cap
	}
}

// reset empties the collector without changing its configured
// capacity.
func (c *collector) reset() {
	c.n = 0
}

// offer inserts cand if it ranks within the top c.cap candidates seen
// so far. Full buffers evict their current worst entry when cand beats
// it; an offer that doesn't beat a full buffer's worst is dropped.
func (c *collector) offer(cand candidate) {
	if c.n >= c.cap {
		worst := c.items[c.n-1]
		if !cand.better(worst) {
			return
		}
		c.n--
	}

	pos := c.n
	for pos > 0 && cand.better(c.items[pos-1]) {
		c.items[pos] = c.items[pos-1]
		pos--
	}
	c.items[pos] = cand
	c.n++
}

// results returns the collected candidates in final descending-score
// order, already truncated to the configured capacity.
func (c *collector) results() []candidate {
	return c.items[:c.n]
}
