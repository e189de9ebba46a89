package index

// Fixed capacities. These bound every pre-allocated buffer the index
// owns; nothing grows beyond them at runtime.
const (
	// MaxRecords is the size of the fixed record-slot table.
	MaxRecords = 100_000

	// ArenaCap is the capacity, in bytes, of the text arena.
	ArenaCap = 4 * 1024 * 1024

	// MaxTextLen is the longest record text accepted by Add.
	MaxTextLen = 4095

	// MaxPatternLen is the longest query pattern PreparePattern uses;
	// longer patterns are truncated to it. It must not exceed 64: the
	// matcher's position masks are single uint64 words, one bit per
	// pattern position.
	MaxPatternLen = 64

	// MaxResults is the hard cap on the result collector's capacity.
	MaxResults = 100

	// MaxErrorsCap is the hard cap on the configured edit-distance
	// budget, independent of the pattern-length staircase applied at
	// query time.
	MaxErrorsCap = 3
)

// Default configuration values match the original engine's defaults
// (threshold 0.25, max_errors 2, max_results 50).
const (
	defaultThreshold  = 250 // 0.25 on the [0,1000] wire encoding
	defaultMaxErrors  = 2
	defaultMaxResults = 50
)

// scratchCap is the scratch write buffer's capacity: large enough to
// hold either a record's text or a query pattern.
const scratchCap = MaxTextLen
