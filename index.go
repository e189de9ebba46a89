package index

// queryState tracks the per-query state machine spec'd for the
// collector: idle -> preparing -> scanning -> draining -> idle.
// PreparePattern drives idle -> preparing; Search drives the rest and
// always returns to idle, whether or not a pattern was ready.
type queryState int

const (
	stateIdle queryState = iota
	statePreparing
	stateScanning
	stateDraining
)

// Options configures a new Index. A zero Threshold or MaxResults falls
// back to DefaultOptions' value; MaxErrors is used as given, so a zero
// MaxErrors means exact matching only.
type Options struct {
	Threshold  float64 // minimum score, 0..1, default 0.25
	MaxErrors  uint32  // edit-distance budget, 0..3, default 2
	MaxResults uint32  // collector capacity, 1..100, default 50
}

// DefaultOptions returns the engine's default configuration.
func DefaultOptions() Options {
	return Options{
		Threshold:  float64(defaultThreshold) / 1000,
		MaxErrors:  defaultMaxErrors,
		MaxResults: defaultMaxResults,
	}
}

// Index is a single fuzzy-search engine instance: the text arena, the
// record table, a scratch write buffer, a prepared pattern, and a
// result collector, all pre-allocated at construction. The original
// engine's external interface assumes one process-wide instance with
// no handle argument; this type instead takes a handle-parameterized
// route so a host may hold more than one.
type Index struct {
	arena *arena
	table recordTable

	scratch scratchBuf
	pat     pattern
	coll    collector

	threshold int // wire-encoded, 0..1000
	maxErrors int // configured budget before the pattern-length staircase

	state queryState
}

// New constructs an Index with every buffer pre-allocated and
// configured per opts.
func New(opts Options) *Index {
	ix := &Index{arena: newArena()}
	ix.applyDefaults(opts)
	return ix
}

func (ix *Index) applyDefaults(opts Options) {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = float64(defaultThreshold) / 1000
	}
	maxResults := opts.MaxResults
	if maxResults == 0 {
		maxResults = defaultMaxResults
	}

	ix.SetThreshold(uint32(threshold * 1000))
	ix.SetMaxErrors(opts.MaxErrors)
	ix.SetMaxResults(maxResults)
}

// resultFromCandidate converts a collected candidate into the public
// Result value.
func resultFromCandidate(c candidate) Result {
	return Result{ID: c.id, Score: c.score, Start: c.start, End: c.end}
}
