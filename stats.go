package index

// Stats bundles the index's introspection entry points for callers
// that want them together rather than one at a time.
type Stats struct {
	RecordCount     int
	StringPoolUsed  int
	AvailableMemory int
}

// Stats returns the index's current counters.
func (ix *Index) Stats() Stats {
	return Stats{
		RecordCount:     ix.RecordCount(),
		StringPoolUsed:  ix.StringPoolUsed(),
		AvailableMemory: ix.AvailableMemory(),
	}
}
