// Package index is an in-memory fuzzy substring search engine.
//
// It holds a bounded corpus of short text records in a fixed-capacity
// arena and answers approximate substring queries: the top-K records
// whose text contains a span within a bounded edit distance of a query
// pattern, ranked by score. Every byte of working memory is
// pre-allocated at construction time; the only resource consumed while
// the index is in use is the text arena, which grows by bump allocation
// and is reclaimed only by Compact or Reset.
//
// The engine is single-threaded and value-typed at its boundary so it
// can be embedded behind a narrow host interface (see Index's exported
// methods, one per external entry point). Concurrent use of the same
// Index from multiple goroutines without external synchronization is
// undefined behavior.
package index
