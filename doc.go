// Package lexkey generates lexicographic order keys for sorted collections —
// strings that sort strictly between two neighbors, so a new item can always
// be inserted without renumbering anything else.
//
// 🚀 What is lexkey?
//
//	A small, pure-Go fractional-indexing library built around two ideas:
//		• Alphabet: an immutable, sorted, deduplicated set of key characters
//		  with positional ranks and low/high sentinels
//		• Between: a greedy digit-by-digit construction of the shortest
//		  reachable string that sorts strictly between two boundary keys
//
// ✨ Why choose lexkey?
//
//   - Minimal API – one type, a handful of pure methods, clear naming
//   - Predictable – bounded loops, deterministic output, no hidden state
//   - Pure Go – no cgo, no runtime deps, safe for concurrent readers
//   - Unicode-correct – ranks, trimming and comparisons work on code points
//
// Everything lives in one subpackage:
//
//	between/ — Alphabet construction, validation, and the
//	           Between / After / Before / First / Spread operations
//
// Quick sketch:
//
//	a := between.Default()
//	key, _ := a.Between("A", "B") // "AV" — sorts after "A", before "B"
//
// Dive into between/doc.go for the algorithm outline and error contract.
//
//	go get github.com/lexkey/lexkey/between
package lexkey
