// Package search defines the central State, Move, Comparator and Selector
// contracts, and provides the thread-safe Solution holder used by every
// search loop in rondo.
//
// All Solution APIs use a single sync.RWMutex internally, so you can safely
// share one Solution across worker goroutines. The lock covers the
// current-state reference, the best snapshot and the iteration counter; it
// does NOT cover mutations inside your State — applying moves concurrently
// is the outer solver's policy, not this package's.
//
// This package declares State, Move, Comparator, Selector, Context,
// sentinel errors, and the NewSolution constructor.
//
// Errors:
//
//	ErrNilState      - state pointer is nil.
//	ErrNilComparator - no comparator was provided.
//	ErrNilSelector   - selector pointer is nil.
//	ErrNilContext    - context pointer is nil.
package search
