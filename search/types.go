package search

import "errors"

// Sentinel errors for core search operations.
var (
	// ErrNilState indicates a nil State was passed where a value is required.
	ErrNilState = errors.New("search: state is nil")

	// ErrNilComparator indicates a Solution was constructed without a comparator.
	ErrNilComparator = errors.New("search: comparator is nil")

	// ErrNilSelector indicates a nil Selector was passed where a value is required.
	ErrNilSelector = errors.New("search: selector is nil")

	// ErrNilContext indicates a nil Context was passed where a value is required.
	ErrNilContext = errors.New("search: context is nil")
)

// State is the opaque working state of a search run.
//
// Clone returns a deep copy that is independent of the receiver; it is used
// to snapshot the best solution found so far, so a Clone must not share
// mutable structure with the original.
type State interface {
	Clone() State
}

// Move is a candidate change to the current state proposed by a Selector.
// Apply commits the move to st; it must either fully apply or leave st
// untouched and return an error.
type Move interface {
	Apply(st State) error
}

// Comparator decides whether candidate is strictly better than incumbent.
type Comparator interface {
	Better(candidate, incumbent State) bool
}

// ComparatorFunc adapts a plain function to the Comparator interface.
type ComparatorFunc func(candidate, incumbent State) bool

// Better implements Comparator.
func (f ComparatorFunc) Better(candidate, incumbent State) bool {
	return f(candidate, incumbent)
}

// Selector is one move-generation strategy ("phase").
//
// Init is invoked exactly once per activation, always before the first
// SelectMove of that activation, and may be invoked again on later
// activations of the same Selector.
//
// SelectMove returns the next candidate move for sol. A (nil, nil) return
// means the selector is exhausted from the current state; a non-nil error
// is a selector-internal failure and is propagated to the caller unchanged.
type Selector interface {
	Init(ctx Context) error
	SelectMove(sol *Solution) (Move, error)
}

// Context is the solver-side capability set a Selector is initialized
// against. Concrete solver contexts (see package solver) typically expose
// more — named properties, a logger — which selectors may discover by type
// assertion.
type Context interface {
	// Solution returns the shared solution this search run works on.
	Solution() *Solution

	// InitSelector initializes sel against this context, delegating to
	// sel.Init exactly once per call.
	InitSelector(sel Selector) error
}
