// Package roundrobin multiplexes two or more move selectors ("phases") behind
// the single-selector interface the outer search loop already speaks.
//
// The registered selectors are taken one by one: the first is initialized and
// used until it returns no move, then the next is initialized and used, and
// so on. After the last selector runs dry the rotation wraps back to the
// first. On every such transition the scheduler checkpoints the best
// solution, so progress made during a phase that is about to be abandoned is
// never lost even if later phases regress the working state.
//
// The scheduler itself implements search.Selector, so the outer solver is
// unaware it is talking to a multiplexer.
//
// Concurrency: SelectMove may be called from many goroutines against the
// same shared solution. A single mutex serializes the transition decision —
// the active-index read-modify-write, the "already changed" guard, the best
// checkpoint and the new phase's initialization — while the delegated move
// selection runs with no lock held, so activated phases generate moves in
// parallel.
//
// Liveness: a full rotation in which no phase produces a move is not an
// error — by default SelectMove keeps retrying and never returns, matching
// the callers-ensure-progress precondition. Opt into WithExhaustionLimit to
// surface ErrExhausted instead.
package roundrobin
