package search

import "sync"

// Solution holds the current working state of a search run together with a
// comparator-driven snapshot of the best state seen so far.
//
// Contracts:
//   - Current always returns the same shared State instance; moves mutate it
//     in place. Snapshots are taken via State.Clone and never mutated after.
//   - HasBest / IsBetterThanBest / SaveBest implement the checkpoint
//     protocol: save the current state as best when no best exists yet, or
//     when the comparator says the current state strictly improves on it.
//
// Concurrency: all methods are safe for concurrent use; the internal
// RWMutex guards the best snapshot and the iteration counter.
type Solution struct {
	mu        sync.RWMutex
	current   State
	best      State
	cmp       Comparator
	iteration int64
}

// NewSolution wraps initial as the current state of a fresh run.
// The comparator defines the "strictly better" ordering used by SaveBest
// checkpoints; both arguments are required.
func NewSolution(initial State, cmp Comparator) (*Solution, error) {
	if initial == nil {
		return nil, ErrNilState
	}
	if cmp == nil {
		return nil, ErrNilComparator
	}

	return &Solution{current: initial, cmp: cmp}, nil
}

// Current returns the shared working state.
func (s *Solution) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// HasBest reports whether a best snapshot has been recorded yet.
func (s *Solution) HasBest() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.best != nil
}

// IsBetterThanBest reports whether the current state strictly improves on
// the recorded best. When no best exists yet it returns true, so that
// `!HasBest() || IsBetterThanBest()` and a bare IsBetterThanBest agree.
func (s *Solution) IsBetterThanBest() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.best == nil {
		return true
	}

	return s.cmp.Better(s.current, s.best)
}

// SaveBest snapshots the current state as the new best via State.Clone.
// It saves unconditionally; callers gate it with HasBest/IsBetterThanBest.
func (s *Solution) SaveBest() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.best = s.current.Clone()
}

// BestState returns the best snapshot and whether one exists.
// The returned State must be treated as read-only.
func (s *Solution) BestState() (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.best, s.best != nil
}

// Iteration returns the number of moves applied so far.
func (s *Solution) Iteration() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.iteration
}

// IncIteration bumps the iteration counter and returns the new value.
func (s *Solution) IncIteration() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.iteration++

	return s.iteration
}
