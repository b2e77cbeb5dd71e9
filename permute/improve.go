// Package permute - first-improvement 2-exchange descent.
//
// Improve scans candidate position pairs (i, j), i < j, in deterministic
// order and proposes the first swap whose cost drop beats the epsilon
// tolerance. The scan restarts from the beginning after every accepted
// move (first-improvement policy), so each SelectMove call is independent
// of the previous one and the selector needs no cursor state.
//
// Contracts:
//   - The solution's current state must be a *permute.State.
//   - Acceptance rule: score(swapped) < score(current) − eps; eps < 0 is
//     clamped to 0 so the rule stays well-posed.
//
// Complexity: one call is O(n²) candidate pairs with one cost evaluation
// each; with a cost callback of O(n) that is O(n³) worst case per call.
// Exhaustion (nil, nil) means the state is a local optimum under the
// 2-exchange neighborhood.
package permute

import (
	"github.com/katalvlaran/rondo/search"
)

// DefaultEps is the improvement tolerance used when none is configured.
const DefaultEps = 1e-9

// Improve is the first-improvement 2-exchange selector.
// The zero value is usable; Init picks up "improve.eps" from the context's
// properties when present.
type Improve struct {
	// Eps is the strict-improvement tolerance; see the file header.
	Eps float64

	eps float64
}

// Init implements search.Selector. It resolves the effective epsilon:
// the "improve.eps" property wins, then the Eps field, then DefaultEps.
func (s *Improve) Init(ctx search.Context) error {
	if ctx == nil {
		return search.ErrNilContext
	}
	eps := s.Eps
	if eps == 0 {
		eps = DefaultEps
	}
	if pc, ok := ctx.(propertyCarrier); ok {
		eps = pc.Properties().GetFloat("improve.eps", eps)
	}
	if eps < 0 {
		eps = 0
	}
	s.eps = eps

	return nil
}

// SelectMove implements search.Selector: the first improving SwapMove in
// scan order, or (nil, nil) at a local optimum.
func (s *Improve) SelectMove(sol *search.Solution) (search.Move, error) {
	if sol == nil {
		return nil, search.ErrNilState
	}
	st, ok := sol.Current().(*State)
	if !ok {
		return nil, ErrStateMismatch
	}

	n := st.Len()
	base := st.Score()

	var i, j int
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			if st.scoreSwapped(i, j) < base-s.eps {
				return SwapMove{I: i, J: j}, nil
			}
		}
	}

	return nil, nil // local optimum
}
