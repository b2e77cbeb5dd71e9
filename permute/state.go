package permute

import "github.com/katalvlaran/rondo/search"

// State is a permutation of n items scored by a CostFunc.
// It implements search.State; Clone copies the permutation and shares the
// (stateless) cost function.
//
// Concurrency: a State is not internally synchronized. The search.Solution
// lock covers the reference, not the contents; coordinate concurrent Apply
// calls yourself (see package solver docs).
type State struct {
	perm []int
	cost CostFunc
}

// NewState copies perm into a fresh State scored by cost.
func NewState(perm []int, cost CostFunc) (*State, error) {
	if len(perm) == 0 {
		return nil, ErrEmptyPermutation
	}
	if cost == nil {
		return nil, ErrNilCost
	}
	own := make([]int, len(perm))
	copy(own, perm)

	return &State{perm: own, cost: cost}, nil
}

// Len returns the number of items.
func (s *State) Len() int { return len(s.perm) }

// Perm returns a copy of the current permutation.
func (s *State) Perm() []int {
	out := make([]int, len(s.perm))
	copy(out, s.perm)

	return out
}

// Score evaluates the cost function on the current permutation.
func (s *State) Score() float64 { return s.cost(s.perm) }

// Clone implements search.State.
func (s *State) Clone() search.State {
	out := make([]int, len(s.perm))
	copy(out, s.perm)

	return &State{perm: out, cost: s.cost}
}

// swap exchanges positions i and j with bounds checking.
func (s *State) swap(i, j int) error {
	if i < 0 || j < 0 || i >= len(s.perm) || j >= len(s.perm) {
		return ErrIndexOutOfRange
	}
	s.perm[i], s.perm[j] = s.perm[j], s.perm[i]

	return nil
}

// scoreSwapped evaluates the cost of the permutation with positions i and j
// exchanged, restoring the state before returning. O(1) extra space; the
// cost callback dominates.
func (s *State) scoreSwapped(i, j int) float64 {
	s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	v := s.cost(s.perm)
	s.perm[i], s.perm[j] = s.perm[j], s.perm[i]

	return v
}

// MinimizeCost orders permutation states by ascending cost: a candidate is
// better when its score is strictly lower. Non-permutation states are never
// "better", so a mixed comparison degrades safely to false.
var MinimizeCost = search.ComparatorFunc(func(candidate, incumbent search.State) bool {
	c, ok := candidate.(*State)
	if !ok {
		return false
	}
	i, ok := incumbent.(*State)
	if !ok {
		return false
	}

	return c.Score() < i.Score()
})

// SwapMove exchanges the items at positions I and J.
type SwapMove struct {
	I, J int
}

// Apply implements search.Move.
func (m SwapMove) Apply(st search.State) error {
	s, ok := st.(*State)
	if !ok {
		return ErrStateMismatch
	}

	return s.swap(m.I, m.J)
}

// KickMove applies a short sequence of transpositions in order — a
// diversification jolt that a single 2-exchange cannot undo.
type KickMove struct {
	Swaps [][2]int
}

// Apply implements search.Move. All pairs are validated up front, so an
// out-of-range pair leaves the state untouched.
func (m KickMove) Apply(st search.State) error {
	s, ok := st.(*State)
	if !ok {
		return ErrStateMismatch
	}
	n := len(s.perm)
	for _, sw := range m.Swaps {
		if sw[0] < 0 || sw[1] < 0 || sw[0] >= n || sw[1] >= n {
			return ErrIndexOutOfRange
		}
	}
	for _, sw := range m.Swaps {
		s.perm[sw[0]], s.perm[sw[1]] = s.perm[sw[1]], s.perm[sw[0]]
	}

	return nil
}
