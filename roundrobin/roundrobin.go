// Package roundrobin - the phase scheduler itself.
//
// Design:
//   - Lazy activation: the active index starts at the noPhase sentinel and
//     phase 0 is initialized on the first SelectMove, not at bind time.
//   - Strict rotation: the indices visited over time are 0,1,…,N-1,0,1,…;
//     the "already changed" guard makes a concurrent duplicate transition a
//     no-op that re-reads the now-current index instead of double-advancing.
//   - Checkpoint on transition only: the best-solution save is attempted
//     exactly once per transition and never on a call that returns a move.
//   - Strict sentinels only (see types.go); selector-internal errors from
//     Init or SelectMove propagate to the caller unchanged.
//
// Contracts:
//   - Register all phases, then Init (bind) once, then SelectMove freely.
//   - Exactly one phase is active at any instant; each activation runs the
//     phase's Init exactly once before its first move request.
//
// Complexity: the common path (active phase yields a move) costs one mutex
// acquisition to read the index plus the delegated selection; a transition
// adds one checkpoint attempt and one phase Init under the same mutex.
package roundrobin

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rondo/search"
)

// noPhase is the sentinel index meaning "no phase activated yet".
const noPhase = -1

// Scheduler rotates through registered selectors, delegating every move
// request to exactly one active phase. It implements search.Selector.
type Scheduler struct {
	// mu guards idx, the transition decision, the checkpoint and phase
	// initialization. Delegated SelectMove calls run outside this lock.
	mu      sync.Mutex
	ctx     search.Context
	phases  []search.Selector
	idx     int
	limit   int
	started bool
	log     zerolog.Logger
}

// New returns an empty Scheduler; register at least one selector (two or
// more for a meaningful rotation) before binding it to a context.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{idx: noPhase, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register appends sel to the rotation. Registration order is selection
// order. Valid only before the search starts: once a phase has been
// activated, Register returns ErrSearchStarted.
func (s *Scheduler) Register(sel search.Selector) error {
	if sel == nil {
		return search.ErrNilSelector
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrSearchStarted
	}
	s.phases = append(s.phases, sel)

	return nil
}

// Len returns the number of registered selectors.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.phases)
}

// Init binds the solver context and resets readiness for the lazy
// activation of phase 0. It implements search.Selector, so a Scheduler can
// be handed to the outer solver like any single-strategy selector.
//
// Errors: search.ErrNilContext for a nil context; ErrNoSelections when
// nothing was registered.
func (s *Scheduler) Init(ctx search.Context) error {
	if ctx == nil {
		return search.ErrNilContext
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.phases) == 0 {
		return ErrNoSelections
	}
	s.ctx = ctx
	s.idx = noPhase
	s.started = false

	return nil
}

// SelectMove returns the next move from the rotation.
//
// The active phase is asked first; when it yields a move that move is
// returned immediately — no checkpoint, no index change. When it yields no
// move the scheduler transitions: checkpoint the best solution, initialize
// the next phase, make it active, and retry against it. The retry continues
// until some phase yields a move; with no exhaustion limit set, a rotation
// in which every phase is dry never returns (see package docs).
//
// A selector-internal error — from Init during a transition or from the
// delegated SelectMove — is returned unchanged; the scheduler neither
// retries nor substitutes another phase.
func (s *Scheduler) SelectMove(sol *search.Solution) (search.Move, error) {
	fruitless := 0
	for {
		idx, sel, err := s.active()
		if err != nil {
			return nil, err
		}

		// Delegation runs outside the scheduler lock so that concurrent
		// callers can generate moves in parallel once a phase is active.
		mv, err := sel.SelectMove(sol)
		if err != nil {
			return nil, err
		}
		if mv != nil {
			return mv, nil
		}

		fruitless++
		if s.limit > 0 && fruitless >= s.limit {
			return nil, ErrExhausted
		}
		if err = s.transition(idx); err != nil {
			return nil, err
		}
	}
}

// active returns the current index and selector, lazily activating phase 0
// on first use. The lazy path initializes the phase while holding the lock,
// so concurrent first callers cannot double-initialize.
func (s *Scheduler) active() (int, search.Selector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx == nil {
		return noPhase, nil, ErrNotBound
	}
	if s.idx == noPhase {
		if err := s.ctx.InitSelector(s.phases[0]); err != nil {
			return noPhase, nil, err
		}
		s.idx = 0
		s.started = true
		s.log.Debug().Int("phase", 1).Int("of", len(s.phases)).Msg("phase activated")
	}

	return s.idx, s.phases[s.idx], nil
}

// transition advances the rotation away from the exhausted phase at index
// from. If the active index no longer equals from, another caller already
// performed this exact transition and this call is a no-op — the caller
// simply retries against the now-current phase.
//
// Otherwise, while still holding the lock: attempt the best checkpoint
// (save when no best exists yet or the current state strictly improves on
// it), initialize the next phase, and only then make it active. A failed
// Init leaves the index unchanged and propagates the error.
func (s *Scheduler) transition(from int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx != from {
		return nil // already changed
	}
	next := (from + 1) % len(s.phases)

	sol := s.ctx.Solution()
	if !sol.HasBest() || sol.IsBetterThanBest() {
		sol.SaveBest()
	}

	if err := s.ctx.InitSelector(s.phases[next]); err != nil {
		return err
	}
	s.idx = next
	s.log.Debug().Int("phase", next+1).Int("of", len(s.phases)).Msg("phase changed")

	return nil
}
