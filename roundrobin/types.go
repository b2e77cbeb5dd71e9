package roundrobin

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for scheduler setup and selection.
var (
	// ErrNoSelections indicates the scheduler was bound or used with an
	// empty phase list; at least one selector must be registered first.
	ErrNoSelections = errors.New("roundrobin: no selectors registered")

	// ErrNotBound indicates SelectMove was called before Init bound a
	// solver context.
	ErrNotBound = errors.New("roundrobin: scheduler not bound to a context")

	// ErrSearchStarted indicates Register was called after the first
	// activation; the phase list is immutable once the search begins.
	ErrSearchStarted = errors.New("roundrobin: search already started")

	// ErrExhausted is returned only when WithExhaustionLimit is set and a
	// single SelectMove call observed that many consecutive empty phases.
	ErrExhausted = errors.New("roundrobin: all selectors exhausted")
)

// Option configures a Scheduler before use.
type Option func(*Scheduler)

// WithLogger sets the logger used for phase-change debug lines.
// The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = log }
}

// WithExhaustionLimit bounds the busy-retry in a single SelectMove call:
// after limit consecutive delegations that produced no move, SelectMove
// returns ErrExhausted. Set limit to the number of registered phases to
// detect one full unproductive rotation. Zero (the default) preserves the
// unbounded retry.
func WithExhaustionLimit(limit int) Option {
	return func(s *Scheduler) { s.limit = limit }
}
