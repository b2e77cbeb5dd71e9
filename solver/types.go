package solver

import "errors"

// Sentinel errors for solver setup and run outcomes.
var (
	// ErrNilSolution indicates a Context was constructed without a solution.
	ErrNilSolution = errors.New("solver: solution is nil")

	// ErrNilContext indicates Solve was called without a context object.
	ErrNilContext = errors.New("solver: solver context is nil")

	// ErrBadWorkerCount indicates SolveParallel was asked for a negative
	// number of workers.
	ErrBadWorkerCount = errors.New("solver: worker count must not be negative")

	// ErrNoMoves indicates the selector ran dry: the whole rotation produced
	// no move. It distinguishes exhaustion from a spent iteration budget,
	// which ends the run with a nil error.
	ErrNoMoves = errors.New("solver: no move available from the selector")
)

// Options configures a Solve run.
//   - MaxIterations: stop after this many applied moves; 0 means unbounded
//     (the run then ends on selector exhaustion or context cancellation).
//   - SaveBestEachImprovement: checkpoint the best solution after every
//     improving move. When false, best tracking is left to the selector's
//     own checkpoints (a roundrobin.Scheduler saves on phase transitions)
//     plus the exit checkpoint every run performs.
type Options struct {
	MaxIterations           int64
	SaveBestEachImprovement bool
}

// DefaultOptions returns the canonical Options: unbounded iterations with
// per-improvement checkpoints.
func DefaultOptions() Options {
	return Options{SaveBestEachImprovement: true}
}

// Result summarizes a finished (or cancelled) run.
type Result struct {
	// Iterations is the number of moves applied by this run.
	Iterations int64

	// HasBest reports whether a best snapshot exists at exit.
	HasBest bool
}
