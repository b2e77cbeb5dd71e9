package solver

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rondo/search"
)

// Solve drives sel against c's solution until the selector is exhausted,
// the iteration budget is spent, or ctx is cancelled.
//
// Contracts:
//   - sel is initialized against c exactly once, before the first move
//     request (for a roundrobin.Scheduler this is the bind step).
//   - Each applied move bumps the solution's iteration counter, and every
//     improvement is checkpointed; one final checkpoint attempt runs on
//     every exit path so late progress is never dropped.
//
// Errors: ErrNilContext / search.ErrNilSelector on setup misuse; ErrNoMoves
// when the selector runs dry before the budget is spent; ctx.Err() on
// cancellation; selector and move errors propagate unchanged. A spent
// budget is a normal exit: nil error.
func Solve(ctx context.Context, c *Context, sel search.Selector, opts Options) (Result, error) {
	if c == nil {
		return Result{}, ErrNilContext
	}
	if sel == nil {
		return Result{}, search.ErrNilSelector
	}
	if err := c.InitSelector(sel); err != nil {
		return Result{}, err
	}

	var done int64
	err := run(ctx, c, sel, opts, &done)
	res := finish(c, &done)

	return res, err
}

// SolveParallel runs the Solve loop body on workers goroutines sharing one
// selector and one solution. The iteration budget is global across workers.
// The first worker error cancels the rest; zero workers means one.
func SolveParallel(ctx context.Context, c *Context, sel search.Selector, workers int, opts Options) (Result, error) {
	if c == nil {
		return Result{}, ErrNilContext
	}
	if sel == nil {
		return Result{}, search.ErrNilSelector
	}
	if workers < 0 {
		return Result{}, ErrBadWorkerCount
	}
	if workers == 0 {
		workers = 1
	}
	if err := c.InitSelector(sel); err != nil {
		return Result{}, err
	}

	var done int64
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			return run(gctx, c, sel, opts, &done)
		})
	}
	err := g.Wait()
	res := finish(c, &done)

	return res, err
}

// run is the shared loop body: one worker's iterate-apply cycle. The done
// counter is shared so the iteration budget holds globally.
func run(ctx context.Context, c *Context, sel search.Selector, opts Options, done *int64) error {
	budget := opts.MaxIterations
	sol := c.Solution()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if budget > 0 && atomic.LoadInt64(done) >= budget {
			return nil
		}

		mv, err := sel.SelectMove(sol)
		if err != nil {
			return err
		}
		if mv == nil {
			// The whole rotation is dry; distinguishable from a spent budget.
			return ErrNoMoves
		}

		// Reserve the iteration slot before applying so the budget holds
		// exactly even with many workers; an over-budget move is dropped.
		if budget > 0 && atomic.AddInt64(done, 1) > budget {
			atomic.AddInt64(done, -1)
			return nil
		}
		if budget <= 0 {
			atomic.AddInt64(done, 1)
		}
		if err = mv.Apply(sol.Current()); err != nil {
			return err
		}
		sol.IncIteration()

		if opts.SaveBestEachImprovement && (!sol.HasBest() || sol.IsBetterThanBest()) {
			sol.SaveBest()
			c.log.Debug().Int64("iteration", sol.Iteration()).Msg("best updated")
		}
	}
}

// finish performs the exit checkpoint and assembles the Result.
func finish(c *Context, done *int64) Result {
	sol := c.Solution()
	if !sol.HasBest() || sol.IsBetterThanBest() {
		sol.SaveBest()
	}

	return Result{
		Iterations: atomic.LoadInt64(done),
		HasBest:    sol.HasBest(),
	}
}
