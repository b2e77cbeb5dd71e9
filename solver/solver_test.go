// Package solver_test exercises Context wiring and the sequential and
// parallel search loops.
package solver_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rondo/config"
	"github.com/katalvlaran/rondo/search"
	"github.com/katalvlaran/rondo/solver"
)

// counterState counts Apply hits through a shared atomic.
type counterState struct {
	hits *int64
}

func (s *counterState) Clone() search.State { return &counterState{hits: s.hits} }

// bumpMove increments the shared counter on Apply.
type bumpMove struct{}

func (bumpMove) Apply(st search.State) error {
	atomic.AddInt64(st.(*counterState).hits, 1)

	return nil
}

// alwaysBetter accepts every checkpoint.
var alwaysBetter = search.ComparatorFunc(func(_, _ search.State) bool { return true })

// feeder yields budget moves in total (across all callers), then exhausts.
type feeder struct {
	mu        sync.Mutex
	budget    int
	initCount int
	selectErr error
}

func (f *feeder) Init(search.Context) error {
	f.mu.Lock()
	f.initCount++
	f.mu.Unlock()

	return nil
}

func (f *feeder) SelectMove(*search.Solution) (search.Move, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.budget == 0 {
		return nil, nil
	}
	f.budget--

	return bumpMove{}, nil
}

// SolveSuite exercises the sequential loop.
type SolveSuite struct {
	suite.Suite

	hits *int64
	ctx  *solver.Context
}

func (s *SolveSuite) SetupTest() {
	s.hits = new(int64)
	sol, err := search.NewSolution(&counterState{hits: s.hits}, alwaysBetter)
	require.NoError(s.T(), err)
	s.ctx, err = solver.NewContext(sol, solver.WithProperties(config.Properties{"k": "v"}))
	require.NoError(s.T(), err)
}

// TestRunsUntilExhaustion verifies the loop drains the selector, reports the
// dry rotation as ErrNoMoves, and keeps a best.
func (s *SolveSuite) TestRunsUntilExhaustion() {
	sel := &feeder{budget: 7}
	res, err := solver.Solve(context.Background(), s.ctx, sel, solver.DefaultOptions())
	require.ErrorIs(s.T(), err, solver.ErrNoMoves)
	require.EqualValues(s.T(), 7, res.Iterations)
	require.EqualValues(s.T(), 7, atomic.LoadInt64(s.hits))
	require.EqualValues(s.T(), 7, s.ctx.Solution().Iteration())
	require.True(s.T(), res.HasBest, "exit checkpoint must leave a best")
	require.Equal(s.T(), 1, sel.initCount, "selector initialized exactly once")
}

// TestIterationBudget verifies MaxIterations stops the loop early with a
// nil error — distinguishable from selector exhaustion.
func (s *SolveSuite) TestIterationBudget() {
	sel := &feeder{budget: 1000}
	res, err := solver.Solve(context.Background(), s.ctx, sel, solver.Options{MaxIterations: 42})
	require.NoError(s.T(), err, "a spent budget is a normal exit, not ErrNoMoves")
	require.EqualValues(s.T(), 42, res.Iterations)
	require.LessOrEqual(s.T(), atomic.LoadInt64(s.hits), int64(42))
}

// TestExhaustionVsBudgetSignals pins the two exit signals apart: the same
// selector ends one run dry (ErrNoMoves) and the other on budget (nil).
func (s *SolveSuite) TestExhaustionVsBudgetSignals() {
	_, err := solver.Solve(context.Background(), s.ctx, &feeder{budget: 3}, solver.Options{MaxIterations: 10})
	require.ErrorIs(s.T(), err, solver.ErrNoMoves, "3 < 10: the rotation dries up first")

	_, err = solver.Solve(context.Background(), s.ctx, &feeder{budget: 10}, solver.Options{MaxIterations: 3})
	require.NoError(s.T(), err, "10 > 3: the budget ends the run first")
}

// TestCancellation verifies ctx cancellation surfaces and progress is kept.
func (s *SolveSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sel := &feeder{budget: 1000}
	res, err := solver.Solve(ctx, s.ctx, sel, solver.DefaultOptions())
	require.ErrorIs(s.T(), err, context.Canceled)
	require.True(s.T(), res.HasBest, "the exit checkpoint runs even on cancellation")
}

// TestSelectorErrorPropagates verifies selector failures surface unchanged.
func (s *SolveSuite) TestSelectorErrorPropagates() {
	boom := errors.New("boom: selector")
	_, err := solver.Solve(context.Background(), s.ctx, &feeder{selectErr: boom}, solver.DefaultOptions())
	require.ErrorIs(s.T(), err, boom)
}

// TestSetupGuards verifies nil-argument sentinels.
func (s *SolveSuite) TestSetupGuards() {
	_, err := solver.Solve(context.Background(), nil, &feeder{}, solver.DefaultOptions())
	require.ErrorIs(s.T(), err, solver.ErrNilContext)

	_, err = solver.Solve(context.Background(), s.ctx, nil, solver.DefaultOptions())
	require.ErrorIs(s.T(), err, search.ErrNilSelector)

	_, err = solver.SolveParallel(context.Background(), s.ctx, &feeder{}, -1, solver.DefaultOptions())
	require.ErrorIs(s.T(), err, solver.ErrBadWorkerCount)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// cloneState tallies SaveBest snapshots through Clone.
type cloneState struct {
	clones *int64
}

func (s *cloneState) Clone() search.State {
	atomic.AddInt64(s.clones, 1)

	return &cloneState{clones: s.clones}
}

// nopMove applies to any state without touching it.
type nopMove struct{}

func (nopMove) Apply(search.State) error { return nil }

// nopFeeder yields budget no-op moves, then exhausts. Single-goroutine use.
type nopFeeder struct {
	budget int
}

func (f *nopFeeder) Init(search.Context) error { return nil }

func (f *nopFeeder) SelectMove(*search.Solution) (search.Move, error) {
	if f.budget == 0 {
		return nil, nil
	}
	f.budget--

	return nopMove{}, nil
}

// TestSolve_SaveBestEachImprovementFlag verifies the per-improvement
// checkpoints are driven by the flag; the exit checkpoint always runs.
func TestSolve_SaveBestEachImprovementFlag(t *testing.T) {
	runWith := func(save bool) int64 {
		var clones int64
		sol, err := search.NewSolution(&cloneState{clones: &clones}, alwaysBetter)
		require.NoError(t, err)
		c, err := solver.NewContext(sol)
		require.NoError(t, err)

		_, err = solver.Solve(context.Background(), c, &nopFeeder{budget: 5},
			solver.Options{SaveBestEachImprovement: save})
		require.ErrorIs(t, err, solver.ErrNoMoves)

		return atomic.LoadInt64(&clones)
	}

	require.EqualValues(t, 6, runWith(true), "5 improvement saves plus the exit checkpoint")
	require.EqualValues(t, 1, runWith(false), "only the exit checkpoint")
}

// TestSolveParallel_GlobalBudget verifies the budget holds exactly across
// workers and the selector is still initialized exactly once.
func TestSolveParallel_GlobalBudget(t *testing.T) {
	hits := new(int64)
	sol, err := search.NewSolution(&counterState{hits: hits}, alwaysBetter)
	require.NoError(t, err)
	c, err := solver.NewContext(sol)
	require.NoError(t, err)

	sel := &feeder{budget: 1 << 20}
	res, err := solver.SolveParallel(context.Background(), c, sel, 4, solver.Options{MaxIterations: 100})
	require.NoError(t, err)
	require.EqualValues(t, 100, res.Iterations)
	require.EqualValues(t, 100, atomic.LoadInt64(hits))
	require.Equal(t, 1, sel.initCount)
	require.True(t, res.HasBest)
}

// TestSolveParallel_FirstErrorCancels verifies a failing worker stops the rest.
func TestSolveParallel_FirstErrorCancels(t *testing.T) {
	hits := new(int64)
	sol, err := search.NewSolution(&counterState{hits: hits}, alwaysBetter)
	require.NoError(t, err)
	c, err := solver.NewContext(sol)
	require.NoError(t, err)

	boom := errors.New("boom: worker")
	start := time.Now()
	_, err = solver.SolveParallel(context.Background(), c, &feeder{selectErr: boom}, 4, solver.DefaultOptions())
	require.ErrorIs(t, err, boom)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestNewContext_Guards(t *testing.T) {
	_, err := solver.NewContext(nil)
	require.ErrorIs(t, err, solver.ErrNilSolution)
}

func TestContext_Accessors(t *testing.T) {
	hits := new(int64)
	sol, err := search.NewSolution(&counterState{hits: hits}, alwaysBetter)
	require.NoError(t, err)

	props := config.Properties{"improve.eps": "0.5"}
	c, err := solver.NewContext(sol, solver.WithProperties(props))
	require.NoError(t, err)

	require.Same(t, sol, c.Solution())
	require.Equal(t, "0.5", c.Properties().GetString("improve.eps", ""))
	require.ErrorIs(t, c.InitSelector(nil), search.ErrNilSelector)
}
