package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Sentinel errors for task execution.
var (
	// ErrNilTask indicates Run or Go was given a nil task.
	ErrNilTask = errors.New("runner: task is nil")

	// ErrTaskPanicked wraps a panic recovered from a task.
	ErrTaskPanicked = errors.New("runner: task panicked")
)

// Task is a fallible load operation. Load should honor ctx cancellation.
type Task interface {
	Load(ctx context.Context) error
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func(ctx context.Context) error

// Load implements Task.
func (f TaskFunc) Load(ctx context.Context) error { return f(ctx) }

// Result is the structured outcome of one task run.
type Result struct {
	// Err is nil on success; a recovered panic arrives wrapped in
	// ErrTaskPanicked.
	Err error

	// Elapsed is the wall time the task ran for.
	Elapsed time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used to report task failures.
// The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithCallback registers the completion notification. It is invoked exactly
// once per run, after the task has finished, whether it succeeded or failed.
func WithCallback(cb func(Result)) Option {
	return func(r *Runner) { r.callback = cb }
}

// Runner runs tasks under the completion-notification guarantee.
// A Runner is reusable and safe for concurrent use.
type Runner struct {
	log      zerolog.Logger
	callback func(Result)
}

// New returns a Runner with the given options applied.
func New(opts ...Option) *Runner {
	r := &Runner{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes task synchronously and returns its Result. The failure, if
// any, is logged and surfaced in the Result; the callback fires exactly
// once on every exit path, including a panicking task.
func (r *Runner) Run(ctx context.Context, task Task) Result {
	var res Result
	start := time.Now()

	if task == nil {
		res.Err = ErrNilTask
	} else {
		res.Err = r.invoke(ctx, task)
	}
	res.Elapsed = time.Since(start)

	if res.Err != nil {
		r.log.Error().Err(res.Err).Dur("elapsed", res.Elapsed).Msg("task failed")
	}
	if r.callback != nil {
		r.callback(res)
	}

	return res
}

// Go executes task in its own goroutine and returns a one-shot channel that
// receives the Result when the task completes. The channel is buffered, so
// the result is delivered even if nobody is receiving yet.
func (r *Runner) Go(ctx context.Context, task Task) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- r.Run(ctx, task)
	}()

	return ch
}

// invoke runs the task with panic containment so the notification path
// above always executes.
func (r *Runner) invoke(ctx context.Context, task Task) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, p)
		}
	}()

	return task.Load(ctx)
}
