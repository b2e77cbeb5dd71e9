// Package runner executes a fallible loading task inside a small, scoped
// harness: run the task, log a failure, and guarantee that the completion
// notification fires exactly once on every exit path — success, error, or
// panic.
//
// The failure is never only a log line: every run produces a structured
// Result carrying the error (a recovered panic is wrapped in
// ErrTaskPanicked) and the elapsed wall time, delivered synchronously from
// Run or through the one-shot channel returned by Go.
package runner
