// Package solver provides the concrete solver context and the outer search
// loops that drive a selector — typically a roundrobin.Scheduler — against
// a shared solution.
//
// Context carries the three things every selector may need at Init time:
// the shared search.Solution, named config.Properties, and a logger.
//
// Solve runs the classic iterate-apply loop: ask the selector for a move,
// apply it, bump the iteration counter, checkpoint improvements. It honors
// context.Context cancellation and an optional iteration budget, and always
// attempts one final checkpoint on the way out so the last phase's progress
// is kept.
//
// SolveParallel fans the same loop body out over several workers sharing
// one selector and one solution. Only the scheduler's transition decision is
// serialized; your State and Move implementations must tolerate whatever
// concurrent Apply policy you choose.
package solver
