// Package permute is a ready-made permutation search domain: a State over a
// permutation of n items with a pluggable cost function, plus two selectors
// that slot straight into the round-robin rotation:
//
//   - Improve — deterministic first-improvement 2-exchange descent; yields
//     one improving swap per call and exhausts at a local optimum.
//   - Shuffle — seeded diversification kick; yields a bounded number of
//     random transposition bundles per activation, then exhausts.
//
// Paired in a rotation, they implement the classic intensify-until-stuck /
// kick / intensify-again loop without the outer solver knowing which phase
// is active.
//
// Determinism: Shuffle uses seeded math/rand only (seed 0 maps to a fixed
// default), so the same seed reproduces the same search. A *rand.Rand is
// not goroutine-safe; Shuffle serializes its own draws internally.
package permute
