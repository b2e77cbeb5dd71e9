// Package rondo is an iterative local-search toolkit built around one idea:
// a search run moves through phases — construction, intensification,
// diversification — and the outer loop should not care which phase is active.
//
// 🚀 What is rondo?
//
//	A small, thread-safe toolkit that brings together:
//		• search/     — core contracts: State, Move, Comparator, and the Solution
//		                holder with comparator-driven best tracking
//		• roundrobin/ — the phase scheduler: registered selectors take turns,
//		                each used until it runs dry, then the next one wakes up
//		• solver/     — a concrete solver context plus sequential and parallel
//		                search loops
//		• config/     — flat named properties (YAML-loadable) handed to each
//		                phase at initialization
//		• runner/     — a scoped task runner with a guaranteed completion
//		                notification on every exit path
//		• permute/    — a ready-made permutation domain with improvement and
//		                shuffle selectors
//
// ✨ Why choose rondo?
//
//   - One loop, many phases – the scheduler is itself a selector, so the
//     outer solver never knows it is talking to a multiplexer
//   - Rock-solid guarantees – exactly-once phase initialization per
//     activation and best-solution checkpoints on every phase transition,
//     even under concurrent workers
//   - Deterministic – seeded randomness only; same seed, same search
//
// Quick sketch of a run with three phases A, B, C:
//
//	A A A │ B │ C C │ A …
//	      ↑checkpoint  ↑checkpoint (round robin, forever)
//
// Dive into the per-package docs for contracts and examples.
//
//	go get github.com/katalvlaran/rondo
package rondo
