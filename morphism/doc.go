// Package morphism implements the arena-backed algebra of timed, per-channel
// operations at the core of the catseq compiler: atomic operations composed
// by serial (Sequential) and parallel (Parallel) combinators into a monoidal
// category.
//
// The Arena is append-only: nodes are never mutated or freed individually,
// and handles (Handle, a dense uint32 index) stay valid for the lifetime of
// the Arena, until Arena.Clear drops every node. Every node carries precomputed metadata — Duration and the
// sorted, deduplicated Channels set — so composition and compilation never
// re-walk a subtree to answer "how long does this take" or "which channels
// does this touch".
//
// Invariants maintained by construction (never re-checked after the fact):
//
//   - Channels() is always strictly sorted, with no duplicates.
//   - Duration() is exactly lhs.Duration()+rhs.Duration() for Sequential,
//     and max(lhs.Duration(), rhs.Duration()) for Parallel.
//   - Every Parallel node's two children have disjoint channel sets —
//     Parallel returns ErrChannelConflict before appending a node otherwise.
//   - Child handles always refer to earlier-created nodes; cycles are
//     structurally impossible.
//
// Arena is not safe for concurrent use: a single compilation call is
// expected to run to completion before another begins, and the caller is
// responsible for serializing access from multiple goroutines.
package morphism
