// Package catseq is the arena-backed morphism algebra compiler core of the
// catseq hardware pulse-sequence toolchain.
//
// Timed, per-channel hardware operations are atoms composed into a
// monoidal category by two combinators — Sequential (serial, duration
// adds) and Parallel (concurrent, disjoint channels required, duration is
// the max of the two) — and stored in an append-only arena addressed by
// dense integer handles. Two compilers turn a composition tree into a
// flat, time-ordered event list: a Flat Compiler for one-shot
// compilation, and an Incremental Compiler that memoizes each subtree's
// events in local (subtree-relative) time so a shared subtree compiles
// once no matter how many different trees splice it in at different
// start times. A separate, orthogonal Program Arena handles the
// control-flow layer — loops, branches, variable assignment — over the
// same per-channel morphisms.
//
// Subpackages:
//
//	morphism/    — Morphism Arena: node storage, combinators, metadata, traversal
//	compiler/    — Flat Compiler + board-grouping helper
//	incremental/ — Incremental Compiler: memoized compile + ordered merge
//	path/        — single-channel linear instruction buffer
//	program/     — Program Arena: control-flow AST + symbolic value expressions
//
// None of catseq's arenas are safe for concurrent use; callers are
// responsible for serializing access to a given Arena from multiple
// goroutines.
package catseq
