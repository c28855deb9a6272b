// Package compiler flattens a morphism.Arena composition tree into a single
// time-ordered event list: the "Flat Compiler" in the catseq toolchain.
//
// Compilation is a single explicit-stack depth-first walk that threads an
// absolute start time down through Sequential (right child offset by the
// left child's duration) and Parallel (both children start together)
// nodes, collecting one Event per Atomic leaf. The walk never recurses
// natively, so an arbitrarily deep — or deliberately unbalanced — tree
// cannot overflow the call stack. A single stable sort by time at the end
// brings same-time events back into a deterministic order without
// disturbing the relative order ties were produced in.
package compiler
