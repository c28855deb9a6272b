// Package program implements the Program Arena: a second, orthogonal
// handle-indexed store for the control-flow layer of the catseq toolchain
// — hardware loops, branches, variable assignment, and function
// definitions — sitting alongside (never inside) the morphism.Arena's
// pure data-flow composition tree.
//
// Like morphism.Arena, values and nodes are append-only and addressed by
// dense uint32 handles (ValueHandle, NodeHandle). Unlike morphism.Arena,
// Arena here additionally interns variables by name: calling Variable
// twice with the same name returns the same ValueHandle both times, so a
// variable referenced from multiple places in a program is guaranteed to
// resolve to one symbol. The first call's type hint wins; a later call
// with a different hint for the same name is not an error, it is simply
// ignored.
package program
