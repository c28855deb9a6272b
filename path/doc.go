// Package path implements Path, a single-channel linear instruction
// buffer: the data container backing a bound (channel-pinned) morphism
// before it is ever spliced into a composition tree.
//
// A Path supports O(1) Append and O(N) Extend — Extend appends another
// Path's steps by slice copy, not by walking and re-summing durations, so
// assembling a long program out of shorter fragments stays linear in the
// number of steps moved, never quadratic.
package path
