// Package incremental provides a caching compiler that reuses the compiled
// form of a subtree across repeated appearances in different trees — the
// "Incremental Compiler" in the catseq toolchain.
//
// The cache key is the subtree's morphism.Handle and the cached value is
// its event list in *local* time: every event's time is relative to the
// subtree's own t=0, never to wherever the subtree happens to be spliced
// into a larger composition. Locality is what makes a cache entry reusable
// at all — the same physical subtree can be composed at different absolute
// start times across different call trees, and the cached events stay
// correct because the caller applies the time offset, not the callee.
//
// Sequential reuses both children's cached event lists directly: the left
// side is copied unshifted and the right side copied with every time
// advanced by the left child's duration. Parallel needs an ordered merge of
// the two (already locally-sorted) caches, for which mergeSortedEvents adds
// a block-copy fast path — detecting that one child's entire time range
// precedes the other's; since both children's lists start at local t=0,
// this is the case when one child has all its events at t=0 — and
// otherwise falls back to a standard two-pointer merge that keeps the left
// child's events first on ties.
package incremental
