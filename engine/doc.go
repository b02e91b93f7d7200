// Package engine implements the BMSSP recursor (C6): the recursive
// bmssp(l, B, S) → (B', U) driver of spec.md §4.6, its l=0 base case
// (a bounded Dijkstra restricted to κ < B), and the top-level Run entry
// point that derives k, t, l0 from the graph's vertex count and returns
// the finished distance/predecessor tables.
//
// The base-case priority queue is grounded directly on
// lvlath/dijkstra/dijkstra.go's nodePQ/nodeItem container/heap
// implementation: a lazy-decrease-key min-heap, generalized from a bare
// int64 distance compare to key.Key's tie-broken total order, and from
// string vertex ids to the dense integer ids this module uses
// throughout.
//
// Errors: Run validates its input eagerly (spec.md §7 InvalidInput) and
// returns an error without starting the recursion. Once running, the
// only fatal condition is an invariant violation surfaced by a BBLL
// frame's CheckInvariants (not called on the hot path; available for
// debug builds and tests).
package engine
