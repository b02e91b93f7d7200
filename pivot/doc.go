// Package pivot implements the C5 pivot-finding subroutine the BMSSP
// recursor calls once per recursive frame: a bounded k-round relaxation
// outward from a seed set, followed by a shortest-path-forest subtree-
// size pass that decides which seeds are worth recursing on.
//
// Grounded on spec.md §4.5 operation-by-operation. The forest traversal
// (step 4, "Compute each root's subtree size in F (BFS)") is grounded
// on lvlath/bfs/bfs.go's queue/dequeue/visit shape, stripped of its
// exported Option/hook surface since FindPivots has no caller-facing
// traversal hooks of its own.
//
// Errors: none. FindPivots never fails; an empty seed set yields empty
// P and W.
package pivot
