// Package graph implements the directed, non-negatively weighted graph
// capability the BMSSP engine operates over: dense integer vertex ids
// in [0, N), an adjacency list keyed by source vertex, and concurrency-
// safe mutation guarded by a single sync.RWMutex.
//
// Grounded on lvlath/core/types.go and core/adjacency_list.go:
// NewGraph's functional-options constructor, the per-operation
// RWMutex locking discipline, and the adjacency-list storage shape are
// carried over directly, generalized from string vertex ids and a
// directed/undirected/multi-edge/loop feature matrix to the dense
// integer ids and directed-only, non-negative-weight-only graphs
// spec.md's BMSSP operates on.
//
// Errors: AddEdge returns ErrVertexOutOfRange or ErrNegativeWeight; both
// are validation errors the caller is expected to check for, mirroring
// core.Graph's ErrVertexNotFound/ErrBadWeight pattern.
package graph
