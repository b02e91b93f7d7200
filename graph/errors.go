package graph

import "errors"

var (
	// ErrVertexOutOfRange indicates an endpoint id is outside [0, N).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrNegativeWeight indicates an edge weight below zero was
	// supplied; BMSSP (spec.md §1) is defined only over non-negative
	// edge weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)
