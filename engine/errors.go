package engine

import "errors"

var (
	// ErrEmptyGraph indicates Run was asked to compute over N = 0 vertices.
	ErrEmptyGraph = errors.New("engine: empty graph")

	// ErrSourceOutOfRange indicates the requested source vertex is
	// outside [0, N).
	ErrSourceOutOfRange = errors.New("engine: source vertex out of range")

	// ErrNegativeWeight indicates the graph carries an edge weight below
	// zero; BMSSP (spec.md §1) is defined only over non-negative weights.
	ErrNegativeWeight = errors.New("engine: negative edge weight")
)
