// Package median provides a linear-expected-time randomized median and
// k-th order statistic (quickselect) over a slice of float64 values.
//
// It is the C2 component of the BMSSP engine: block.Block uses it for
// Median() over a block's cached values, and bbll's (unexported) split
// uses it to find the value-median that partitions an oversized D1 block.
//
// Grounded on original_source/benchmark/methods/BMSSP_utils/utils/MedianFinder.py's
// quickselect shape, generalized to take a seedable random source rather
// than the global random module the Python original reaches for — see
// rng.go in this package (modelled on lvlath/tsp/rng.go) for how those
// non-global sources are built and derived.
//
// Errors: Median and QuickSelect panic on an empty input slice, mirroring
// the source's own assumption of a non-empty sequence (spec.md §4.2: "No
// exceptions beyond 'empty input'" — callers are expected to guard against
// this, not recover from it mid-algorithm).
package median
