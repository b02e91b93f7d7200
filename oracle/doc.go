// Package oracle provides independent reference implementations used to
// check engine.Run's output in tests: a plain Dijkstra and a
// Bellman-Ford, both computing shortest-path distance/predecessor
// tables over the same graph.Graph-shaped capability engine consumes.
//
// Grounded on lvlath/dijkstra/dijkstra.go's runner/nodePQ/nodeItem
// shape, generalized from string vertex ids and a map-based dist/prev
// to this module's dense integer ids and slice-based tables, and from
// int64 distances to float64 (spec.md §1 weights are float64).
// Bellman-Ford is grounded on
// original_source/benchmark/methods/bellman_ford.py, reimplemented in
// the same slice-based, sentinel-Inf idiom as the Dijkstra oracle
// rather than translated line for line.
//
// Neither oracle is used by engine itself — they exist purely as a
// correctness baseline for tests. Dijkstra, like engine, rejects a
// graph with a negative edge weight with an error; BellmanFord accepts
// negative weights without erroring and reports a reachable negative
// cycle via its negativeCycle return instead.
package oracle
