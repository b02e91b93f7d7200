package oracle

import (
	"fmt"
	"math"
)

// BellmanFord computes shortest-path distances and predecessors from
// source to every vertex in g, tolerating negative edge weights.
// negativeCycle reports whether a cycle reachable from source has
// negative total weight, in which case dist/pred are the values as of
// the last completed relaxation round rather than a converged result.
//
// Grounded on
// original_source/benchmark/methods/bellman_ford.py: n-1 relaxation
// rounds over every edge (skipping early once a round makes no
// improvement), followed by one extra round solely to detect a
// negative cycle.
func BellmanFord(g Graph, source int) (dist []float64, pred []int, negativeCycle bool, err error) {
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, nil, false, fmt.Errorf("oracle: source %d out of range [0,%d)", source, n)
	}

	dist = make([]float64, n)
	pred = make([]int, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		pred[v] = -1
	}
	dist[source] = 0

	type edge struct {
		from, to int
		weight   float64
	}
	var edges []edge
	for u := 0; u < n; u++ {
		for _, e := range g.Neighbors(u) {
			edges = append(edges, edge{from: u, to: e.To, weight: e.Weight})
		}
	}

	for i := 0; i < n-1; i++ {
		anyRelaxed := false
		for _, e := range edges {
			if math.IsInf(dist[e.from], 1) {
				continue
			}
			if nd := dist[e.from] + e.weight; nd < dist[e.to] {
				dist[e.to] = nd
				pred[e.to] = e.from
				anyRelaxed = true
			}
		}
		if !anyRelaxed {
			break
		}
	}

	for _, e := range edges {
		if math.IsInf(dist[e.from], 1) {
			continue
		}
		if dist[e.from]+e.weight < dist[e.to] {
			return dist, pred, true, nil
		}
	}

	return dist, pred, false, nil
}
