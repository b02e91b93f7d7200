package oracle

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/graph"
)

// Graph is the read-only capability both oracles need: dense integer
// vertex ids and each vertex's outgoing edges. Identical in shape to
// pivot.Graph/engine.Graph; declared again here so oracle stays
// independent of engine's package graph.
type Graph interface {
	NodeCount() int
	Neighbors(u int) []graph.Edge
}

// Dijkstra computes shortest-path distances and predecessors from
// source to every vertex in g, assuming non-negative edge weights.
// Unreachable vertices get dist = +Inf, pred = -1.
//
// Grounded on lvlath/dijkstra/dijkstra.go's runner/process/relax split
// and its nodePQ/nodeItem lazy-decrease-key heap, generalized to dense
// integer ids and float64 distances.
func Dijkstra(g Graph, source int) ([]float64, []int, error) {
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("oracle: source %d out of range [0,%d)", source, n)
	}
	for u := 0; u < n; u++ {
		for _, e := range g.Neighbors(u) {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("oracle: negative edge weight %d->%d", u, e.To)
			}
		}
	}

	dist := make([]float64, n)
	pred := make([]int, n)
	visited := make([]bool, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		pred[v] = -1
	}
	dist[source] = 0

	pq := &nodePQ{}
	heap.Init(pq)
	heap.Push(pq, &nodeItem{vertex: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*nodeItem)
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.Neighbors(u) {
			v := e.To
			nd := dist[u] + e.Weight
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			pred[v] = u
			heap.Push(pq, &nodeItem{vertex: v, dist: nd})
		}
	}

	return dist, pred, nil
}

type nodeItem struct {
	vertex int
	dist   float64
}

type nodePQ []*nodeItem

func (q nodePQ) Len() int            { return len(q) }
func (q nodePQ) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q nodePQ) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodePQ) Push(x interface{}) { *q = append(*q, x.(*nodeItem)) }
func (q *nodePQ) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
