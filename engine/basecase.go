package engine

import (
	"container/heap"

	"github.com/katalvlaran/bmssp/key"
)

// baseCase runs the l=0 branch of bmssp (spec.md §4.6): a bounded
// Dijkstra from the single seed x, ordered by κ, relaxing only into
// targets whose candidate key stays strictly below b, stopping once
// k+1 vertices are finalised or the queue empties.
//
// If at most k vertices finalised, the whole set is "complete" and
// returns unchanged alongside b. Otherwise the k+1st finalisation
// overshoots: the new boundary becomes the max κ among the finalised
// set, and the returned U excludes whichever vertex achieved it.
func (r *runner) baseCase(x int, b key.Key) (key.Key, []int) {
	q := &nodePQ{}
	heap.Init(q)
	heap.Push(q, &nodeItem{vertex: x, key: r.kappa(x)})

	visited := make(map[int]bool)
	var order []int

	for q.Len() > 0 && len(order) < r.k+1 {
		item := heap.Pop(q).(*nodeItem)
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true
		order = append(order, u)
		r.iterations++

		for _, e := range r.g.Neighbors(u) {
			v := e.To
			r.relaxAttempts++
			candidate := key.Of(r.dist[u]+e.Weight, u, v)
			if !key.Less(candidate, b) {
				continue
			}
			if !key.LessEq(candidate, r.kappa(v)) {
				continue
			}
			r.dist[v] = candidate.Dist
			r.pred[v] = u
			r.relaxImprovements++
			heap.Push(q, &nodeItem{vertex: v, key: candidate})
		}
	}

	if len(order) <= r.k {
		return b, order
	}

	bPrime := r.kappa(order[0])
	for _, v := range order[1:] {
		kv := r.kappa(v)
		if key.Less(bPrime, kv) {
			bPrime = kv
		}
	}

	u := make([]int, 0, len(order))
	for _, v := range order {
		if key.Less(r.kappa(v), bPrime) {
			u = append(u, v)
		}
	}
	return bPrime, u
}

// nodeItem is a (vertex, key) pair held in the bounded Dijkstra's heap.
type nodeItem struct {
	vertex int
	key    key.Key
}

// nodePQ is a min-heap of *nodeItem ordered by key.Less, following the
// lazy-decrease-key pattern: relaxing a vertex already in the heap
// pushes a new, smaller entry rather than mutating the old one; stale
// entries are filtered out by the visited check when popped.
type nodePQ []*nodeItem

func (q nodePQ) Len() int            { return len(q) }
func (q nodePQ) Less(i, j int) bool  { return key.Less(q[i].key, q[j].key) }
func (q nodePQ) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodePQ) Push(x interface{}) { *q = append(*q, x.(*nodeItem)) }
func (q *nodePQ) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
