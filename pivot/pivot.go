package pivot

import (
	"github.com/katalvlaran/bmssp/graph"
	"github.com/katalvlaran/bmssp/key"
)

// Graph is the read-only capability FindPivots needs: dense integer
// vertex ids and each vertex's outgoing edges (spec.md §6).
type Graph interface {
	NodeCount() int
	Neighbors(u int) []graph.Edge
}

// FindPivots runs the bounded k-round relaxation and shortest-path-
// forest pass of spec.md §4.5. dist and pred are the run's shared
// distance/predecessor tables; FindPivots both reads and updates them
// in place.
//
// Returns P, the subset of s whose forest subtree reached at least k
// vertices (worth recursing on), and W, the full set of vertices
// explored or finalised at this level. If the frontier's growth
// exceeds k*len(s) before k rounds complete, FindPivots takes the
// "growth-limit" branch and returns (s, W) unchanged — every seed
// becomes a pivot.
func FindPivots(g Graph, dist []float64, pred []int, b key.Key, s []int, k int) (P, W []int) {
	kappa := func(v int) key.Key { return key.Of(dist[v], pred[v], v) }

	wSet := make(map[int]bool, len(s))
	W = append(W, s...)
	for _, v := range s {
		wSet[v] = true
	}

	frontier := append([]int(nil), s...)

	for round := 0; round < k; round++ {
		nextSeen := make(map[int]bool)
		var nextFrontier []int

		for _, u := range frontier {
			for _, e := range g.Neighbors(u) {
				v := e.To
				candidate := key.Of(dist[u]+e.Weight, u, v)
				if !key.LessEq(candidate, kappa(v)) {
					continue
				}
				dist[v] = candidate.Dist
				pred[v] = u

				if key.Less(kappa(v), b) && !nextSeen[v] {
					nextSeen[v] = true
					nextFrontier = append(nextFrontier, v)
				}
			}
		}

		for _, v := range nextFrontier {
			if !wSet[v] {
				wSet[v] = true
				W = append(W, v)
			}
		}

		if len(W) > k*len(s) {
			return append([]int(nil), s...), W
		}
		frontier = nextFrontier
	}

	parent, hasParent := buildForest(g, dist, wSet, W)
	subtreeSize := subtreeSizes(W, parent, hasParent)

	for _, u := range s {
		if subtreeSize[u] >= k {
			P = append(P, u)
		}
	}
	return P, W
}

// buildForest links each non-root vertex in W to the one predecessor
// u∈W whose edge u→v exactly realizes v's current shortest distance
// (spec.md §4.5 step 3). Self-loops are skipped so a vertex can never
// become its own parent.
func buildForest(g Graph, dist []float64, wSet map[int]bool, w []int) (parent map[int]int, hasParent map[int]bool) {
	parent = make(map[int]int, len(w))
	hasParent = make(map[int]bool, len(w))

	for _, u := range w {
		for _, e := range g.Neighbors(u) {
			v := e.To
			if v == u || !wSet[v] || hasParent[v] {
				continue
			}
			if dist[v] == dist[u]+e.Weight {
				parent[v] = u
				hasParent[v] = true
			}
		}
	}
	return parent, hasParent
}

// subtreeSizes computes, for every vertex in w, the size of its subtree
// within the forest described by parent/hasParent (spec.md §4.5 step
// 4), via a per-root breadth-first traversal followed by a bottom-up
// accumulation over the discovery order.
func subtreeSizes(w []int, parent map[int]int, hasParent map[int]bool) map[int]int {
	children := make(map[int][]int, len(w))
	var roots []int
	for _, v := range w {
		if hasParent[v] {
			children[parent[v]] = append(children[parent[v]], v)
		} else {
			roots = append(roots, v)
		}
	}

	size := make(map[int]int, len(w))
	for _, root := range roots {
		order := bfsOrder(root, children)
		for i := len(order) - 1; i >= 0; i-- {
			u := order[i]
			total := 1
			for _, c := range children[u] {
				total += size[c]
			}
			size[u] = total
		}
	}
	return size
}

// bfsOrder returns every vertex reachable from root by following
// children links, in breadth-first discovery order (root first).
func bfsOrder(root int, children map[int][]int) []int {
	order := []int{root}
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, c := range children[u] {
			order = append(order, c)
			queue = append(queue, c)
		}
	}
	return order
}
