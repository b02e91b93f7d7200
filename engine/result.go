package engine

// Result holds a completed run's output (spec.md §6 "Core outputs").
type Result struct {
	// Dist[v] is the shortest-path distance from the source to v, or
	// key.Inf if v is unreachable.
	Dist []float64

	// Pred[v] is the predecessor of v on the returned shortest path, or
	// -1 for the source and for unreachable vertices.
	Pred []int

	// Iterations counts the number of recursive bmssp frames entered
	// (including the top-level call and every base case) plus every
	// vertex a base case's bounded Dijkstra finalises, for
	// instrumentation only — no correctness contract (spec.md §6).
	Iterations int

	// RelaxAttempts counts every edge examined as a relaxation
	// candidate by a base case or by a recursive frame's post-recursion
	// relax loop, whether or not it improved the target's distance.
	// Edges examined by pivot finding are not counted.
	RelaxAttempts int

	// RelaxImprovements counts the subset of RelaxAttempts whose
	// candidate key was at or below the target's recorded key and was
	// therefore written; a candidate that ties the recorded key counts.
	RelaxImprovements int
}
