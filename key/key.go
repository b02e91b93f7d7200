package key

import "math"

// Key is the tie-broken total-order key κ(v) = (dist, pred, vertex).
//
// Comparisons are lexicographic: Dist dominates, Pred breaks ties between
// equal distances, and Vertex breaks the remaining ties. Because Vertex is
// unique per vertex, no two distinct vertices ever compare equal.
type Key struct {
	Dist   float64
	Pred   int
	Vertex int
}

// Sentinel is the dedicated "unbounded" marker used for the outer boundary
// B. It compares greater than every finite Key and is never itself stored
// as a vertex's recorded key.
var Sentinel = Key{Dist: math.Inf(1), Pred: -1, Vertex: -1}

// Inf is the +∞ distance sentinel for "unreached" (spec.md §3).
var Inf = math.Inf(1)

// Of builds the tie-broken key for a vertex given its current distance and
// predecessor.
func Of(dist float64, pred, vertex int) Key {
	return Key{Dist: dist, Pred: pred, Vertex: vertex}
}

// Less reports whether a sorts strictly before b.
func Less(a, b Key) bool {
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}
	if a.Pred != b.Pred {
		return a.Pred < b.Pred
	}
	return a.Vertex < b.Vertex
}

// LessEq reports whether a sorts at or before b.
func LessEq(a, b Key) bool {
	return !Less(b, a)
}

// Equal reports whether a and b are the identical key.
func Equal(a, b Key) bool {
	return a == b
}

// Min returns whichever of a, b sorts first.
func Min(a, b Key) Key {
	if Less(b, a) {
		return b
	}
	return a
}

// FloorAt builds a synthetic threshold key at the given distance that
// sorts strictly below every real key sharing that Dist (Pred and
// Vertex are never assigned below math.MinInt32 — spec.md §3 reserves
// -1 as the "no predecessor" marker, so MinInt32 never collides with a
// real predecessor or vertex id). Used by bbll to turn a scalar
// distance median into a Key comparable against block entries.
func FloorAt(dist float64) Key {
	return Key{Dist: dist, Pred: math.MinInt32, Vertex: math.MinInt32}
}
