package bbll

import (
	"log"
	"math/rand"
	"sort"

	"github.com/katalvlaran/bmssp/block"
	"github.com/katalvlaran/bmssp/key"
	"github.com/katalvlaran/bmssp/median"
	"github.com/katalvlaran/bmssp/orderedset"
)

// Item is one (vertex, key) pair submitted to BatchPrepend.
type Item struct {
	Vertex int
	Key    key.Key
}

// BBLL is the Block-Based Linked List priority structure (spec.md §4.4).
//
// entries is shared with the caller: BBLL never allocates an Entry
// itself, it only re-homes the ones it is given between its own
// internal blocks. This is what lets a fresh BBLL be constructed per
// recursive BMSSP frame while every vertex's recorded key survives
// across frames (spec.md §3 "Lifecycle").
type BBLL struct {
	m       int     // block size cap M
	b       key.Key // outer boundary B, the sentinel D1 bound
	entries []*block.Entry

	d0       map[key.Key]*block.Block
	d0Bounds *orderedset.Set

	d1       map[key.Key]*block.Block
	d1Bounds *orderedset.Set

	rng    *rand.Rand
	logger *log.Logger
}

// New constructs an empty BBLL with block-size cap m and outer boundary
// b. entries must have one slot per vertex id the structure will ever
// see (engine allocates this array once per Run and passes it to every
// recursive frame's BBLL). rng drives median selection for Split and
// BatchPrepend; logger receives NotFound diagnostics and defaults to
// log.Default() when nil.
func New(m int, b key.Key, entries []*block.Entry, rng *rand.Rand, logger *log.Logger) *BBLL {
	if logger == nil {
		logger = log.Default()
	}
	bb := &BBLL{
		m:        m,
		b:        b,
		entries:  entries,
		d0:       make(map[key.Key]*block.Block),
		d0Bounds: orderedset.New(),
		d1:       make(map[key.Key]*block.Block),
		d1Bounds: orderedset.New(),
		rng:      rng,
		logger:   logger,
	}
	bb.d1[b] = block.New()
	bb.d1Bounds.Insert(b)
	return bb
}

// isLinked reports whether e is currently linked into some block owned
// by this (or any) BBLL.
func isLinked(e *block.Entry) bool {
	return e.Prev != nil && e.Next != nil
}

// Insert records newKey for vertex if it improves on the vertex's
// currently linked key; otherwise it is a silent no-op (spec.md §4.4
// "Insert ... improvement-only"). A vertex not currently linked into
// any block has no "current key" to improve on — entries are shared
// across recursive frames (spec.md §5 "one intrusive entry per vertex
// per run, reused across recursive frames"), so a vertex a prior frame
// already recorded and then removed (via Delete/Pull) must be freely
// re-insertable into a later frame's fresh BBLL at the same key.
//
// Complexity: amortised O(log(N/M)) per spec.md §4.4.
func (bb *BBLL) Insert(vertex int, newKey key.Key) {
	e := bb.entries[vertex]
	if isLinked(e) {
		if !key.Less(newKey, e.Val) {
			return
		}
		bb.Delete(vertex, e.Val)
	}
	e.Val = newKey

	bound, ok := bb.d1Bounds.StrictUpperBound(newKey)
	if !ok {
		bound = bb.b
	}
	blk, exists := bb.d1[bound]
	if !exists {
		// Defensive: every D1 bound in the tree must index a block.
		blk = block.New()
		bb.d1[bound] = blk
	}
	blk.Insert(e)
	if blk.Size() > bb.m {
		bb.split(bound)
	}
}

// split divides the D1 block keyed by bound into two blocks at its
// value-median: a new bound (the median threshold) is registered for
// the left half, and bound itself — left in D1_bounds untouched,
// whether or not it is the sentinel B — is re-mapped to the right half
// (spec.md §4.4).
func (bb *BBLL) split(bound key.Key) {
	blk, ok := bb.d1[bound]
	if !ok || blk.IsEmpty() {
		return
	}

	entries := blk.Iterate()
	threshold := splitThreshold(entries, bb.rng)

	left, right := block.New(), block.New()
	for _, e := range entries {
		blk.Delete(e)
		if key.Less(e.Val, threshold) {
			left.Insert(e)
		} else {
			right.Insert(e)
		}
	}

	// bound itself stays registered in d1Bounds throughout: its value
	// does not change, only the block it maps to (the new right half).
	// Only threshold is a genuinely new bound.
	bb.d1Bounds.Insert(threshold)
	bb.d1[threshold] = left
	bb.d1[bound] = right
}

// splitThreshold computes a Key, derived from the block's Dist median,
// that strictly separates entries into a "below" and "at-or-above"
// half. If no entry's Dist lies strictly below the median (for
// instance when all distances are tied), the median-based cut leaves
// the "below" side empty; in that case entries are instead bisected by
// full key order so progress is always made.
func splitThreshold(entries []*block.Entry, rng *rand.Rand) key.Key {
	vals := make([]float64, len(entries))
	for i, e := range entries {
		vals[i] = e.Val.Dist
	}
	m := median.Median(vals, rng)
	threshold := key.FloorAt(m)

	hasLeft, hasRight := false, false
	for _, e := range entries {
		if key.Less(e.Val, threshold) {
			hasLeft = true
		} else {
			hasRight = true
		}
	}
	if hasLeft && hasRight {
		return threshold
	}

	sorted := append([]*block.Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return key.Less(sorted[i].Val, sorted[j].Val) })
	mid := len(sorted) / 2
	return sorted[mid].Val
}

// Delete removes vertex's entry, whose currently recorded key must
// equal val, from whichever block currently holds it. A key strictly
// less than D0's current max bound is searched for in D0; otherwise D1
// is searched (spec.md §9 resolves the D0/D1 delete split point this
// way). A bound that no longer indexes a block is logged and the call
// returns cleanly (spec.md §7 "NotFound (recoverable)").
func (bb *BBLL) Delete(vertex int, val key.Key) {
	e := bb.entries[vertex]

	if d0Max, ok := bb.d0Bounds.Max(); ok && key.Less(val, d0Max) {
		bound, ok := bb.d0Bounds.StrictUpperBound(val)
		if !ok {
			bound = d0Max
		}
		blk, exists := bb.d0[bound]
		if !exists {
			bb.logger.Printf("bbll: delete: D0 bound %v no longer indexes a block", bound)
			return
		}
		blk.Delete(e)
		if blk.IsEmpty() {
			delete(bb.d0, bound)
			bb.d0Bounds.Delete(bound)
		}
		return
	}

	bound, ok := bb.d1Bounds.StrictUpperBound(val)
	if !ok {
		max, hasMax := bb.d1Bounds.Max()
		if !hasMax {
			bb.logger.Printf("bbll: delete: D1 has no bounds for vertex %d", vertex)
			return
		}
		bound = max
	}
	blk, exists := bb.d1[bound]
	if !exists {
		bb.logger.Printf("bbll: delete: D1 bound %v no longer indexes a block", bound)
		return
	}
	blk.Delete(e)
	if blk.IsEmpty() && bound != bb.b {
		delete(bb.d1, bound)
		bb.d1Bounds.Delete(bound)
	}
}

// BatchPrepend recursively partitions items by value-median into
// blocks of size at most M and prepends them to D0 in ascending order,
// each block's upper bound equal to the minimum key of the block after
// it (the last block's bound is the structure's current global
// minimum). Callers are responsible for only passing items that
// improve on the vertex's currently recorded key (spec.md §4.4).
//
// Complexity: O(|items| * log(|items|/M)) per spec.md §4.4.
func (bb *BBLL) BatchPrepend(items []Item) {
	if len(items) == 0 {
		return
	}

	entries := make([]*block.Entry, 0, len(items))
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		e := bb.entries[it.Vertex]
		if seen[it.Vertex] {
			// a vertex listed more than once keeps only its smallest key
			if key.Less(it.Key, e.Val) {
				e.Val = it.Key
			}
			continue
		}
		seen[it.Vertex] = true
		if isLinked(e) {
			bb.Delete(it.Vertex, e.Val)
		}
		e.Val = it.Key
		entries = append(entries, e)
	}

	blocks := bb.partitionForPrepend(entries)
	globalMin := bb.FindGlobalMin()
	for i := len(blocks) - 1; i >= 0; i-- {
		var bound key.Key
		if i == len(blocks)-1 {
			bound = globalMin
		} else {
			bound = blocks[i+1].Min()
		}
		bb.d0[bound] = blocks[i]
		bb.d0Bounds.Insert(bound)
	}
}

// partitionForPrepend splits entries into an ordered sequence of
// blocks each holding at most M entries, such that every key in block
// i is less than every key in block i+1.
func (bb *BBLL) partitionForPrepend(entries []*block.Entry) []*block.Block {
	if len(entries) <= bb.m {
		sorted := append([]*block.Entry(nil), entries...)
		sort.Slice(sorted, func(i, j int) bool { return key.Less(sorted[i].Val, sorted[j].Val) })
		blk := block.New()
		for _, e := range sorted {
			blk.Insert(e)
		}
		return []*block.Block{blk}
	}

	threshold := splitThreshold(entries, bb.rng)
	var left, right []*block.Entry
	for _, e := range entries {
		if key.Less(e.Val, threshold) {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}

	return append(bb.partitionForPrepend(left), bb.partitionForPrepend(right)...)
}

// Pull collects whole blocks from D0, in ascending bound order, until
// at least M entries are gathered or D0 is exhausted, then does the
// same over D1. If the combined collection holds at most M
// entries, every one of them is removed and returned alongside the
// sentinel B. Otherwise the M smallest by key are removed via
// quickselect and returned alongside the structure's new global
// minimum (spec.md §4.4).
func (bb *BBLL) Pull() ([]int, key.Key) {
	s0 := bb.collect(bb.d0Bounds, bb.d0, bb.m)
	s1 := bb.collect(bb.d1Bounds, bb.d1, bb.m)
	combined := append(s0, s1...)

	if len(combined) <= bb.m {
		vertices := make([]int, 0, len(combined))
		for _, e := range combined {
			vertices = append(vertices, e.Vertex)
		}
		for _, e := range combined {
			bb.Delete(e.Vertex, e.Val)
		}
		return vertices, bb.b
	}

	chosen := selectMSmallest(combined, bb.m, bb.rng)
	vertices := make([]int, 0, len(chosen))
	for _, e := range chosen {
		vertices = append(vertices, e.Vertex)
	}
	for _, e := range chosen {
		bb.Delete(e.Vertex, e.Val)
	}
	return vertices, bb.FindGlobalMin()
}

// collect walks bounds in ascending order, appending whole blocks'
// worth of entries until at least limit entries have been gathered or
// every block is exhausted. Entries within a block are not sorted by
// key, so stopping mid-block could otherwise omit a smaller-keyed
// entry in favor of one already appended; always taking full blocks
// keeps collect's output a superset of the true M smallest, which
// Pull's downstream quickselect then trims exactly.
func (bb *BBLL) collect(bounds *orderedset.Set, blocks map[key.Key]*block.Block, limit int) []*block.Entry {
	var out []*block.Entry
	for _, bound := range bounds.InOrder() {
		out = append(out, blocks[bound].Iterate()...)
		if len(out) >= limit {
			return out
		}
	}
	return out
}

// selectMSmallest returns (in arbitrary order) the m entries with the
// smallest Val among entries, via randomized quickselect on the key
// total order. Because key.Key ties never occur across distinct
// vertices (spec.md §3), no separate tie-breaking pass is needed.
func selectMSmallest(entries []*block.Entry, m int, rng *rand.Rand) []*block.Entry {
	if m >= len(entries) {
		return entries
	}

	a := append([]*block.Entry(nil), entries...)
	lo, hi := 0, len(a)-1
	target := m - 1
	for lo < hi {
		pivotIdx := lo + rng.Intn(hi-lo+1)
		pivotIdx = partitionEntries(a, lo, hi, pivotIdx)
		switch {
		case target == pivotIdx:
			lo, hi = pivotIdx, pivotIdx
		case target < pivotIdx:
			hi = pivotIdx - 1
		default:
			lo = pivotIdx + 1
		}
	}
	return a[:m]
}

func partitionEntries(a []*block.Entry, lo, hi, pivotIndex int) int {
	pivot := a[pivotIndex].Val
	a[pivotIndex], a[hi] = a[hi], a[pivotIndex]
	store := lo
	for i := lo; i < hi; i++ {
		if key.Less(a[i].Val, pivot) {
			a[i], a[store] = a[store], a[i]
			store++
		}
	}
	a[store], a[hi] = a[hi], a[store]
	return store
}

// IsEmpty reports whether the structure holds no entries at all: D0
// must have no bounds, and D1 must hold nothing but its (always
// present, always empty-when-idle) sentinel block.
func (bb *BBLL) IsEmpty() bool {
	if bb.d0Bounds.Len() != 0 {
		return false
	}
	if bb.d1Bounds.Len() > 1 {
		return false
	}
	sentinel, ok := bb.d1[bb.b]
	return ok && sentinel.IsEmpty()
}

// FindGlobalMin returns the smallest key currently held anywhere in the
// structure, or B if the structure is empty.
//
// Complexity: O(log n).
func (bb *BBLL) FindGlobalMin() key.Key {
	best := bb.b
	if bound, ok := bb.d0Bounds.Min(); ok {
		if blk := bb.d0[bound]; !blk.IsEmpty() {
			best = key.Min(best, blk.Min())
		}
	}
	if bound, ok := bb.d1Bounds.Min(); ok {
		if blk := bb.d1[bound]; !blk.IsEmpty() {
			best = key.Min(best, blk.Min())
		}
	}
	return best
}
