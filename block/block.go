package block

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/bmssp/key"
	"github.com/katalvlaran/bmssp/median"
)

// Entry is one intrusive node: Vertex identifies the vertex this entry
// represents, Val is its current tie-broken key, and Prev/Next link it
// into whichever Block currently owns it (or are both nil if unlinked).
//
// One Entry exists per vertex for the lifetime of a single BMSSP run
// (spec.md §3 "Lifecycle"); engine allocates the array once and re-homes
// entries between blocks by pointer as the run progresses.
type Entry struct {
	Vertex int
	Val    key.Key
	Prev   *Entry
	Next   *Entry
}

// linked reports whether e is currently linked into some block.
func (e *Entry) linked() bool {
	return e.Prev != nil && e.Next != nil
}

// Block is a circular doubly linked list of entries, caching size and
// the min/max Val currently held. The zero value is an empty, usable
// Block.
type Block struct {
	head        *Entry
	size        int
	minVal      key.Key
	maxVal      key.Key
	haveExtrema bool
}

// New returns an empty Block.
func New() *Block {
	return &Block{}
}

// IsEmpty reports whether the block holds no entries.
func (b *Block) IsEmpty() bool {
	return b.head == nil
}

// Size returns the number of entries currently in the block.
func (b *Block) Size() int {
	return b.size
}

// Min returns the smallest Val currently in the block, or key.Sentinel
// (treated as +∞, spec.md §3) if the block is empty.
func (b *Block) Min() key.Key {
	if !b.haveExtrema {
		return key.Sentinel
	}
	return b.minVal
}

// Max returns the largest Val currently in the block, or, if the block
// is empty, the "-∞" convention expressed as a Key with Dist
// math.Inf(-1) and Pred/Vertex -1 (never a valid vertex key under
// spec.md §3, so callers needing a true sentinel should check IsEmpty
// first).
func (b *Block) Max() key.Key {
	if !b.haveExtrema {
		return key.Key{Dist: negInf, Pred: -1, Vertex: -1}
	}
	return b.maxVal
}

// Insert appends entry before the logical head, updates cached
// min/max, and increments size. entry must not already be linked into
// any block.
//
// Complexity: O(1).
func (b *Block) Insert(entry *Entry) {
	if entry == nil {
		return
	}

	b.size++
	if !b.haveExtrema || key.Less(b.maxVal, entry.Val) {
		b.maxVal = entry.Val
	}
	if !b.haveExtrema || key.Less(entry.Val, b.minVal) {
		b.minVal = entry.Val
	}
	b.haveExtrema = true

	if b.head == nil {
		entry.Next, entry.Prev = entry, entry
		b.head = entry
		return
	}

	tail := b.head.Prev
	tail.Next = entry
	entry.Prev = tail
	entry.Next = b.head
	b.head.Prev = entry
}

// Delete unlinks entry from the block in O(1). If entry is not
// currently linked into any block (Prev/Next nil), Delete is a silent
// no-op (spec.md §4.3). Delete does not check which block a linked
// entry belongs to: passing an entry linked into a different block
// unlinks it from that list while adjusting this block's size and
// extrema. Recomputing a lost extremum is O(size).
func (b *Block) Delete(entry *Entry) {
	if b.head == nil || entry == nil || !entry.linked() {
		return
	}

	if entry == b.head && entry.Next == b.head {
		b.head = nil
		b.size = 0
		b.haveExtrema = false
		entry.Prev, entry.Next = nil, nil
		return
	}

	if entry == b.head {
		b.head = entry.Next
	}

	entry.Prev.Next = entry.Next
	entry.Next.Prev = entry.Prev
	b.size--

	wasMin := entry.Val == b.minVal
	wasMax := entry.Val == b.maxVal
	entry.Prev, entry.Next = nil, nil

	if wasMin {
		b.recomputeMin()
	}
	if wasMax {
		b.recomputeMax()
	}
}

// recomputeMin and recomputeMax are only called from the multi-entry
// branch of Delete, so b.head is always non-nil here; the single-entry
// removal case resets haveExtrema directly instead.
func (b *Block) recomputeMin() {
	newMin := b.head.Val
	for e := b.head.Next; e != b.head; e = e.Next {
		if key.Less(e.Val, newMin) {
			newMin = e.Val
		}
	}
	b.minVal = newMin
}

func (b *Block) recomputeMax() {
	newMax := b.head.Val
	for e := b.head.Next; e != b.head; e = e.Next {
		if key.Less(newMax, e.Val) {
			newMax = e.Val
		}
	}
	b.maxVal = newMax
}

// Iterate returns every entry currently in the block, in insertion
// order, each exactly once.
//
// Complexity: O(size).
func (b *Block) Iterate() []*Entry {
	if b.head == nil {
		return nil
	}
	out := make([]*Entry, 0, b.size)
	e := b.head
	for {
		out = append(out, e)
		e = e.Next
		if e == b.head {
			break
		}
	}
	return out
}

// Median returns the median of the block's Val.Dist projection via
// median.Median, in O(size) expected time. Panics if the block is
// empty (mirrors median.Median's own empty-input contract).
func (b *Block) Median(rng *rand.Rand) float64 {
	entries := b.Iterate()
	vals := make([]float64, len(entries))
	for i, e := range entries {
		vals[i] = e.Val.Dist
	}
	return median.Median(vals, rng)
}

// negInf is used only to express Max()'s empty-block convention above;
// it is never a legal vertex key (spec.md §3 vertex distances are
// non-negative or +∞).
var negInf = math.Inf(-1)
