package block_test

import (
	"testing"

	"github.com/katalvlaran/bmssp/block"
	"github.com/katalvlaran/bmssp/key"
	"github.com/katalvlaran/bmssp/median"
)

func entry(v int, d float64) *block.Entry {
	return &block.Entry{Vertex: v, Val: key.Of(d, 0, v)}
}

func TestBlock_EmptyIsEmpty(t *testing.T) {
	b := block.New()
	if !b.IsEmpty() {
		t.Fatalf("new block should be empty")
	}
	if b.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", b.Size())
	}
	if b.Min() != key.Sentinel {
		t.Fatalf("Min() on empty block should be the sentinel, got %v", b.Min())
	}
}

func TestBlock_InsertTracksSizeAndExtrema(t *testing.T) {
	b := block.New()
	b.Insert(entry(1, 5))
	b.Insert(entry(2, 1))
	b.Insert(entry(3, 9))

	if b.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", b.Size())
	}
	if b.Min().Dist != 1 {
		t.Fatalf("Min().Dist = %v, want 1", b.Min().Dist)
	}
	if b.Max().Dist != 9 {
		t.Fatalf("Max().Dist = %v, want 9", b.Max().Dist)
	}
}

func TestBlock_DeleteRecomputesExtrema(t *testing.T) {
	b := block.New()
	e1 := entry(1, 5)
	e2 := entry(2, 1) // current min
	e3 := entry(3, 9) // current max
	b.Insert(e1)
	b.Insert(e2)
	b.Insert(e3)

	b.Delete(e2)
	if b.Min().Dist != 5 {
		t.Fatalf("after deleting the min entry, Min().Dist = %v, want 5", b.Min().Dist)
	}

	b.Delete(e3)
	if b.Max().Dist != 5 {
		t.Fatalf("after deleting the max entry, Max().Dist = %v, want 5", b.Max().Dist)
	}
	if b.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", b.Size())
	}
}

func TestBlock_DeleteLastEntryEmptiesBlock(t *testing.T) {
	b := block.New()
	e := entry(1, 3)
	b.Insert(e)
	b.Delete(e)

	if !b.IsEmpty() {
		t.Fatalf("block should be empty after deleting its only entry")
	}
	if b.Min() != key.Sentinel {
		t.Fatalf("Min() after emptying should be the sentinel, got %v", b.Min())
	}
}

func TestBlock_DeleteUnlinkedEntryIsNoop(t *testing.T) {
	b := block.New()
	e1 := entry(1, 1)
	b.Insert(e1)

	stray := entry(2, 2) // never inserted, Prev/Next both nil
	b.Delete(stray)

	if b.Size() != 1 {
		t.Fatalf("deleting an unlinked entry mutated the block: Size() = %d, want 1", b.Size())
	}
}

func TestBlock_DeleteTwiceIsNoop(t *testing.T) {
	b := block.New()
	e1 := entry(1, 1)
	e2 := entry(2, 2)
	b.Insert(e1)
	b.Insert(e2)

	b.Delete(e1)
	b.Delete(e1) // already unlinked; must not corrupt e2's links

	if b.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", b.Size())
	}
	if b.Min().Vertex != 2 {
		t.Fatalf("remaining entry should be vertex 2, got %v", b.Min())
	}
}

func TestBlock_IterateVisitsEachEntryOnce(t *testing.T) {
	b := block.New()
	want := map[int]bool{1: true, 2: true, 3: true}
	for v := range want {
		b.Insert(entry(v, float64(v)))
	}

	seen := map[int]bool{}
	for _, e := range b.Iterate() {
		if seen[e.Vertex] {
			t.Fatalf("vertex %d visited more than once", e.Vertex)
		}
		seen[e.Vertex] = true
	}
	if len(seen) != len(want) {
		t.Fatalf("Iterate visited %d entries, want %d", len(seen), len(want))
	}
}

func TestBlock_Median(t *testing.T) {
	b := block.New()
	for _, v := range []float64{5, 1, 4, 2, 3} {
		b.Insert(entry(int(v), v))
	}
	got := b.Median(median.NewRNG(1))
	if got != 3 {
		t.Fatalf("Median() = %v, want 3", got)
	}
}

func TestBlock_CircularLinksConsistent(t *testing.T) {
	b := block.New()
	e1, e2, e3 := entry(1, 1), entry(2, 2), entry(3, 3)
	b.Insert(e1)
	b.Insert(e2)
	b.Insert(e3)

	// walking Next three times from e1 returns to e1; same backwards via Prev.
	n := e1
	for i := 0; i < 3; i++ {
		n = n.Next
	}
	if n != e1 {
		t.Fatalf("circular Next chain broken")
	}
	p := e1
	for i := 0; i < 3; i++ {
		p = p.Prev
	}
	if p != e1 {
		t.Fatalf("circular Prev chain broken")
	}
}
