package key_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bmssp/key"
)

func TestLess_DistanceDominates(t *testing.T) {
	a := key.Of(1, 5, 5)
	b := key.Of(2, 0, 0)
	if !key.Less(a, b) {
		t.Fatalf("expected %v < %v on distance alone", a, b)
	}
}

func TestLess_PredBreaksDistanceTie(t *testing.T) {
	a := key.Of(3, 1, 9)
	b := key.Of(3, 2, 0)
	if !key.Less(a, b) {
		t.Fatalf("expected %v < %v: pred should break the distance tie", a, b)
	}
}

func TestLess_VertexBreaksRemainingTie(t *testing.T) {
	a := key.Of(3, 1, 2)
	b := key.Of(3, 1, 7)
	if !key.Less(a, b) {
		t.Fatalf("expected %v < %v: vertex should break the remaining tie", a, b)
	}
}

func TestLess_TotalOrder_NoTwoDistinctKeysEqual(t *testing.T) {
	keys := []key.Key{
		key.Of(1, 0, 0),
		key.Of(1, 0, 1),
		key.Of(1, 1, 0),
		key.Of(2, 0, 0),
	}
	for i := range keys {
		for j := range keys {
			if i == j {
				continue
			}
			if !key.Less(keys[i], keys[j]) && !key.Less(keys[j], keys[i]) {
				t.Fatalf("keys %v and %v compare equal, violating totality", keys[i], keys[j])
			}
		}
	}
}

func TestSentinel_GreaterThanEveryFiniteKey(t *testing.T) {
	finite := key.Of(1e18, math.MaxInt32, math.MaxInt32)
	if !key.Less(finite, key.Sentinel) {
		t.Fatalf("expected sentinel to dominate even a very large finite key")
	}
}

func TestMin(t *testing.T) {
	a := key.Of(5, 0, 0)
	b := key.Of(3, 0, 0)
	if got := key.Min(a, b); got != b {
		t.Fatalf("Min(%v, %v) = %v, want %v", a, b, got, b)
	}
}
