package bbll

import (
	"fmt"

	"github.com/katalvlaran/bmssp/block"
	"github.com/katalvlaran/bmssp/key"
	"github.com/katalvlaran/bmssp/orderedset"
)

// CheckInvariants verifies the structural properties spec.md §8
// requires of a well-formed BBLL:
//
//   - every bound in D0_bounds/D1_bounds indexes exactly one block, and
//     vice versa;
//   - the sentinel bound B is always present in both D1_bounds and D1;
//   - no block in D0 or D1 exceeds the size cap M;
//   - every entry sorts strictly below its own block's bound, and above
//     the preceding bound (strictly, for D1; D0's bound naming
//     convention allows equality at the boundary, see below);
//   - no entry is linked into more than one block.
//
// It never panics; a violated invariant is reported as an error
// wrapping ErrInvariantViolation, which per spec.md §7 is fatal to the
// enclosing run rather than something a caller retries past.
func (bb *BBLL) CheckInvariants() error {
	if err := checkBoundsMatchBlocks(bb.d0Bounds, bb.d0, "D0"); err != nil {
		return err
	}
	if err := checkBoundsMatchBlocks(bb.d1Bounds, bb.d1, "D1"); err != nil {
		return err
	}

	if !bb.d1Bounds.Contains(bb.b) {
		return fmt.Errorf("%w: sentinel bound %v missing from D1_bounds", ErrInvariantViolation, bb.b)
	}
	if _, ok := bb.d1[bb.b]; !ok {
		return fmt.Errorf("%w: sentinel bound %v missing from D1", ErrInvariantViolation, bb.b)
	}

	// D1 bounds are strict upper separators for their own block (Insert
	// routes to the smallest bound > key, and Split's threshold never
	// collides with a real vertex key), so both neighbors are checked
	// strictly. D0 bounds instead name the *next* block's minimum
	// (spec.md §4.4 batch_prepend), so a block's own entries legitimately
	// include one entry equal to the preceding bound.
	if err := checkBlockCapsAndOrdering(bb.d0Bounds, bb.d0, bb.m, "D0", false); err != nil {
		return err
	}
	if err := checkBlockCapsAndOrdering(bb.d1Bounds, bb.d1, bb.m, "D1", true); err != nil {
		return err
	}

	seen := make(map[*block.Entry]bool)
	for _, blocks := range []map[key.Key]*block.Block{bb.d0, bb.d1} {
		for bound, blk := range blocks {
			for _, e := range blk.Iterate() {
				if seen[e] {
					return fmt.Errorf("%w: entry for vertex %d is linked into more than one block (again under bound %v)", ErrInvariantViolation, e.Vertex, bound)
				}
				seen[e] = true
			}
		}
	}

	return nil
}

// checkBlockCapsAndOrdering verifies that no block exceeds m entries
// and that, walking bounds in ascending order, every entry in the
// block at bound[i] sorts strictly below bound[i]. Against the
// preceding bound[i-1], the check is strict when lowerStrict is true
// and non-strict (entries may equal bound[i-1]) otherwise.
func checkBlockCapsAndOrdering(bounds *orderedset.Set, blocks map[key.Key]*block.Block, m int, label string, lowerStrict bool) error {
	prevBound, havePrev := key.Key{}, false
	for _, bound := range bounds.InOrder() {
		blk := blocks[bound]
		if blk.Size() > m {
			return fmt.Errorf("%w: %s block at bound %v holds %d entries, exceeds cap M=%d", ErrInvariantViolation, label, bound, blk.Size(), m)
		}
		for _, e := range blk.Iterate() {
			if !key.Less(e.Val, bound) {
				return fmt.Errorf("%w: entry for vertex %d (val %v) does not sort below its %s bound %v", ErrInvariantViolation, e.Vertex, e.Val, label, bound)
			}
			if havePrev {
				ok := key.Less(prevBound, e.Val)
				if !lowerStrict {
					ok = ok || key.Equal(prevBound, e.Val)
				}
				if !ok {
					return fmt.Errorf("%w: entry for vertex %d (val %v) does not sort above the preceding %s bound %v", ErrInvariantViolation, e.Vertex, e.Val, label, prevBound)
				}
			}
		}
		prevBound, havePrev = bound, true
	}
	return nil
}

func checkBoundsMatchBlocks(bounds *orderedset.Set, blocks map[key.Key]*block.Block, label string) error {
	for _, bound := range bounds.InOrder() {
		if _, ok := blocks[bound]; !ok {
			return fmt.Errorf("%w: %s bound %v has no indexed block", ErrInvariantViolation, label, bound)
		}
	}
	if bounds.Len() != len(blocks) {
		return fmt.Errorf("%w: %s has %d bounds but %d blocks", ErrInvariantViolation, label, bounds.Len(), len(blocks))
	}
	return nil
}
