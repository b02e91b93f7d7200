// Package bbll implements the Block-Based Linked List, the C4 priority
// structure the BMSSP recursor dispatches work through at every
// recursion level.
//
// A BBLL holds two logically concatenated sequences of bounded-size
// blocks: D1 (populated by Insert, always containing a sentinel block
// keyed by the outer boundary B) and D0 (populated only by
// BatchPrepend, holding keys known to sit strictly below everything
// currently in D1). Insert, Delete, Split, BatchPrepend, and Pull
// together give amortised-cheap priority dispatch without a classical
// binary heap (spec.md §4.4).
//
// Grounded on original_source/benchmark/methods/BMSSP_utils/data_structures/BBLL.py,
// the most complete of the corpus's BBLL drafts — this is a structural
// port of its delete/insert/split/batch_prepend/pull/find_global_min
// methods, generalized from Python's dict-of-blocks-plus-RBT-of-bounds
// to this module's orderedset.Set and block.Block, and from ad hoc
// print-based diagnostics to a CheckInvariants method (see SPEC_FULL.md
// §C.1) callable directly from tests.
//
// Errors: Delete silently no-ops on an absent bound after logging
// (spec.md §7 "NotFound (recoverable)"). CheckInvariants returns
// ErrInvariantViolation, never panics, when a structural invariant from
// spec.md §8 fails.
package bbll
