// Package orderedset implements a dynamic, totally-ordered set of
// key.Key values backed by a red-black tree.
//
// It is the C1 component of the BMSSP engine: the bbll package indexes
// its D0 and D1 block upper bounds through an orderedset.Set so that
// "find the smallest bound greater than x" (StrictUpperBound) runs in
// O(log n).
//
// Grounded on the original implementation's own choice of a red-black
// tree (original_source/BMSSP_algorithm/data_structures/RBT.py); any
// balanced-BST family would satisfy the contract (spec.md §9), but this
// module follows the source rather than substituting an arbitrary
// alternative.
//
// Errors: none. Delete of an absent key, and Min/Max/StrictUpperBound on
// an empty set, are defined no-ops/zero-values rather than error
// conditions (spec.md §4.1).
package orderedset
