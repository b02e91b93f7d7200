// Package block implements an intrusive circular doubly linked list of
// vertex entries, ordered by insertion, with cached min/max values.
//
// It is the C3 component of the BMSSP engine: bbll stores each D0/D1
// bucket as one *block.Block, and engine holds exactly one *block.Entry
// per vertex for the lifetime of a single Run, re-homing it between
// blocks across recursive frames without allocating a new entry.
//
// Grounded on original_source/BMSSP_algorithm/data_structures/Block.py:
// the insert/delete/recompute-extremum shape is a direct port, adapted
// from a Python generator-based iterate() to a Go slice-returning one
// and from untyped vals to key.Key comparisons.
//
// Errors: none. Delete of an entry not currently linked into any block
// (spec.md §4.3: "An entry not currently linked ... must be ignored by
// delete") is a silent no-op, matching the source's own `node.next is
// None or node.prev is None` guard.
package block
