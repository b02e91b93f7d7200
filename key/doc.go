// Package key defines the tie-broken total-order key κ(v) used throughout
// the BMSSP engine to compare vertices by (distance, predecessor, vertex).
//
// A plain float64 distance is not enough to index the block-based
// priority structure (bbll): two vertices can share a distance, and the
// structure requires a strict total order with no ties. Rather than
// packing (dist, pred, vertex) into a single scalar — the original
// source's approach, which loses precision for large graphs — this
// package keeps the triple explicit and compares it lexicographically.
//
// Errors: none. Key comparisons are total and never fail.
package key
