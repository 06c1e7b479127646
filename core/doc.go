// Package core defines the Graph and Edge primitives (vertices are plain
// string IDs) shared by every cycle-enumeration algorithm in this module
// (scc, cycles, paton).
//
// A Graph here is deliberately minimal: it exists to feed the enumeration
// engines, not to be a general-purpose graph toolkit. It supports directed
// and undirected graphs plus self-loops and nothing else — no weights, no
// per-edge direction overrides, no parallel edges. Multi-edges (two or more
// edges between the same ordered pair) are out of scope: AddEdge silently
// coalesces a repeated (from,to) pair into the existing edge rather than
// erroring or duplicating it, per the library's documented multi-edge policy.
//
// Determinism is the whole point of this package. Vertices() and Neighbors()
// always return their results in insertion order, never sorted, because every
// enumeration algorithm's output order — and therefore its duplicate-detection
// logic — is defined in terms of that order. Sorting either would silently
// change which rotation of a cycle gets emitted.
//
// Core Methods:
//
//	NewGraph(directed bool) *Graph
//	AddVertex(id string)
//	AddEdge(from, to string) error     // O(1) amortized
//	HasVertex(id string) bool          // O(1)
//	HasEdge(from, to string) bool      // O(1)
//	Vertices() []string                // O(V), insertion order
//	Neighbors(id string) []string      // O(deg(v)), insertion order
//	Order() int                        // O(1)
//	Directed() bool                    // O(1)
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrInvalidArgument - a required *Graph reference was nil at the point of use.
package core
