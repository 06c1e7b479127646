// Package dfs provides the one shared traversal primitive every enumeration
// algorithm needs before it can start: a deterministic vertex numbering.
//
// The specification calls this "a generic depth-first/breadth-first visitor
// API used internally only to number vertices and compute in-degrees;
// conceptually a helper, not a deliverable." Number walks a core.Graph in
// depth-first pre-order, starting from Vertices() insertion order and
// exploring Neighbors() in insertion order, and returns a Numbering mapping
// each vertex to its 0..n-1 index and back. The directed cycle algorithms in
// package cycles each compute a fresh Numbering per call — there is no
// shared, persistent vertex order across calls; scc and paton walk
// Vertices() order directly and do not use a Numbering.
//
// InDegrees computes each vertex's in-degree with a single O(V+E) pass over
// out-adjacency; Szwarcfiter-Lauer uses it to pick each SCC's start vertex.
//
// The traversal itself is iterative (an explicit frame stack), not recursive,
// so Number tolerates graphs far deeper than Go's default goroutine stack
// would comfortably recurse through — relevant at the ~10^4-vertex scale the
// specification calls out.
package dfs
