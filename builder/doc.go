// Package builder assembles small, named core.Graph topologies for this
// module's own test suites: complete graphs (with or without self-loops),
// cycles, paths, stars, wheels, and bipartite graphs. It exists so that
// scenario-style tests (e.g. "the complete directed graph with self-loops
// on n vertices") read as a single named call instead of a hand-rolled edge
// list.
//
// Every constructor follows the same shape: Constructor is a closure over
// its own parameters that mutates a fresh *core.Graph; BuildGraph applies a
// sequence of them in order, so composite fixtures (a cycle glued onto a
// complete graph, say) are built by chaining constructors rather than by a
// bespoke generator per combination.
//
// Vertex IDs are decimal strings assigned in ascending index order (0, 1,
// 2, ...; Bipartite prefixes them with "l" and "r"). Every constructor
// starts its indexing at 0, so a constructor composed after another reuses,
// rather than continues, the IDs already present and adds its edges among
// them — callers composing heterogeneous topologies should AddVertex/AddEdge
// by hand where this package's ID scheme does not fit.
package builder
