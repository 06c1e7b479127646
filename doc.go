// Package cycles (the module) enumerates simple cycles in directed and
// undirected graphs.
//
// 🚀 What is this?
//
//	A small, thread-safe, dependency-light toolkit that brings together:
//
//	  • Core primitives: a minimal directed/undirected Graph, insertion-order
//	    adjacency, vertex numbering
//	  • A shared SCC engine: Tarjan's index/lowlink algorithm
//	  • Four independent directed cycle-enumeration algorithms: Tiernan,
//	    Tarjan (1973), Johnson, Szwarcfiter-Lauer
//	  • Paton's spanning-tree walk for undirected cycle bases
//
// ✨ Why four directed algorithms?
//
//   - They agree on every count, by construction — a useful cross-check
//   - Each trades off differently: Tiernan is simplest but worst-case
//     exponential; Johnson and Szwarcfiter-Lauer are polynomial-delay but
//     carry more bookkeeping; Tarjan (1973) sits in between
//   - None of them canonicalizes rotations — Tiernan, Tarjan (1973) and
//     Johnson rely on a fixed vertex numbering and an "only start from the
//     minimum-index vertex" rule to avoid emitting the same cycle twice;
//     Szwarcfiter-Lauer runs one pruned DFS per strongly connected component
//
// Everything lives under focused subpackages:
//
//	core/    — the Graph type, vertex/edge lifecycle, sentinel errors
//	dfs/     — vertex numbering (DFS pre-order) and in-degree counting
//	scc/     — Tarjan's strongly connected components, shared by Johnson and
//	           Szwarcfiter-Lauer
//	cycles/  — the four directed cycle-enumeration algorithms
//	paton/   — PatonCycleBase and PatonSimpleCycles for undirected graphs
//	builder/ — graph construction helpers used by this module's own test
//	           suites (complete graphs, cycles, paths, and the like)
//
// Every scc, cycles and paton entry point fails with core.ErrInvalidArgument
// when its graph is nil and returns no other error; core.Graph.AddEdge
// reports core.ErrEmptyVertexID, and the builder constructors report
// builder.ErrTooFewVertices. Every call is synchronous and self-contained
// — scratch state is allocated on entry and discarded on return, nothing
// persists between calls.
package cycles
