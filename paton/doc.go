// Package paton finds cycles in an undirected core.Graph by walking a
// spanning tree of each connected component and closing a cycle every time
// a non-tree edge (a "chord") is found.
//
// Two entry points share the same walk, differing only in whether the
// frontier is explored LIFO (a stack, producing a depth-first spanning
// tree) or FIFO (a queue, producing a breadth-first one):
//
//   - PatonCycleBase walks LIFO. Its output is a fundamental cycle base:
//     exactly one cycle per chord edge, enough to generate every cycle of
//     the graph by XOR-combination (which this package does not do).
//   - PatonSimpleCycles walks FIFO. Its output is a set of fundamental
//     cycles of the same size relative to a breadth-first tree — still not
//     the full enumeration of simple cycles in the graph, just a different
//     base.
//
// Both variants produce |E| - |V| + (connected components) cycles; see the
// package's tests for the complete-graph and triangle-chain counts this
// implies. A caller wanting every simple cycle of an undirected graph needs
// to combine this package's output themselves; it is out of scope here.
//
// Errors:
//
//	core.ErrInvalidArgument - g is nil.
package paton
