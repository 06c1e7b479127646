// Package scc computes strongly connected components of a directed
// core.Graph with Tarjan's index/lowlink algorithm (Tarjan, 1972). It is the
// one supporting primitive the specification calls out as shared: Johnson's
// algorithm and Szwarcfiter-Lauer both restrict their search to one SCC at a
// time rather than the whole graph, and both get that restriction from here.
//
// Tarjan assigns every vertex a discovery index in DFS visitation order and a
// lowlink — the minimum index reachable from its subtree via a back-edge to a
// vertex still on the DFS stack. A vertex closes an SCC exactly when its
// lowlink equals its own index; the component is whatever the stack yields
// when popped down to that vertex.
//
// The package exposes two notions of "SCC", both documented in the
// specification:
//
//   - FindSCCs / CountSCCs consider only non-trivial components: size >= 2,
//     or a singleton {v} where (v,v) is an edge.
//   - FindAllSCCs / CountAllSCCs additionally include trivial singletons with
//     no self-loop.
//
// Every cycle-enumeration algorithm that restricts its search to an SCC
// (Johnson, Szwarcfiter-Lauer) uses only the non-trivial notion, because a
// trivial singleton contributes no cycle.
//
// Errors:
//
//	core.ErrInvalidArgument - g is nil.
package scc
