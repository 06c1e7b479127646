// Package cycles enumerates all simple cycles (elementary circuits) of a
// directed core.Graph, via four independent algorithms:
//
//   - Tiernan: path-extension backtracking with a per-vertex blocked set.
//   - Tarjan (1973): DFS with a point-stack and per-vertex "removed" pruning.
//   - Johnson: SCC-restricted DFS with a block/unblock discipline.
//   - Szwarcfiter-Lauer: DFS with position/reach/removed state, O(V+EC).
//
// All four agree on the same output contract: FindSimpleCycles returns one
// representative per distinct simple cycle (no two results are rotations of
// the same vertex sequence), a self-loop (v,v) contributes exactly the
// one-element cycle [v], and the four algorithms return the same count for
// any given graph. They differ only in how they reach that count — this
// package exists so callers can pick (or cross-check) whichever pruning
// discipline fits their graph's shape.
//
// Every algorithm's state (index maps, stacks, blocked/removed/marked sets)
// is allocated fresh on each FindSimpleCycles call and discarded when it
// returns; nothing persists across calls, and concurrent calls share no
// algorithm state.
//
// Errors:
//
//	core.ErrInvalidArgument - the *core.Graph argument passed to any
//	FindSimpleCyclesXxx or CountSimpleCyclesXxx function is nil.
package cycles
