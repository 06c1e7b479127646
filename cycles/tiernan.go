package cycles

import (
	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/dfs"
)

// FindSimpleCyclesTiernan enumerates every simple cycle of g with Tiernan's
// path-extension algorithm: for each start vertex s (in numbering order),
// grow a simple path forward, confirm a cycle whenever the path's tail has
// an edge back to s, and otherwise back off one vertex and forbid the
// extension just undone before re-extending.
//
// Steps, for each start s (index order 0..n-1):
//  1. Extend  - repeatedly append the first out-neighbor n of the path's
//     tail e such that index(n) > index(s), n is not already on the path,
//     and n is not in blocked[e]; stop when no such n exists.
//  2. Confirm - if g has an edge from the tail back to s, emit the path as
//     a cycle.
//  3. Close   - if the path holds more than just s: clear blocked[tail],
//     pop the tail off the path, mark the new tail as forbidding what was
//     just popped, and go back to step 1.
//  4. Otherwise the path is just [s]: move on to the next start vertex.
//
// The index(n) > index(s) restriction is what keeps each cycle from being
// emitted once per rotation: a cycle's only valid start is its
// minimum-index vertex, since any other member would see a "neighbor" with
// a smaller index and refuse to extend through it.
//
// Complexity: exponential in the worst case (the algorithm explores, then
// discards, many dead-end paths); see Johnson or Szwarcfiter-Lauer for
// polynomial-delay alternatives.
//
// Errors:
//
//	core.ErrInvalidArgument - g is nil.
func FindSimpleCyclesTiernan(g *core.Graph) ([]Cycle, error) {
	if g == nil {
		return nil, core.InvalidArgument("cycles.FindSimpleCyclesTiernan")
	}

	num := dfs.Number(g)
	var out []Cycle

	for s := 0; s < num.Len(); s++ {
		start := num.Vertex(s)
		path := []string{start}
		onPath := map[string]bool{start: true}
		blocked := map[string]map[string]bool{}

		for {
			// Step 1: Extend.
			for {
				tail := path[len(path)-1]
				extended := false
				for _, n := range g.Neighbors(tail) {
					if num.Index(n) <= s || onPath[n] || blocked[tail][n] {
						continue
					}
					path = append(path, n)
					onPath[n] = true
					extended = true
					break
				}
				if !extended {
					break
				}
			}

			// Step 2: Confirm.
			tail := path[len(path)-1]
			if g.HasEdge(tail, start) {
				cyc := make(Cycle, len(path))
				copy(cyc, path)
				out = append(out, cyc)
			}

			// Step 3/4: Close, or advance to the next start.
			if len(path) == 1 {
				break
			}
			blocked[tail] = map[string]bool{}
			path = path[:len(path)-1]
			delete(onPath, tail)
			newTail := path[len(path)-1]
			if blocked[newTail] == nil {
				blocked[newTail] = map[string]bool{}
			}
			blocked[newTail][tail] = true
		}
	}

	return out, nil
}

// CountSimpleCyclesTiernan is FindSimpleCyclesTiernan, but returns only the
// count.
func CountSimpleCyclesTiernan(g *core.Graph) (int, error) {
	cs, err := FindSimpleCyclesTiernan(g)
	if err != nil {
		return 0, err
	}

	return len(cs), nil
}
