package cycles

import (
	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/dfs"
	"github.com/katalvlaran/cycles/scc"
)

// johnsonRound holds one start vertex's search state: the least-index SCC
// it was found in (restricting neighbor exploration to that component is
// what keeps Johnson's algorithm polynomial-delay), the blocked set, and
// the B sets used to unblock a vertex's whole dead-end subtree at once
// instead of one vertex at a time.
type johnsonRound struct {
	g        *core.Graph
	inComp   map[string]bool
	start    string
	blocked  map[string]bool
	b        map[string]map[string]bool
	stack    []string
	out      []Cycle
}

// FindSimpleCyclesJohnson enumerates every simple cycle of g with Johnson's
// algorithm: for each candidate start vertex s (in numbering order), restrict
// the search to the strongly connected component of the subgraph induced by
// {v : index(v) >= index(s)} that contains s, then DFS within that component
// with a block/unblock discipline so that a dead-end subtree is never
// re-explored until one of its vertices gains a fresh path to s.
//
// Steps, for each start s (index order 0..n-1):
//  1. Build the subgraph induced by vertices with index >= index(s).
//  2. Find its SCC containing s via scc.FindSCCs; if s is not part of any
//     non-trivial SCC there, move on to the next start.
//  3. DFS from s within that component only: block v on entry; for each
//     neighbor w in the component, emit a cycle if w == s, else recurse if
//     w is unblocked.
//  4. If the recursion under v found any cycle, unblock v (and transitively
//     everything v's dead ends had blocked on it, via B). Otherwise leave v
//     blocked and register v in B[w] for every neighbor w, so that w's own
//     future unblock also unblocks v.
//
// Complexity: O((V+E)(C+1)).
//
// Errors:
//
//	core.ErrInvalidArgument - g is nil.
func FindSimpleCyclesJohnson(g *core.Graph) ([]Cycle, error) {
	if g == nil {
		return nil, core.InvalidArgument("cycles.FindSimpleCyclesJohnson")
	}

	num := dfs.Number(g)
	var out []Cycle

	for s := 0; s < num.Len(); s++ {
		start := num.Vertex(s)

		sub := core.NewGraph(true)
		for i := s; i < num.Len(); i++ {
			sub.AddVertex(num.Vertex(i))
		}
		for i := s; i < num.Len(); i++ {
			u := num.Vertex(i)
			for _, w := range g.Neighbors(u) {
				if num.Index(w) >= s {
					_ = sub.AddEdge(u, w)
				}
			}
		}

		comps, err := scc.FindSCCs(sub)
		if err != nil {
			return nil, err
		}

		var inComp map[string]bool
		for _, c := range comps {
			for _, v := range c.Vertices {
				if v == start {
					inComp = make(map[string]bool, len(c.Vertices))
					for _, m := range c.Vertices {
						inComp[m] = true
					}
					break
				}
			}
			if inComp != nil {
				break
			}
		}
		if inComp == nil {
			continue
		}

		r := &johnsonRound{
			g:       g,
			inComp:  inComp,
			start:   start,
			blocked: make(map[string]bool, len(inComp)),
			b:       make(map[string]map[string]bool, len(inComp)),
		}
		r.circuit(start)
		out = append(out, r.out...)
	}

	return out, nil
}

func (r *johnsonRound) circuit(v string) bool {
	found := false
	r.stack = append(r.stack, v)
	r.blocked[v] = true

	for _, w := range r.g.Neighbors(v) {
		if !r.inComp[w] {
			continue
		}
		if w == r.start {
			cyc := make(Cycle, len(r.stack))
			copy(cyc, r.stack)
			r.out = append(r.out, cyc)
			found = true
		} else if !r.blocked[w] {
			if r.circuit(w) {
				found = true
			}
		}
	}

	if found {
		r.unblock(v)
	} else {
		for _, w := range r.g.Neighbors(v) {
			if !r.inComp[w] {
				continue
			}
			if r.b[w] == nil {
				r.b[w] = make(map[string]bool)
			}
			r.b[w][v] = true
		}
	}

	r.stack = r.stack[:len(r.stack)-1]

	return found
}

func (r *johnsonRound) unblock(v string) {
	r.blocked[v] = false
	for w := range r.b[v] {
		delete(r.b[v], w)
		if r.blocked[w] {
			r.unblock(w)
		}
	}
}

// CountSimpleCyclesJohnson is FindSimpleCyclesJohnson, but returns only the
// count.
func CountSimpleCyclesJohnson(g *core.Graph) (int, error) {
	cs, err := FindSimpleCyclesJohnson(g)
	if err != nil {
		return 0, err
	}

	return len(cs), nil
}
