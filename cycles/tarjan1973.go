package cycles

import (
	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/dfs"
)

// tarjanCircuit1973 holds one round's search state: the graph, the fixed
// start index s for this round, the numbering shared across rounds, the
// point stack (the candidate cycle under construction), which vertices are
// currently marked (on the point stack, or explored without reaching s
// since they were marked), and the marked stack recording marking order.
type tarjanCircuit1973 struct {
	g      *core.Graph
	num    *dfs.Numbering
	s      int
	marked map[string]bool
	mstack []string
	stack  []string
	out    []Cycle
}

// FindSimpleCyclesTarjan1973 enumerates every simple cycle of g with
// Tarjan's 1973 backtracking algorithm: for each start vertex s, in
// numbering order, DFS forward through neighbors whose index is >= index(s),
// reporting a cycle each time the walk reaches back to s, and leaving marked
// any vertex whose whole subtree closed without reaching s until a vertex
// beneath it on the point stack reaches s.
//
// Steps, for each start s (index order 0..n-1):
//  1. Push s onto the point stack and mark it.
//  2. For every out-neighbor w of the point stack's top with index(w) >=
//     index(s): if w == s, emit the point stack as a cycle; otherwise, if w
//     is unmarked, recurse into w.
//  3. After all neighbors are explored, if the recursive call (or this
//     call) reached s at least once anywhere below, unmark the top vertex
//     and every vertex marked after it (popping the marked stack down to
//     it) so a later path may revisit them this round; otherwise leave it
//     marked.
//  4. Pop the top vertex off the point stack.
//  5. Discard all marks before starting the next s.
//
// Complexity: O(V*E*(C+1)) where C is the number of cycles found.
//
// Errors:
//
//	core.ErrInvalidArgument - g is nil.
func FindSimpleCyclesTarjan1973(g *core.Graph) ([]Cycle, error) {
	if g == nil {
		return nil, core.InvalidArgument("cycles.FindSimpleCyclesTarjan1973")
	}

	num := dfs.Number(g)
	var out []Cycle

	for s := 0; s < num.Len(); s++ {
		t := &tarjanCircuit1973{
			g:      g,
			num:    num,
			s:      s,
			marked: make(map[string]bool, num.Len()),
		}
		t.backtrack(num.Vertex(s))
		out = append(out, t.out...)
	}

	return out, nil
}

// backtrack is the recursive core of the 1973 algorithm; it returns whether
// any cycle back to the round's start was found anywhere in v's subtree.
func (t *tarjanCircuit1973) backtrack(v string) bool {
	found := false
	t.stack = append(t.stack, v)
	t.marked[v] = true
	t.mstack = append(t.mstack, v)

	start := t.num.Vertex(t.s)
	for _, w := range t.g.Neighbors(v) {
		if t.num.Index(w) < t.s {
			continue
		}
		if w == start {
			cyc := make(Cycle, len(t.stack))
			copy(cyc, t.stack)
			t.out = append(t.out, cyc)
			found = true
		} else if !t.marked[w] {
			if t.backtrack(w) {
				found = true
			}
		}
	}

	if found {
		for {
			n := len(t.mstack) - 1
			u := t.mstack[n]
			t.mstack = t.mstack[:n]
			delete(t.marked, u)
			if u == v {
				break
			}
		}
	}
	t.stack = t.stack[:len(t.stack)-1]

	return found
}

// CountSimpleCyclesTarjan1973 is FindSimpleCyclesTarjan1973, but returns
// only the count.
func CountSimpleCyclesTarjan1973(g *core.Graph) (int, error) {
	cs, err := FindSimpleCyclesTarjan1973(g)
	if err != nil {
		return 0, err
	}

	return len(cs), nil
}
