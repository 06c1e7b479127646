package scc

import "github.com/katalvlaran/cycles/core"

// Component is one strongly connected component: the vertices reachable from
// and to each other, in the order Tarjan's algorithm popped them off its
// stack (innermost first).
type Component struct {
	Vertices []string
}

// tarjan runs Tarjan's index/lowlink DFS over the whole graph and returns
// every SCC, trivial singletons included. Filtering to the non-trivial
// subset is the caller's job (see api.go).
type tarjan struct {
	g       *core.Graph
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	next    int
	comps   []Component
}

func runTarjan(g *core.Graph) []Component {
	t := &tarjan{
		g:       g,
		index:   make(map[string]int, g.Order()),
		lowlink: make(map[string]int, g.Order()),
		onStack: make(map[string]bool, g.Order()),
	}
	for _, v := range g.Vertices() {
		if _, visited := t.index[v]; !visited {
			t.strongConnect(v)
		}
	}

	return t.comps
}

// strongConnect is the textbook recursive Tarjan DFS. v's index is its
// discovery order; v's lowlink is the minimum index reachable from v's
// subtree via a back-edge to a vertex still on the stack. onStack gives O(1)
// membership so the back-edge test never scans the stack.
func (t *tarjan) strongConnect(v string) {
	t.index[v] = t.next
	t.lowlink[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.Neighbors(v) {
		if _, visited := t.index[w]; !visited {
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}

	// v roots an SCC: pop the stack down to and including v.
	var comp []string
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	t.comps = append(t.comps, Component{Vertices: comp})
}

// isNonTrivial reports whether c is an SCC with at least one cycle: size >= 2,
// or a singleton {v} with a self-loop (v,v).
func isNonTrivial(g *core.Graph, c Component) bool {
	if len(c.Vertices) != 1 {
		return true
	}

	return g.HasEdge(c.Vertices[0], c.Vertices[0])
}
