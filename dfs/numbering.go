package dfs

import (
	"github.com/katalvlaran/cycles/core"
)

// Numbering assigns every vertex of a Graph a dense 0..n-1 index. Every
// cycle-enumeration algorithm compares vertices by this index, never by
// caller-supplied identity, so that "start in index order" and "index(n) >
// index(start)" style rules in the specification have one unambiguous
// meaning.
type Numbering struct {
	indexOf map[string]int
	byIndex []string
}

// Index returns v's assigned index, or -1 if v was not part of the Graph
// this Numbering was computed from.
func (n *Numbering) Index(v string) int {
	if idx, ok := n.indexOf[v]; ok {
		return idx
	}

	return -1
}

// Vertex returns the vertex assigned index i.
func (n *Numbering) Vertex(i int) string {
	return n.byIndex[i]
}

// Len returns the number of numbered vertices.
func (n *Numbering) Len() int {
	return len(n.byIndex)
}

// Number computes a fresh Numbering for g by depth-first pre-order,
// restarting from each not-yet-visited root in g.Vertices() order and
// exploring g.Neighbors() in insertion order. The traversal is iterative
// (an explicit frame stack) rather than recursive, so it does not compete
// with the host goroutine's stack at the vertex counts this module targets.
//
// Complexity: O(V + E).
func Number(g *core.Graph) *Numbering {
	n := &Numbering{
		indexOf: make(map[string]int, g.Order()),
		byIndex: make([]string, 0, g.Order()),
	}

	assign := func(v string) {
		if _, seen := n.indexOf[v]; seen {
			return
		}
		n.indexOf[v] = len(n.byIndex)
		n.byIndex = append(n.byIndex, v)
	}

	type frame struct {
		nbrs []string
		pos  int
	}

	for _, root := range g.Vertices() {
		if _, seen := n.indexOf[root]; seen {
			continue
		}
		assign(root)
		stack := []frame{{nbrs: g.Neighbors(root)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.pos >= len(top.nbrs) {
				stack = stack[:len(stack)-1]
				continue
			}
			nb := top.nbrs[top.pos]
			top.pos++
			if _, seen := n.indexOf[nb]; seen {
				continue
			}
			assign(nb)
			stack = append(stack, frame{nbrs: g.Neighbors(nb)})
		}
	}

	return n
}

// InDegrees returns, for every vertex in g, the number of edges (u,v) with
// v == that vertex. Szwarcfiter-Lauer uses this to pick the start vertex of
// each SCC: the vertex of maximum in-degree within it.
//
// Complexity: O(V + E).
func InDegrees(g *core.Graph) map[string]int {
	deg := make(map[string]int, g.Order())
	for _, v := range g.Vertices() {
		deg[v] = 0
	}
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			deg[v]++
		}
	}

	return deg
}
