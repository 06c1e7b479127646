package paton

import (
	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/cycles"
)

// frontier is the minimal LIFO/FIFO abstraction the spanning-tree walk
// needs: add a vertex to explore later, and take the next one to explore.
// lifo picks a stack pop (depth-first); !lifo picks a queue dequeue
// (breadth-first).
type frontier struct {
	items []string
	lifo  bool
}

func (f *frontier) push(v string) {
	f.items = append(f.items, v)
}

func (f *frontier) pop() string {
	if f.lifo {
		n := len(f.items) - 1
		v := f.items[n]
		f.items = f.items[:n]

		return v
	}

	v := f.items[0]
	f.items = f.items[1:]

	return v
}

func (f *frontier) empty() bool {
	return len(f.items) == 0
}

// walk runs Paton's spanning-tree-plus-chords scan over every connected
// component of g, with lifo selecting which variant's frontier discipline
// to use.
//
// Steps, for each unvisited root r:
//  1. Seed parent(r) = r, used(r) = {}, and push r.
//  2. While the frontier is non-empty, take current and inspect each
//     incident edge's other endpoint (a self-loop's "other endpoint" is
//     current itself):
//     - Undiscovered neighbor: attach it to the tree (parent, used={current}),
//     push it.
//     - neighbor == current: a self-loop closes the one-element cycle
//     [current].
//     - neighbor already discovered and not in used(current): a chord —
//     close the cycle by walking current's ancestor chain back to the
//     first ancestor already in used(neighbor), or else to the first tree
//     ancestor it shares with neighbor, then record that current has now
//     been used against neighbor.
func walk(g *core.Graph, lifo bool) []cycles.Cycle {
	parent := make(map[string]string, g.Order())
	used := make(map[string]map[string]bool, g.Order())
	var out []cycles.Cycle

	for _, r := range g.Vertices() {
		if _, seen := parent[r]; seen {
			continue
		}
		parent[r] = r
		used[r] = map[string]bool{}

		f := &frontier{lifo: lifo}
		f.push(r)

		for !f.empty() {
			current := f.pop()
			for _, neighbor := range g.Neighbors(current) {
				if _, discovered := parent[neighbor]; !discovered {
					parent[neighbor] = current
					used[neighbor] = map[string]bool{current: true}
					f.push(neighbor)
				} else if neighbor == current {
					out = append(out, cycles.Cycle{current})
				} else if !used[current][neighbor] {
					out = append(out, closeChord(neighbor, current, parent, used[neighbor]))
					used[neighbor][current] = true
				}
			}
		}
	}

	return out
}

// closeChord builds the cycle [neighbor, current, parent(current),
// parent(parent(current)), ...], walking current's ancestor chain until it
// reaches the first ancestor already present in usedOfNeighbor, which it
// includes as the cycle's last element. If the chain first reaches a tree
// ancestor of neighbor instead, the cycle continues from that ancestor down
// neighbor's tree path to parent(neighbor).
func closeChord(neighbor, current string, parent map[string]string, usedOfNeighbor map[string]bool) cycles.Cycle {
	up := []string{neighbor} // neighbor, then its tree ancestors up to the root
	depth := map[string]int{neighbor: 0}
	for a := neighbor; parent[a] != a; a = parent[a] {
		depth[parent[a]] = len(up)
		up = append(up, parent[a])
	}

	cyc := cycles.Cycle{neighbor, current}
	p := current
	for {
		next := parent[p]
		if d, shared := depth[next]; shared && !usedOfNeighbor[next] {
			for i := d; i > 0; i-- {
				cyc = append(cyc, up[i])
			}
			break
		}
		cyc = append(cyc, next)
		if usedOfNeighbor[next] {
			break
		}
		p = next
	}

	return cyc
}
