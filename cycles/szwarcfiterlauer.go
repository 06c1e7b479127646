package cycles

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/dfs"
	"github.com/katalvlaran/cycles/scc"
)

// slRound holds the per-SCC search state for one round of Szwarcfiter-Lauer.
// position and reach are indexed by integer vertex index rather than vertex
// identity, which is why the round carries its own num and why marked,
// removed and bSet stay keyed by index too — the algorithm's pruning is
// defined purely in terms of stack position, not vertex name. marked and
// reach are plain index-addressable bitsets (bits.Bits), matching how the
// pack's own graph library represents per-vertex DFS state.
type slRound struct {
	g        *core.Graph
	num      *dfs.Numbering
	marked   bits.Bits
	position []int // 1-based while active; len(position) once finalized
	reach    bits.Bits
	removed  []map[int]bool
	bSet     []map[int]bool
	stack    []int
	out      []Cycle
}

// FindSimpleCyclesSzwarcfiterLauer enumerates every simple cycle of g with
// the Szwarcfiter-Lauer algorithm: one DFS per SCC of the whole graph,
// started from the vertex of maximum in-degree within that component, with
// pruning driven by each vertex's current stack position rather than a
// separately tracked blocked set.
//
// Steps:
//  1. Partition g into non-trivial SCCs (scc.FindSCCs) and, within each,
//     pick the start vertex of maximum in-degree (ties by insertion order).
//  2. DFS from that start. Each vertex v tracks position[v] (its 1-based
//     depth on the current path while active, or |V| once finalized) and
//     reach[v] (whether v has ever been finalized before). A back-edge to
//     an active w with position[w] <= the search depth active when v's
//     subtree was entered closes a cycle: the slice of the stack from
//     position[w] through position[v], ascending, is that cycle.
//  3. A neighbor that yields no cycle is recorded in removed(v) so it is
//     never retried from v, and v is recorded in bSet(w) so that w's next
//     unmark also retries v.
//
// Complexity: O(V + E*C).
//
// Errors:
//
//	core.ErrInvalidArgument - g is nil.
func FindSimpleCyclesSzwarcfiterLauer(g *core.Graph) ([]Cycle, error) {
	if g == nil {
		return nil, core.InvalidArgument("cycles.FindSimpleCyclesSzwarcfiterLauer")
	}

	num := dfs.Number(g)
	n := num.Len()
	comps, err := scc.FindSCCs(g)
	if err != nil {
		return nil, err
	}
	inDeg := dfs.InDegrees(g)

	var out []Cycle
	for _, c := range comps {
		members := make(map[string]bool, len(c.Vertices))
		for _, v := range c.Vertices {
			members[v] = true
		}

		start := ""
		for _, v := range g.Vertices() {
			if members[v] && (start == "" || inDeg[v] > inDeg[start]) {
				start = v
			}
		}

		r := &slRound{
			g:        g,
			num:      num,
			marked:   bits.New(n),
			position: make([]int, n),
			reach:    bits.New(n),
			removed:  make([]map[int]bool, n),
			bSet:     make([]map[int]bool, n),
		}
		r.restrictTo(members)
		r.cycle(num.Index(start), 0)
		out = append(out, r.out...)
	}

	return out, nil
}

// restrictTo treats every vertex outside members as permanently removed, so
// cycle() never walks a neighbor outside the current SCC.
func (r *slRound) restrictTo(members map[string]bool) {
	for i := 0; i < r.num.Len(); i++ {
		v := r.num.Vertex(i)
		if members[v] {
			continue
		}
		r.removed[i] = map[int]bool{-1: true} // sentinel: this whole index is out of bounds
	}
}

func (r *slRound) inBounds(i int) bool {
	return !(r.removed[i] != nil && r.removed[i][-1])
}

func (r *slRound) cycle(v, q int) bool {
	r.marked.SetBit(v, 1)
	r.stack = append(r.stack, v)
	t := len(r.stack)
	r.position[v] = t
	if r.reach.Bit(v) == 0 {
		q = t
	}

	foundCycle := false
	for _, wName := range r.g.Neighbors(r.num.Vertex(v)) {
		w := r.num.Index(wName)
		if w < 0 || !r.inBounds(w) {
			continue
		}
		if r.removed[v] != nil && r.removed[v][w] {
			continue
		}
		if r.marked.Bit(w) == 0 {
			if r.cycle(w, q) {
				foundCycle = true
			} else {
				r.noCycle(v, w)
			}
		} else if r.position[w] <= q {
			foundCycle = true
			cyc := make(Cycle, 0, r.position[v]-r.position[w]+1)
			for p := r.position[w]; p <= r.position[v]; p++ {
				cyc = append(cyc, r.num.Vertex(r.stack[p-1]))
			}
			r.out = append(r.out, cyc)
		} else {
			r.noCycle(v, w)
		}
	}

	r.stack = r.stack[:len(r.stack)-1]
	if foundCycle {
		r.unmark(v)
	}
	r.reach.SetBit(v, 1)
	r.position[v] = r.num.Len()

	return foundCycle
}

func (r *slRound) noCycle(x, y int) {
	if r.bSet[y] == nil {
		r.bSet[y] = make(map[int]bool)
	}
	r.bSet[y][x] = true
	if r.removed[x] == nil {
		r.removed[x] = make(map[int]bool)
	}
	r.removed[x][y] = true
}

func (r *slRound) unmark(x int) {
	r.marked.SetBit(x, 0)
	for y := range r.bSet[x] {
		delete(r.removed[y], x)
		if r.marked.Bit(y) != 0 {
			r.unmark(y)
		}
	}
	r.bSet[x] = nil
}

// CountSimpleCyclesSzwarcfiterLauer is FindSimpleCyclesSzwarcfiterLauer, but
// returns only the count.
func CountSimpleCyclesSzwarcfiterLauer(g *core.Graph) (int, error) {
	cs, err := FindSimpleCyclesSzwarcfiterLauer(g)
	if err != nil {
		return 0, err
	}

	return len(cs), nil
}
