package paton

import (
	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/cycles"
)

// PatonCycleBase returns a fundamental cycle base of g: one cycle per chord
// edge of a depth-first spanning tree of each connected component, size
// |E| - |V| + (components).
//
// Complexity: O(V + E).
//
// Errors:
//
//	core.ErrInvalidArgument - g is nil.
func PatonCycleBase(g *core.Graph) ([]cycles.Cycle, error) {
	if g == nil {
		return nil, core.InvalidArgument("paton.PatonCycleBase")
	}

	return walk(g, true), nil
}

// CountPatonCycleBase is PatonCycleBase, but returns only the count.
func CountPatonCycleBase(g *core.Graph) (int, error) {
	cs, err := PatonCycleBase(g)
	if err != nil {
		return 0, err
	}

	return len(cs), nil
}

// PatonSimpleCycles returns the fundamental cycles of g relative to a
// breadth-first spanning tree of each connected component: the same chord-
// closing scan as PatonCycleBase but with a FIFO frontier, which yields the
// same number of cycles, in general different ones. This is NOT the full set
// of simple cycles of g — size is |E| - |V| + (components); a complete
// enumeration would require XOR-combining subsets of this base, which this
// package does not do.
//
// Complexity: O(V + E).
//
// Errors:
//
//	core.ErrInvalidArgument - g is nil.
func PatonSimpleCycles(g *core.Graph) ([]cycles.Cycle, error) {
	if g == nil {
		return nil, core.InvalidArgument("paton.PatonSimpleCycles")
	}

	return walk(g, false), nil
}

// CountPatonSimpleCycles is PatonSimpleCycles, but returns only the count.
func CountPatonSimpleCycles(g *core.Graph) (int, error) {
	cs, err := PatonSimpleCycles(g)
	if err != nil {
		return 0, err
	}

	return len(cs), nil
}
