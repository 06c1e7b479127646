package scc

import "github.com/katalvlaran/cycles/core"

// FindAllSCCs returns every strongly connected component of g, including
// trivial singletons with no self-loop.
//
// Complexity: O(V + E).
func FindAllSCCs(g *core.Graph) ([]Component, error) {
	if g == nil {
		return nil, core.InvalidArgument("scc.FindAllSCCs")
	}

	return runTarjan(g), nil
}

// CountAllSCCs is FindAllSCCs, but returns only the count.
func CountAllSCCs(g *core.Graph) (int, error) {
	comps, err := FindAllSCCs(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// FindSCCs returns every non-trivial strongly connected component of g: a
// component is included iff it contains at least one cycle (size >= 2, or a
// singleton {v} with edge (v,v)).
//
// Complexity: O(V + E).
func FindSCCs(g *core.Graph) ([]Component, error) {
	if g == nil {
		return nil, core.InvalidArgument("scc.FindSCCs")
	}

	all := runTarjan(g)
	out := make([]Component, 0, len(all))
	for _, c := range all {
		if isNonTrivial(g, c) {
			out = append(out, c)
		}
	}

	return out, nil
}

// CountSCCs is FindSCCs, but returns only the count.
func CountSCCs(g *core.Graph) (int, error) {
	comps, err := FindSCCs(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}
