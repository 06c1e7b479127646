package builder

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor building the complete graph K_n: every
// ordered pair (i,j) with i != j gets an edge, in ascending (i,j) order.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(idOf(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := g.AddEdge(idOf(i), idOf(j)); err != nil {
					return fmt.Errorf("Complete: AddEdge(%s,%s): %w", idOf(i), idOf(j), err)
				}
			}
		}

		return nil
	}
}

// CompleteWithLoops is Complete, plus a self-loop on every vertex — the
// topology the specification's "complete directed graph with self-loops"
// scenarios are built from.
func CompleteWithLoops(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCompleteNodes {
			return fmt.Errorf("CompleteWithLoops: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := Complete(n)(g); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := g.AddEdge(idOf(i), idOf(i)); err != nil {
				return fmt.Errorf("CompleteWithLoops: AddEdge(%s,%s): %w", idOf(i), idOf(i), err)
			}
		}

		return nil
	}
}
