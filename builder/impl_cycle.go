package builder

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

const minCycleNodes = 1

// Cycle returns a Constructor building an n-vertex ring C_n: edges
// i -> (i+1 mod n) for i = 0..n-1. n == 1 yields a single self-loop.
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(idOf(i))
		}
		for i := 0; i < n; i++ {
			u, v := idOf(i), idOf((i+1)%n)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%s,%s): %w", u, v, err)
			}
		}

		return nil
	}
}
