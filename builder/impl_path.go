package builder

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

const minPathNodes = 2

// Path returns a Constructor building a simple path P_n: edges
// (i-1) -> i for i = 1..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(idOf(i))
		}
		for i := 1; i < n; i++ {
			u, v := idOf(i-1), idOf(i)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("Path: AddEdge(%s,%s): %w", u, v, err)
			}
		}

		return nil
	}
}
