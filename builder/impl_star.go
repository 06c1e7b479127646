package builder

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

const minStarNodes = 2

// Star returns a Constructor building a star S_n: a hub vertex "0" with an
// edge to each of n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}

		hub := idOf(0)
		g.AddVertex(hub)
		for i := 1; i < n; i++ {
			leaf := idOf(i)
			if err := g.AddEdge(hub, leaf); err != nil {
				return fmt.Errorf("Star: AddEdge(%s,%s): %w", hub, leaf, err)
			}
		}

		return nil
	}
}
