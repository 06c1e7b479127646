package builder

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

const minBipartiteSide = 1

// Bipartite returns a Constructor building the complete bipartite graph
// K_{left,right}: left vertices "l0".."l{left-1}" each connected to every
// right vertex "r0".."r{right-1}".
func Bipartite(left, right int) Constructor {
	return func(g *core.Graph) error {
		if left < minBipartiteSide || right < minBipartiteSide {
			return fmt.Errorf("Bipartite: left=%d right=%d < min=%d: %w", left, right, minBipartiteSide, ErrTooFewVertices)
		}

		for i := 0; i < left; i++ {
			g.AddVertex("l" + idOf(i))
		}
		for j := 0; j < right; j++ {
			g.AddVertex("r" + idOf(j))
		}
		for i := 0; i < left; i++ {
			for j := 0; j < right; j++ {
				u, v := "l"+idOf(i), "r"+idOf(j)
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("Bipartite: AddEdge(%s,%s): %w", u, v, err)
				}
			}
		}

		return nil
	}
}
