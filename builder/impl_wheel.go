package builder

import (
	"fmt"

	"github.com/katalvlaran/cycles/core"
)

const minWheelNodes = 4

// Wheel returns a Constructor building a wheel W_n: a hub vertex "0" joined
// to every vertex of an (n-1)-cycle formed by the remaining vertices
// 1..n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}

		hub := idOf(0)
		g.AddVertex(hub)
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := idOf(1+i), idOf(1+(i+1)%rim)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("Wheel: AddEdge(%s,%s): %w", u, v, err)
			}
			if err := g.AddEdge(hub, u); err != nil {
				return fmt.Errorf("Wheel: AddEdge(%s,%s): %w", hub, u, err)
			}
		}

		return nil
	}
}
