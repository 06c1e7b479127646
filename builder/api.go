package builder

import (
	"strconv"

	"github.com/katalvlaran/cycles/core"
)

// Constructor applies one deterministic mutation to g. Constructors never
// panic; invalid parameters (too few vertices, for instance) are reported
// as sentinel errors from BuildGraph.
type Constructor func(g *core.Graph) error

// BuildGraph creates a new core.Graph of the requested directedness and
// applies every constructor to it in order, stopping at the first error.
func BuildGraph(directed bool, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(directed)
	for _, c := range cons {
		if err := c(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// idOf is the ID scheme every constructor in this package shares: decimal
// strings in ascending index order.
func idOf(i int) string {
	return strconv.Itoa(i)
}
