package cycles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/cycles"
)

func TestJohnson_ChordTriangleTwoCycles(t *testing.T) {
	g := buildChordTriangle(t)

	cs, err := cycles.FindSimpleCyclesJohnson(g)
	require.NoError(t, err)
	assert.Len(t, cs, 2)

	count, err := cycles.CountSimpleCyclesJohnson(g)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestJohnson_SelfLoop(t *testing.T) {
	g := core.NewGraph(true)
	require.NoError(t, g.AddEdge("a", "a"))

	cs, err := cycles.FindSimpleCyclesJohnson(g)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, cycles.Cycle{"a"}, cs[0])
}

func TestJohnson_NilGraph(t *testing.T) {
	_, err := cycles.FindSimpleCyclesJohnson(nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestJohnson_AcyclicHasNoCycles(t *testing.T) {
	g := core.NewGraph(true)
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	cs, err := cycles.FindSimpleCyclesJohnson(g)
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestJohnson_TwoDisjointTriangles(t *testing.T) {
	g := core.NewGraph(true)
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"x", "y"}, {"y", "z"}, {"z", "x"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	count, err := cycles.CountSimpleCyclesJohnson(g)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
