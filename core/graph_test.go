package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/core"
)

func TestGraph_InsertionOrder(t *testing.T) {
	g := core.NewGraph(true)
	require.NoError(t, g.AddEdge("c", "a"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	// Vertices() must reflect the order vertices were first touched, not
	// lexicographic order: c, a, b.
	assert.Equal(t, []string{"c", "a", "b"}, g.Vertices())
	assert.Equal(t, 3, g.Order())
}

func TestGraph_DirectedNeighbors(t *testing.T) {
	g := core.NewGraph(true)
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "c"))

	assert.Equal(t, []string{"b", "c"}, g.Neighbors("a"))
	assert.Empty(t, g.Neighbors("b"))
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
}

func TestGraph_UndirectedMirrorsAndSelfLoopOnce(t *testing.T) {
	g := core.NewGraph(false)
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "a"))

	assert.Equal(t, []string{"b", "a"}, g.Neighbors("a"))
	assert.Equal(t, []string{"a"}, g.Neighbors("b"))
	assert.True(t, g.HasEdge("b", "a"))
}

func TestGraph_MultiEdgeCoalescesSilently(t *testing.T) {
	g := core.NewGraph(true)
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "b"))

	assert.Equal(t, []string{"b"}, g.Neighbors("a"))
}

func TestGraph_AddEdgeEmptyID(t *testing.T) {
	g := core.NewGraph(true)
	err := g.AddEdge("", "b")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestInvalidArgument_WrapsSentinel(t *testing.T) {
	err := core.InvalidArgument("scc.FindSCCs")
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "scc.FindSCCs")
}
