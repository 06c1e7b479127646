package cycles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/cycles"
)

func TestSzwarcfiterLauer_ChordTriangleTwoCycles(t *testing.T) {
	g := buildChordTriangle(t)

	cs, err := cycles.FindSimpleCyclesSzwarcfiterLauer(g)
	require.NoError(t, err)
	assert.Len(t, cs, 2)

	count, err := cycles.CountSimpleCyclesSzwarcfiterLauer(g)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSzwarcfiterLauer_SelfLoop(t *testing.T) {
	g := core.NewGraph(true)
	require.NoError(t, g.AddEdge("a", "a"))

	cs, err := cycles.FindSimpleCyclesSzwarcfiterLauer(g)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, cycles.Cycle{"a"}, cs[0])
}

func TestSzwarcfiterLauer_NilGraph(t *testing.T) {
	_, err := cycles.FindSimpleCyclesSzwarcfiterLauer(nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestSzwarcfiterLauer_AcyclicHasNoCycles(t *testing.T) {
	g := core.NewGraph(true)
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	cs, err := cycles.FindSimpleCyclesSzwarcfiterLauer(g)
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestSzwarcfiterLauer_AscendingSliceOrder(t *testing.T) {
	// Regression test for the documented source ambiguity (spec 4.6): the
	// emitted cycle must run from the earlier back-edge target through the
	// current vertex in ascending stack order, not reversed.
	g := core.NewGraph(true)
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "0"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	cs, err := cycles.FindSimpleCyclesSzwarcfiterLauer(g)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, cycles.Cycle{"0", "1", "2"}, cs[0])
}
