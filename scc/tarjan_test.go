package scc_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/core"
	"github.com/katalvlaran/cycles/scc"
)

// buildReciprocalPairsAndChain constructs four reciprocal vertex pairs,
// linked by one-way edges into two disjoint chains (0-1 -> 2-3 and
// 4-5 -> 6-7), plus the isolated vertex 8: nine vertices total, four
// non-trivial SCCs.
func buildReciprocalPairsAndChain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(true)
	edges := [][2]string{
		{"0", "1"}, {"1", "0"},
		{"1", "2"}, {"2", "3"}, {"3", "2"},
		{"4", "5"}, {"5", "4"},
		{"5", "6"}, {"6", "7"}, {"7", "6"},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	g.AddVertex("8")

	return g
}

func TestFindSCCs_ReciprocalPairsAndChain(t *testing.T) {
	g := buildReciprocalPairsAndChain(t)

	comps, err := scc.FindSCCs(g)
	require.NoError(t, err)
	assert.Len(t, comps, 4)

	count, err := scc.CountSCCs(g)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestFindSCCs_ReciprocalPairsAndChainCollapse(t *testing.T) {
	g := buildReciprocalPairsAndChain(t)
	require.NoError(t, g.AddEdge("2", "1"))
	require.NoError(t, g.AddEdge("7", "0"))

	comps, err := scc.FindSCCs(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0].Vertices, 8)
}

func TestFindAllSCCs_IncludesTrivialSingletons(t *testing.T) {
	g := buildReciprocalPairsAndChain(t)

	all, err := scc.FindAllSCCs(g)
	require.NoError(t, err)
	assert.Len(t, all, 5) // 4 non-trivial + vertex 8 alone

	nonTrivial, err := scc.FindSCCs(g)
	require.NoError(t, err)
	assert.Len(t, nonTrivial, 4)
}

func TestFindSCCs_SelfLoopSingletonIsNonTrivial(t *testing.T) {
	g := core.NewGraph(true)
	require.NoError(t, g.AddEdge("v", "v"))

	comps, err := scc.FindSCCs(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, []string{"v"}, comps[0].Vertices)
}

func TestFindSCCs_NilGraph(t *testing.T) {
	_, err := scc.FindSCCs(nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = scc.FindAllSCCs(nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestFindSCCs_VertexMembership(t *testing.T) {
	g := buildReciprocalPairsAndChain(t)
	comps, err := scc.FindSCCs(g)
	require.NoError(t, err)

	var all []string
	for _, c := range comps {
		all = append(all, c.Vertices...)
	}
	sort.Strings(all)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7"}, all)
}
