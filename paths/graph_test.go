package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algowalk/algowalk/paths"
)

func TestGraph_EmptyIDsRejected(t *testing.T) {
	g := paths.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), paths.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("", "B", 1), paths.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 1), paths.ErrEmptyVertexID)
}

func TestGraph_InsertionOrderPreserved(t *testing.T) {
	g := paths.NewGraph()
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddEdge("B", "A", 1))
	require.NoError(t, g.AddVertex("B")) // re-add is a no-op

	assert.Equal(t, []string{"C", "A", "B"}, g.Vertices())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("Z"))
}

func TestGraph_EdgesGroupedBySource(t *testing.T) {
	g := paths.NewGraph()
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "A", 3))

	edges := g.Edges()
	require.Len(t, edges, 3)
	// B registered first, so both of its edges come before A's.
	assert.Equal(t, paths.Edge{From: "B", To: "C", Weight: 2}, edges[0])
	assert.Equal(t, paths.Edge{From: "B", To: "A", Weight: 3}, edges[1])
	assert.Equal(t, paths.Edge{From: "A", To: "B", Weight: 1}, edges[2])
}

func TestGraph_NeighborsAreCopies(t *testing.T) {
	g := paths.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	n := g.Neighbors("A")
	n[0].Weight = 99
	assert.Equal(t, int64(1), g.Neighbors("A")[0].Weight)
}
