package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algowalk/algowalk/paths"
)

func TestBellmanFord_Validation(t *testing.T) {
	g := paths.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	_, err := paths.BellmanFord(g, "")
	assert.ErrorIs(t, err, paths.ErrEmptySource)

	_, err = paths.BellmanFord(nil, "A")
	assert.ErrorIs(t, err, paths.ErrNilGraph)

	_, err = paths.BellmanFord(g, "Z")
	assert.ErrorIs(t, err, paths.ErrVertexNotFound)
}

func TestBellmanFord_MatchesDijkstraOnNonNegative(t *testing.T) {
	g := diamond(t)

	bf, err := paths.BellmanFord(g, "A")
	require.NoError(t, err)
	dj, err := paths.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.Equal(t, finalStep(t, dj).Dist, finalStep(t, bf).Dist)
	assert.Equal(t, paths.StepDone, finalStep(t, bf).Kind)
}

func TestBellmanFord_NegativeEdgeChangesAnswer(t *testing.T) {
	// The detour A→B→C is longer hop-wise but cheaper thanks to the
	// negative edge; Dijkstra would refuse this graph outright.
	g := paths.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", -4))

	steps, err := paths.BellmanFord(g, "A")
	require.NoError(t, err)

	last := finalStep(t, steps)
	assert.Equal(t, paths.StepDone, last.Kind)
	assert.Equal(t, int64(1), last.Dist["C"])
	assert.Equal(t, "B", last.Prev["C"])

	_, err = paths.Dijkstra(g, "A")
	assert.ErrorIs(t, err, paths.ErrNegativeWeight)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := paths.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", -2))
	require.NoError(t, g.AddEdge("C", "B", -2))

	steps, err := paths.BellmanFord(g, "A")
	require.NoError(t, err)

	last := finalStep(t, steps)
	require.Equal(t, paths.StepNegativeCycle, last.Kind)

	cycleMarked := 0
	for _, m := range last.Marks {
		if m == paths.MarkCycle {
			cycleMarked++
		}
	}
	assert.GreaterOrEqual(t, cycleMarked, 1)
}

func TestBellmanFord_EarlyExit(t *testing.T) {
	// A long chain converges in one sweep when edges run in insertion
	// order, so the second sweep reports no relaxations and the run
	// stops without touching the remaining V-2 passes.
	g := paths.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "E", 1))

	steps, err := paths.BellmanFord(g, "A")
	require.NoError(t, err)

	passes := 0
	for _, st := range steps {
		if st.Kind == paths.StepPass {
			passes++
		}
	}
	assert.Equal(t, 2, passes)
	assert.Equal(t, int64(4), finalStep(t, steps).Dist["E"])
}

func TestBellmanFord_FramesAreCopies(t *testing.T) {
	g := diamond(t)
	steps, err := paths.BellmanFord(g, "A")
	require.NoError(t, err)

	assert.Equal(t, paths.Unreachable, steps[0].Dist["D"])
	assert.Equal(t, int64(3), finalStep(t, steps).Dist["D"])
}
