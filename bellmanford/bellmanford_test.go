package bellmanford_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/bellmanford"
	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/dijkstra"
	"github.com/katalvlaran/pathsearch/graph"
)

func TestBellmanFord_NegativeEdges(t *testing.T) {
	g := graph.Weighted[string]{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		"B": {{To: "C", Weight: -3}},
		"C": {{To: "D", Weight: 2}},
		"D": {},
	}

	res, err := bellmanford.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, graph.Distances[string]{"A": 0, "B": 1, "C": -2, "D": 0}, res.Dist)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, graph.Path[string]{"A", "B", "C", "D"}, path)
	assert.LessOrEqual(t, res.Passes, 3)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := graph.Weighted[string]{}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "A", -2)

	res, err := bellmanford.BellmanFord(g, "A")
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	assert.NotErrorIs(t, err, graph.ErrNoPath)
	assert.Nil(t, res)
}

func TestBellmanFord_NegativeSelfLoop(t *testing.T) {
	g := graph.Weighted[string]{}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "B", -1)

	_, err := bellmanford.BellmanFord(g, "A")
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestBellmanFord_UnreachableNegativeCycleIgnored(t *testing.T) {
	g := graph.Weighted[string]{}
	g.AddEdge("A", "B", 2)
	g.AddEdge("X", "Y", 1)
	g.AddEdge("Y", "X", -5) // not reachable from A

	res, err := bellmanford.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist["B"])
	assert.True(t, math.IsInf(res.Dist["X"], 1))
	assert.True(t, math.IsInf(res.Dist["Y"], 1))

	_, err = res.PathTo("Y")
	require.ErrorIs(t, err, graph.ErrNoPath)
}

func TestBellmanFord_MissingKeysAndAbsentSource(t *testing.T) {
	// C and D only appear as targets.
	g := graph.Weighted[string]{}
	g.AddEdge("A", "C", 3)
	g.AddEdge("C", "D", -1)

	res, err := bellmanford.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist["D"])

	res, err = bellmanford.BellmanFord(g, "Q")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist["Q"])
	assert.False(t, res.Dist.Reachable("A"))

	ri, err := bellmanford.BellmanFord[int](nil, 7)
	require.NoError(t, err)
	assert.Equal(t, graph.Distances[int]{7: 0}, ri.Dist)
	assert.Zero(t, ri.Passes)
}

func TestBellmanFord_MatchesDijkstraOnNonNegativeGraphs(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.Build(
			[]builder.Constructor{builder.RandomSparse(40, 0.1)},
			builder.WithSeed(seed),
			builder.WithDirected(seed%2 == 0),
			builder.WithWeightFn(builder.IntWeight(0, 20)),
		)
		require.NoError(t, err)

		bf, err := bellmanford.BellmanFord(g, 0)
		require.NoError(t, err)
		dj, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)

		require.Len(t, bf.Dist, len(dj.Dist), "seed %d", seed)
		for id, want := range dj.Dist {
			if math.IsInf(want, 1) {
				assert.True(t, math.IsInf(bf.Dist[id], 1), "seed %d node %d", seed, id)
				continue
			}
			assert.InDelta(t, want, bf.Dist[id], 1e-9, "seed %d node %d", seed, id)
		}
	}
}
