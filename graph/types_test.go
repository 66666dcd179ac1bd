package graph_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/graph"
)

func TestAdjacency_MissingKeyHasNoEdges(t *testing.T) {
	g := graph.Adjacency[string]{"A": {"B"}}
	assert.Empty(t, g.Neighbors("B"), "B is only a target")
	assert.Empty(t, g.Neighbors("Z"), "Z is unknown")

	var nilGraph graph.Adjacency[string]
	assert.Empty(t, nilGraph.Neighbors("A"))
	assert.Empty(t, nilGraph.Nodes())
	assert.Zero(t, nilGraph.EdgeCount())
}

func TestAdjacency_NodesIncludesTargets(t *testing.T) {
	g := graph.Adjacency[string]{
		"A": {"B", "C"},
		"B": {"D"},
	}
	nodes := g.Nodes()
	sort.Strings(nodes)
	assert.Equal(t, []string{"A", "B", "C", "D"}, nodes)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestAdjacency_AddUndirectedAndReverse(t *testing.T) {
	g := graph.Adjacency[int]{}
	g.AddUndirected(1, 2)
	g.AddEdge(2, 3)

	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(3, 2))

	rev := g.Reverse()
	assert.True(t, rev.HasEdge(3, 2))
	assert.False(t, rev.HasEdge(2, 3))
	assert.Equal(t, g.EdgeCount(), rev.EdgeCount())
}

func TestWeighted_WeightPicksCheapestParallelEdge(t *testing.T) {
	w := graph.Weighted[string]{}
	w.AddEdge("A", "B", 5)
	w.AddEdge("A", "B", 2)
	w.AddEdge("A", "C", -1)

	got, ok := w.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, 2.0, got)

	_, ok = w.Weight("B", "A")
	assert.False(t, ok)
	assert.True(t, w.HasNegativeWeight())
	assert.Equal(t, 3, w.Order())
}

func TestWeighted_UnweightedKeepsOrder(t *testing.T) {
	w := graph.Weighted[string]{
		"A": {{To: "C", Weight: 4}, {To: "B", Weight: 1}},
	}
	a := w.Unweighted()
	assert.Equal(t, []string{"C", "B"}, a.Neighbors("A"))

	rev := w.Reverse()
	weight, ok := rev.Weight("C", "A")
	require.True(t, ok)
	assert.Equal(t, 4.0, weight)
}

func TestDistances_Reachable(t *testing.T) {
	d := graph.Infinite([]string{"A", "B"})
	d["A"] = 0
	assert.True(t, d.Reachable("A"))
	assert.False(t, d.Reachable("B"))
	assert.False(t, d.Reachable("C"))
	assert.True(t, math.IsInf(d["B"], 1))
}
