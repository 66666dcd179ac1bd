package bidirectional_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/bidirectional"
	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/graph"
)

// sample is the six-node undirected graph with edges stored both ways.
func sample() graph.Adjacency[string] {
	return graph.Adjacency[string]{
		"A": {"B", "C"},
		"B": {"A", "D", "E"},
		"C": {"A", "F"},
		"D": {"B"},
		"E": {"B", "F"},
		"F": {"C", "E"},
	}
}

func TestSearch_SampleGraph(t *testing.T) {
	path, err := bidirectional.Search(sample(), "A", "F")
	require.NoError(t, err)
	assert.Equal(t, graph.Path[string]{"A", "C", "F"}, path)
}

func TestSearch_AllPairsAreValidShortestPaths(t *testing.T) {
	g := sample()
	// Hop distances on the sample graph, computed by hand.
	want := map[[2]string]int{
		{"A", "D"}: 2, {"D", "F"}: 3, {"D", "C"}: 3, {"E", "C"}: 2, {"B", "F"}: 2, {"A", "B"}: 1,
	}
	for pair, hops := range want {
		path, err := bidirectional.Search(g, pair[0], pair[1])
		require.NoError(t, err, "%v", pair)
		assert.Equal(t, pair[0], path[0])
		assert.Equal(t, pair[1], path[len(path)-1])
		assert.True(t, path.Valid(g), "%v: %v", pair, path)
		assert.Equal(t, hops, path.Hops(), "%v: %v", pair, path)
	}
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	calls := 0
	path, err := bidirectional.Search(sample(), "D", "D",
		bidirectional.WithOnExpand(func(bidirectional.Direction, int, int) { calls++ }))
	require.NoError(t, err)
	assert.Equal(t, graph.Path[string]{"D"}, path)
	assert.Zero(t, calls, "no expansion for start == goal")
}

func TestSearch_NoPath(t *testing.T) {
	g := sample()
	g.AddUndirected("X", "Y")

	path, err := bidirectional.Search(g, "A", "Y")
	require.ErrorIs(t, err, graph.ErrNoPath)
	assert.Nil(t, path)

	// Goal unknown to the graph entirely.
	_, err = bidirectional.Search(g, "A", "Q")
	require.ErrorIs(t, err, graph.ErrNoPath)
}

func TestSearch_MeetingAtGoalAndStart(t *testing.T) {
	g := graph.Adjacency[int]{}
	g.AddUndirected(1, 2)

	path, err := bidirectional.Search(g, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, graph.Path[int]{1, 2}, path)

	path, err = bidirectional.Search(g, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, graph.Path[int]{2, 1}, path)
}

func TestSearch_StrictAlternation(t *testing.T) {
	g, err := builder.Build([]builder.Constructor{builder.Path(9)})
	require.NoError(t, err)

	var dirs []bidirectional.Direction
	path, err := bidirectional.Search(g.Unweighted(), 0, 8,
		bidirectional.WithOnExpand(func(d bidirectional.Direction, _ int, _ int) { dirs = append(dirs, d) }))
	require.NoError(t, err)
	assert.Equal(t, 9, path.Len())

	require.NotEmpty(t, dirs)
	for i, d := range dirs {
		want := bidirectional.Forward
		if i%2 == 1 {
			want = bidirectional.Backward
		}
		assert.Equal(t, want, d, "round %d", i)
	}
}

func TestSearch_DirectedGraph(t *testing.T) {
	// A→B→C with no reverse edges.
	g := graph.Adjacency[string]{"A": {"B"}, "B": {"C"}}

	// Reusing the forward adjacency backwards cannot leave C.
	_, err := bidirectional.Search(g, "A", "C")
	require.ErrorIs(t, err, graph.ErrNoPath)

	path, err := bidirectional.NewDirected(g).Search("A", "C")
	require.NoError(t, err)
	assert.Equal(t, graph.Path[string]{"A", "B", "C"}, path)
	assert.True(t, path.Valid(g))

	_, err = bidirectional.NewDirected(g).Search("C", "A")
	require.ErrorIs(t, err, graph.ErrNoPath)
}

func TestNewWithReverse_UsesSuppliedReverse(t *testing.T) {
	g := graph.Adjacency[string]{"A": {"B"}, "B": {"C"}}
	rev := graph.Adjacency[string]{"B": {"A"}, "C": {"B"}}

	path, err := bidirectional.NewWithReverse(g, rev).Search("A", "C")
	require.NoError(t, err)
	assert.Equal(t, graph.Path[string]{"A", "B", "C"}, path)

	// An empty reverse map strands the backward side at the goal.
	_, err = bidirectional.NewWithReverse(g, graph.Adjacency[string]{}).Search("A", "C")
	require.ErrorIs(t, err, graph.ErrNoPath)
}

func TestNewWithReverse_MatchesNewDirected(t *testing.T) {
	w, err := builder.Build(
		[]builder.Constructor{builder.RandomSparse(30, 0.08)},
		builder.WithSeed(9),
		builder.WithDirected(true),
	)
	require.NoError(t, err)
	g := w.Unweighted()
	supplied := bidirectional.NewWithReverse(g, g.Reverse())
	computed := bidirectional.NewDirected(g)

	for goal := 1; goal < 30; goal++ {
		want, wantErr := computed.Search(0, goal)
		got, gotErr := supplied.Search(0, goal)
		if wantErr != nil {
			require.ErrorIs(t, gotErr, graph.ErrNoPath)
			continue
		}
		require.NoError(t, gotErr)
		assert.Len(t, got, len(want), "goal %d", goal)
		assert.True(t, got.Valid(g))
	}
}

func TestSearch_DirectedRandomGraphsProduceValidPaths(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		w, err := builder.Build(
			[]builder.Constructor{builder.RandomSparse(30, 0.08)},
			builder.WithSeed(seed),
			builder.WithDirected(true),
		)
		require.NoError(t, err)
		g := w.Unweighted()
		s := bidirectional.NewDirected(g)

		for goal := 1; goal < 30; goal++ {
			path, err := s.Search(0, goal)
			if err != nil {
				require.ErrorIs(t, err, graph.ErrNoPath)
				continue
			}
			assert.Equal(t, 0, path[0])
			assert.Equal(t, goal, path[len(path)-1])
			assert.True(t, path.Valid(g), "seed %d goal %d: %v", seed, goal, path)
		}
	}
}

func TestSearch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bidirectional.Search(sample(), "A", "F", bidirectional.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "forward", bidirectional.Forward.String())
	assert.Equal(t, "backward", bidirectional.Backward.String())
}
