// Package builder_test verifies topology, counts, determinism and
// validation errors of every Constructor.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/graph"
)

func TestBuild_Topologies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctor     builder.Constructor
		directed bool
		wantV    int
		wantE    int // directed edges stored in the map
		check    func(t *testing.T, g graph.Weighted[int])
	}{
		{
			name: "Path(4) undirected", ctor: builder.Path(4),
			wantV: 4, wantE: 6,
			check: func(t *testing.T, g graph.Weighted[int]) {
				assert.True(t, g.HasEdge(2, 3))
				assert.True(t, g.HasEdge(3, 2))
			},
		},
		{
			name: "Path(1)", ctor: builder.Path(1),
			wantV: 1, wantE: 0,
		},
		{
			name: "Cycle(5) directed", ctor: builder.Cycle(5), directed: true,
			wantV: 5, wantE: 5,
			check: func(t *testing.T, g graph.Weighted[int]) {
				assert.True(t, g.HasEdge(4, 0))
				assert.False(t, g.HasEdge(0, 4))
			},
		},
		{
			name: "Complete(4) undirected", ctor: builder.Complete(4),
			wantV: 4, wantE: 12,
		},
		{
			name: "Complete(4) directed", ctor: builder.Complete(4), directed: true,
			wantV: 4, wantE: 12,
		},
		{
			name: "RandomSparse p=0", ctor: builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
		{
			name: "RandomSparse p=1 directed", ctor: builder.RandomSparse(4, 1), directed: true,
			wantV: 4, wantE: 12,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build([]builder.Constructor{tc.ctor}, builder.WithDirected(tc.directed))
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for from, edges := range g {
				for _, e := range edges {
					assert.Equal(t, builder.DefaultEdgeWeight, e.Weight, "%d→%d", from, e.To)
				}
			}
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse p>1", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse p<0", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build([]builder.Constructor{tc.ctor})
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestBuild_RandomSparseDeterministic(t *testing.T) {
	build := func(seed int64) graph.Weighted[int] {
		g, err := builder.Build(
			[]builder.Constructor{builder.RandomSparse(30, 0.2)},
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.IntWeight(1, 9)),
		)
		require.NoError(t, err)
		return g
	}

	a, b := build(11), build(11)
	assert.Equal(t, a, b, "same seed must yield the same graph")

	for _, edges := range a {
		for _, e := range edges {
			assert.GreaterOrEqual(t, e.Weight, 1.0)
			assert.LessOrEqual(t, e.Weight, 9.0)
		}
	}
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, -2.0, builder.ConstantWeight(-2)(nil))
	assert.Equal(t, 3.0, builder.UniformWeight(3, 8)(nil))
	assert.Equal(t, 4.0, builder.IntWeight(4, 6)(nil))
	assert.Panics(t, func() { builder.UniformWeight(2, 1) })
	assert.Panics(t, func() { builder.IntWeight(2, 1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
