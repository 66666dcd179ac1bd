// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// config.go - internal configuration, deterministic defaults and options.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathsearch/graph"
)

// config aggregates all knobs used by constructors.
// It is passed by value to constructors.
type config struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator, called once per emitted edge (once per undirected pair).
	weightFn WeightFn
	// directed emits u→v only; otherwise u→v and v→u share one weight.
	directed bool
}

// Option customizes a config before construction begins.
type Option func(*config)

// newConfig applies options in order over deterministic defaults:
// no RNG, constant weight DefaultEdgeWeight, undirected edges.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      nil,
		weightFn: DefaultWeightFn,
		directed: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand. Use it in tests to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDirected switches between directed and undirected edge emission.
func WithDirected(directed bool) Option {
	return func(c *config) {
		c.directed = directed
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// addNodes makes 0..n-1 keys of g so isolated nodes are part of the graph.
func (c config) addNodes(g graph.Weighted[int], n int) {
	for i := 0; i < n; i++ {
		if _, ok := g[i]; !ok {
			g[i] = []graph.Edge[int]{}
		}
	}
}

// addEdge emits u→v, plus v→u with the same weight when undirected.
func (c config) addEdge(g graph.Weighted[int], u, v int) {
	w := c.weightFn(c.rng)
	if c.directed {
		g.AddEdge(u, v, w)
		return
	}
	g.AddUndirected(u, v, w)
}
