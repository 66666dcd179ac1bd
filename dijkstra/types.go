// Package dijkstra defines result types, configuration options and sentinel
// errors for Dijkstra's single-source shortest-path algorithm.
//
// Options:
//
//	– ReturnPath:       if true, record predecessors so Result.PathTo works.
//	– MaxDistance:      optional cap; nodes farther than this stay at +Inf.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrNegativeWeight  if any edge weight is below zero.
//	– ErrOptionViolation if an option received a meaningless value.
//	– ErrPathNotTracked  if PathTo is called without WithReturnPath.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/graph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Dijkstra's result is undefined on such graphs; use bellmanford instead.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrPathNotTracked indicates PathTo was called on a result computed
	// without WithReturnPath.
	ErrPathNotTracked = errors.New("dijkstra: predecessors not recorded")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are treated as walls.
//
//	Must be > 0. Default is +Inf (no walls).
type Options struct {
	ReturnPath       bool    // Whether to record the predecessor map
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable

	err error // first option violation, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no predecessor map, no distance cap
// and no impassable edges.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithReturnPath enables the predecessor map in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Nodes whose shortest
// distance exceeds max are left at +Inf. Negative or NaN values are recorded
// as ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.fail(fmt.Errorf("%w: MaxDistance must be non-negative, got %g", ErrOptionViolation, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as
// non-traversable. Zero, negative or NaN values are recorded as ErrOptionViolation.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.fail(fmt.Errorf("%w: InfEdgeThreshold must be positive, got %g", ErrOptionViolation, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result holds the outcome of a single Dijkstra run.
//
//   - Dist: every node of the graph (and the source) → shortest distance, +Inf if unreachable.
//   - Prev: node → predecessor on one shortest path; nil unless WithReturnPath.
type Result[K comparable] struct {
	Source K
	Dist   graph.Distances[K]
	Prev   map[K]K
}

// PathTo reconstructs one shortest path from the source to target.
// Returns ErrPathNotTracked without WithReturnPath, graph.ErrNoPath if
// target is unreachable.
func (r *Result[K]) PathTo(target K) (graph.Path[K], error) {
	if r.Prev == nil {
		return nil, ErrPathNotTracked
	}

	return graph.PathTo(r.Prev, r.Source, target)
}
