// Package astar defines the heuristic type, options and result of A* search.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/pathsearch/graph"
)

// ErrNilHeuristic is returned when Search is called without a heuristic.
var ErrNilHeuristic = errors.New("astar: heuristic is nil")

// Heuristic estimates the remaining cost from a node to the goal.
// Search returns an optimal path only if the estimate never exceeds the true
// remaining cost (admissible). This is not validated.
type Heuristic[K comparable] func(id K) float64

// Table adapts a precomputed estimate table to a Heuristic.
// Nodes missing from m are estimated at 0.
func Table[K comparable](m map[K]float64) Heuristic[K] {
	return func(id K) float64 {
		return m[id]
	}
}

// Zero is the trivial admissible heuristic. A* with Zero expands nodes in
// the same order as Dijkstra.
func Zero[K comparable](K) float64 { return 0 }

// Result is the outcome of a successful search.
type Result[K comparable] struct {
	Path     graph.Path[K] `json:"path" yaml:"path"`
	Cost     float64       `json:"cost" yaml:"cost"`
	Expanded int           `json:"expanded" yaml:"expanded"` // nodes popped and expanded
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds the cancellation context and hooks of a search.
type Options struct {
	// Ctx is checked periodically while the open set is processed.
	Ctx context.Context

	// OnExpand is called for each expanded node with its g- and f-score.
	OnExpand func(id any, g, f float64)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(any, float64, float64) {},
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run when a node is expanded.
// id holds the node identifier of the searched graph.
func WithOnExpand(fn func(id any, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
