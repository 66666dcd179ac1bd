// Package bidirectional provides options and hook types for bidirectional
// breadth-first search over a graph.Adjacency.
package bidirectional

import (
	"context"
)

// Direction names the side of the search being expanded.
type Direction int

const (
	// Forward expands from the start node.
	Forward Direction = iota
	// Backward expands from the goal node.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion round.
	Ctx context.Context

	// OnExpand is called before a frontier is expanded, with the direction,
	// the 1-based round number of that direction and the frontier size.
	OnExpand func(dir Direction, round, frontier int)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(Direction, int, int) {},
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

// WithOnExpand registers a callback run before each frontier expansion.
func WithOnExpand(fn func(dir Direction, round, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
