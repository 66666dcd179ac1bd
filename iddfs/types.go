// Package iddfs defines options and sentinel errors for iterative-deepening
// depth-first search.
package iddfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrDepthExceeded is returned when the depth ceiling is reached while
	// some branches were still cut off by the limit.
	ErrDepthExceeded = errors.New("iddfs: maximum depth exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("iddfs: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; checked before each depth iteration and
	// periodically during one.
	Ctx context.Context

	// MaxDepth is the deepest limit tried. A negative value selects the
	// default ceiling: the number of nodes in the graph.
	MaxDepth int

	// OnDepth is called when a new depth limit iteration starts.
	OnDepth func(limit int)

	err error
}

// DefaultOptions returns Options with a background context, the default
// depth ceiling and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		OnDepth:  func(int) {},
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

// WithMaxDepth caps the depth limit at d edges.
//
//	d ≥ 0: try limits 0..d
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnDepth registers a callback run at the start of each iteration.
func WithOnDepth(fn func(limit int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDepth = fn
		}
	}
}
