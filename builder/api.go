// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// api.go - public entry point for the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/graph"
)

// Constructor applies a deterministic mutation to g using the resolved
// config. Constructors validate parameters early, return sentinel errors,
// and preserve determinism for the same config and call order.
type Constructor func(g graph.Weighted[int], cfg config) error

// Build creates an empty graph, resolves the configuration from opts, and
// applies every constructor in order. The first constructor error is wrapped
// with "Build: %w" and returned; callers branch with errors.Is.
//
// Complexity: O(len(opts)) plus the cost of each constructor.
func Build(cons []Constructor, opts ...Option) (graph.Weighted[int], error) {
	g := make(graph.Weighted[int])
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
