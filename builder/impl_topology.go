// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_topology.go - deterministic constructors Path, Cycle and Complete.
//
// Contract:
//   - Adds nodes 0..n-1 first, then emits edges in ascending index order.
//   - Weight policy: cfg.weightFn(cfg.rng) once per emitted edge.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Path, Cycle: O(n). Complete: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/graph"
)

// File-local constants (stable method tags for error context).
const (
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodComplete   = "Complete"
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// Path returns a Constructor for the chain 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(g graph.Weighted[int], cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		cfg.addNodes(g, n)
		for i := 0; i+1 < n; i++ {
			cfg.addEdge(g, i, i+1)
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0-1-…-(n-1)-0.
func Cycle(n int) Constructor {
	return func(g graph.Weighted[int], cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		cfg.addNodes(g, n)
		for i := 0; i < n; i++ {
			cfg.addEdge(g, i, (i+1)%n)
		}

		return nil
	}
}

// Complete returns a Constructor for K_n: every ordered pair i≠j when
// directed, every unordered pair {i<j} otherwise.
func Complete(n int) Constructor {
	return func(g graph.Weighted[int], cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		cfg.addNodes(g, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				cfg.addEdge(g, i, j)
			}
		}

		return nil
	}
}
