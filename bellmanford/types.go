// Package bellmanford defines the result type and sentinel errors for the
// Bellman-Ford single-source shortest-path algorithm.
package bellmanford

import (
	"errors"

	"github.com/katalvlaran/pathsearch/graph"
)

// ErrNegativeCycle indicates that a negative-weight cycle is reachable from
// the source, so shortest distances are undefined. It is never wrapped into
// graph.ErrNoPath: "no path" and "no shortest path" are different outcomes.
var ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle detected")

// Result holds the outcome of a Bellman-Ford run.
//
//   - Dist:   node → shortest distance from Source, +Inf if unreachable.
//   - Prev:   node → predecessor on one shortest path (Source has no entry).
//   - Passes: number of relaxation passes performed before convergence.
type Result[K comparable] struct {
	Source K
	Dist   graph.Distances[K]
	Prev   map[K]K
	Passes int
}

// PathTo reconstructs one shortest path from the source to target.
// Returns graph.ErrNoPath if target is unreachable.
func (r *Result[K]) PathTo(target K) (graph.Path[K], error) {
	return graph.PathTo(r.Prev, r.Source, target)
}
