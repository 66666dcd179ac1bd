// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost distance from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// It processes nodes in order of increasing distance using a min-heap,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable wall.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Stale heap entries are skipped when popped, never removed eagerly.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/graph"
	"github.com/katalvlaran/pathsearch/internal/pq"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Every node of g (keys and edge targets) and the source itself appear in
// Result.Dist; nodes that cannot be reached hold +Inf. A source that is not
// a key of g simply has no outgoing edges.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. No edge in g can have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[K comparable](g graph.Weighted[K], source K, opts ...Option) (*Result[K], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Pre-scan all edges to detect negative weights.
	for from, edges := range g {
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, from, e.To, e.Weight)
			}
		}
	}

	// 3) Prepare data structures.
	nodes := g.Nodes()
	r := &runner[K]{
		g:       g,
		options: cfg,
		dist:    graph.Infinite(nodes),
		visited: make(map[K]bool, len(nodes)),
		pq:      pq.New[K](len(nodes)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[K]K, len(nodes))
	}

	// 4) Seed and run the main loop.
	r.init(source)
	r.process()

	return &Result[K]{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[K comparable] struct {
	g       graph.Weighted[K]  // read-only input
	options Options            // resolved configuration
	dist    graph.Distances[K] // node → current best distance from source
	prev    map[K]K            // node → predecessor; nil unless ReturnPath
	visited map[K]bool         // finalized nodes
	pq      *pq.Queue[K]       // lazy min-heap
}

// init sets the source distance to zero and pushes it onto the heap.
func (r *runner[K]) init(source K) {
	r.dist[source] = 0
	r.pq.Push(source, 0)
}

// process repeatedly extracts the closest unfinalized node and relaxes its
// outgoing edges. It stops when the heap is empty or the smallest queued
// distance exceeds MaxDistance.
func (r *runner[K]) process() {
	for {
		top, ok := r.pq.Peek()
		if !ok || top.Priority > r.options.MaxDistance {
			break
		}
		item := r.pq.Pop()
		u, d := item.ID, item.Priority

		// Stale entry: u was already finalized with a distance ≤ d.
		if r.visited[u] || d > r.dist[u] {
			continue
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner[K]) relax(u K) {
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		// Walls are skipped entirely.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal distances keep the first predecessor.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.pq.Push(e.To, newDist)
	}
}
