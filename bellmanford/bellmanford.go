// Package bellmanford implements the Bellman-Ford shortest-path algorithm on
// graph.Weighted graphs. Unlike Dijkstra it accepts negative edge weights and
// reports negative-weight cycles reachable from the source.
//
// Complexity:
//
//   - Time:  O(V·E) in the worst case, one pass over every edge per round.
//   - Space: O(V) for the distance and predecessor maps.
//
// Algorithm:
//
//  1. dist[source] = 0, dist[v] = +Inf for every other node.
//  2. Up to |V|-1 passes relax every edge u→v with dist[u] finite.
//     A pass that improves nothing ends the loop early; further passes
//     could not change any distance.
//  3. One extra pass: if any edge still improves a distance, a negative
//     cycle is reachable and ErrNegativeCycle is returned.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/graph"
)

// BellmanFord computes shortest distances from source to every node of g.
//
// Every node of g (keys and edge targets) and the source itself appear in
// Result.Dist. Missing adjacency keys mean "no outgoing edges".
//
// Returns ErrNegativeCycle, wrapped with the offending edge, when a
// negative-weight cycle is reachable from source.
func BellmanFord[K comparable](g graph.Weighted[K], source K) (*Result[K], error) {
	nodes := g.Nodes()
	dist := graph.Infinite(nodes)
	dist[source] = 0
	prev := make(map[K]K, len(nodes))

	// |V| counts the source even when it is absent from g.
	order := len(dist)

	passes := 0
	for i := 0; i < order-1; i++ {
		passes++
		if !relaxAll(g, dist, prev) {
			break
		}
	}

	// Extra pass: any remaining improvement proves a negative cycle.
	for from, edges := range g {
		if math.IsInf(dist[from], 1) {
			continue
		}
		for _, e := range edges {
			if dist[from]+e.Weight < dist[e.To] {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeCycle, from, e.To, e.Weight)
			}
		}
	}

	return &Result[K]{Source: source, Dist: dist, Prev: prev, Passes: passes}, nil
}

// relaxAll performs one full relaxation pass over every edge of g and
// reports whether any distance improved.
func relaxAll[K comparable](g graph.Weighted[K], dist graph.Distances[K], prev map[K]K) bool {
	changed := false
	for from, edges := range g {
		// +Inf + negative weight must not look like an improvement.
		if math.IsInf(dist[from], 1) {
			continue
		}
		for _, e := range edges {
			if nd := dist[from] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = from
				changed = true
			}
		}
	}

	return changed
}
