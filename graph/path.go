package graph

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Path is an ordered sequence of nodes from start to goal inclusive.
// A single-element Path means start == goal.
type Path[K comparable] []K

// Len returns the number of nodes on the path.
func (p Path[K]) Len() int { return len(p) }

// Hops returns the number of edges on the path.
func (p Path[K]) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Valid reports whether every consecutive pair of p is an edge of g.
// An empty path is not valid.
func (p Path[K]) Valid(g Adjacency[K]) bool {
	if len(p) == 0 {
		return false
	}
	for i := 1; i < len(p); i++ {
		if !g.HasEdge(p[i-1], p[i]) {
			return false
		}
	}

	return true
}

// Cost sums the edge weights along p in g, using the cheapest parallel edge
// for each hop. Returns ErrMissingEdge if a hop is not an edge.
func (p Path[K]) Cost(g Weighted[K]) (float64, error) {
	var total float64
	for i := 1; i < len(p); i++ {
		w, ok := g.Weight(p[i-1], p[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v→%v", ErrMissingEdge, p[i-1], p[i])
		}
		total += w
	}

	return total, nil
}

// String renders the path as "A → B → C".
func (p Path[K]) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = fmt.Sprint(id)
	}

	return strings.Join(parts, " → ")
}

// Distances maps each node to its best known cumulative cost from a source.
// Unreachable nodes hold +Inf.
type Distances[K comparable] map[K]float64

// Reachable reports whether id has a finite distance.
func (d Distances[K]) Reachable(id K) bool {
	dist, ok := d[id]

	return ok && !math.IsInf(dist, 1)
}

// Infinite returns a Distances with every node set to +Inf.
func Infinite[K comparable](nodes []K) Distances[K] {
	d := make(Distances[K], len(nodes))
	for _, id := range nodes {
		d[id] = math.Inf(1)
	}

	return d
}

// PathTo reconstructs the path source → target by walking prev backwards
// from target. prev[v] == u means the best known path to v ends with u→v;
// source itself has no entry. Returns ErrNoPath when the chain does not
// lead back to source.
// Complexity: O(path length).
func PathTo[K comparable](prev map[K]K, source, target K) (Path[K], error) {
	if source == target {
		return Path[K]{source}, nil
	}
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %v→%v", ErrNoPath, source, target)
	}

	path := Path[K]{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: %v→%v", ErrNoPath, source, target)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}
