package graph

import (
	"errors"
	"math"
)

// Sentinel errors shared by the search packages.
var (
	// ErrNoPath indicates that the goal is unreachable from the start.
	// It is a normal outcome, not a fault of the input.
	ErrNoPath = errors.New("graph: no path")

	// ErrMissingEdge indicates that a hop of a Path is not an edge of the graph.
	ErrMissingEdge = errors.New("graph: missing edge")
)

// Adjacency is an unweighted graph: each node maps to its ordered outgoing
// neighbors. A node without outgoing edges may be absent from the map.
type Adjacency[K comparable] map[K][]K

// Edge is a weighted outgoing edge. Weight may be any real value; the
// individual algorithms document which signs they accept.
type Edge[K comparable] struct {
	To     K       `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Weighted is a weighted graph: each node maps to its ordered outgoing edges.
// A node without outgoing edges may be absent from the map.
type Weighted[K comparable] map[K][]Edge[K]

// AddEdge appends the directed edge from→to. The map must be non-nil.
func (a Adjacency[K]) AddEdge(from, to K) {
	a[from] = append(a[from], to)
}

// AddUndirected appends from→to and to→from.
func (a Adjacency[K]) AddUndirected(u, v K) {
	a.AddEdge(u, v)
	a.AddEdge(v, u)
}

// Neighbors returns the outgoing neighbors of id, or nil when id has none.
// The returned slice is shared with the graph and must not be modified.
// Complexity: O(1).
func (a Adjacency[K]) Neighbors(id K) []K {
	if a == nil {
		return nil
	}

	return a[id]
}

// Nodes returns every node of the graph: all keys plus every node that only
// appears as an edge target. Keys come first, then targets in discovery order.
// Complexity: O(V + E).
func (a Adjacency[K]) Nodes() []K {
	seen := make(map[K]struct{}, len(a))
	nodes := make([]K, 0, len(a))
	for id := range a {
		seen[id] = struct{}{}
		nodes = append(nodes, id)
	}
	for _, id := range nodes[:len(a)] {
		for _, to := range a[id] {
			if _, ok := seen[to]; ok {
				continue
			}
			seen[to] = struct{}{}
			nodes = append(nodes, to)
		}
	}

	return nodes
}

// Order returns the number of distinct nodes, targets included.
func (a Adjacency[K]) Order() int {
	return len(a.Nodes())
}

// EdgeCount returns the number of directed edges.
func (a Adjacency[K]) EdgeCount() int {
	n := 0
	for _, nbrs := range a {
		n += len(nbrs)
	}

	return n
}

// HasEdge reports whether from→to is an edge.
func (a Adjacency[K]) HasEdge(from, to K) bool {
	for _, v := range a.Neighbors(from) {
		if v == to {
			return true
		}
	}

	return false
}

// Reverse returns a new graph with every edge flipped. Use it to give
// bidirectional search explicit reverse adjacency on directed graphs.
// Complexity: O(V + E).
func (a Adjacency[K]) Reverse() Adjacency[K] {
	rev := make(Adjacency[K], len(a))
	for from, nbrs := range a {
		for _, to := range nbrs {
			rev[to] = append(rev[to], from)
		}
	}

	return rev
}

// AddEdge appends the directed edge from→to with the given weight.
// The map must be non-nil.
func (w Weighted[K]) AddEdge(from, to K, weight float64) {
	w[from] = append(w[from], Edge[K]{To: to, Weight: weight})
}

// AddUndirected appends u→v and v→u with the same weight.
func (w Weighted[K]) AddUndirected(u, v K, weight float64) {
	w.AddEdge(u, v, weight)
	w.AddEdge(v, u, weight)
}

// Neighbors returns the outgoing edges of id, or nil when id has none.
// The returned slice is shared with the graph and must not be modified.
func (w Weighted[K]) Neighbors(id K) []Edge[K] {
	if w == nil {
		return nil
	}

	return w[id]
}

// Nodes returns all keys plus every node that only appears as an edge target.
// Complexity: O(V + E).
func (w Weighted[K]) Nodes() []K {
	seen := make(map[K]struct{}, len(w))
	nodes := make([]K, 0, len(w))
	for id := range w {
		seen[id] = struct{}{}
		nodes = append(nodes, id)
	}
	for _, id := range nodes[:len(w)] {
		for _, e := range w[id] {
			if _, ok := seen[e.To]; ok {
				continue
			}
			seen[e.To] = struct{}{}
			nodes = append(nodes, e.To)
		}
	}

	return nodes
}

// Order returns the number of distinct nodes, targets included.
func (w Weighted[K]) Order() int {
	return len(w.Nodes())
}

// EdgeCount returns the number of directed edges.
func (w Weighted[K]) EdgeCount() int {
	n := 0
	for _, edges := range w {
		n += len(edges)
	}

	return n
}

// HasEdge reports whether from→to is an edge.
func (w Weighted[K]) HasEdge(from, to K) bool {
	_, ok := w.Weight(from, to)

	return ok
}

// Weight returns the smallest weight among the parallel edges from→to.
// ok is false when no such edge exists.
func (w Weighted[K]) Weight(from, to K) (weight float64, ok bool) {
	weight = math.Inf(1)
	for _, e := range w.Neighbors(from) {
		if e.To == to && e.Weight < weight {
			weight, ok = e.Weight, true
		}
	}

	return weight, ok
}

// HasNegativeWeight reports whether any edge weight is below zero.
func (w Weighted[K]) HasNegativeWeight() bool {
	for _, edges := range w {
		for _, e := range edges {
			if e.Weight < 0 {
				return true
			}
		}
	}

	return false
}

// Unweighted projects w onto an Adjacency, keeping edge order and dropping weights.
func (w Weighted[K]) Unweighted() Adjacency[K] {
	a := make(Adjacency[K], len(w))
	for from, edges := range w {
		nbrs := make([]K, len(edges))
		for i, e := range edges {
			nbrs[i] = e.To
		}
		a[from] = nbrs
	}

	return a
}

// Reverse returns a new weighted graph with every edge flipped.
func (w Weighted[K]) Reverse() Weighted[K] {
	rev := make(Weighted[K], len(w))
	for from, edges := range w {
		for _, e := range edges {
			rev[e.To] = append(rev[e.To], Edge[K]{To: from, Weight: e.Weight})
		}
	}

	return rev
}
