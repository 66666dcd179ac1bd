package bidirectional

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/graph"
)

// Searcher runs bidirectional searches over one graph. It holds no state
// between searches, so a single Searcher may serve concurrent callers as
// long as the graph is not mutated.
type Searcher[K comparable] struct {
	fwd  graph.Adjacency[K] // adjacency followed from the start
	bwd  graph.Adjacency[K] // adjacency followed from the goal
	opts Options
}

// New returns a Searcher that expands both directions over g. This is only
// correct for undirected graphs (every edge stored both ways); use
// NewDirected for directed graphs.
func New[K comparable](g graph.Adjacency[K], opts ...Option) *Searcher[K] {
	return newSearcher(g, g, opts)
}

// NewDirected returns a Searcher whose backward direction follows the
// reverse adjacency of g, computed once here in O(V + E).
func NewDirected[K comparable](g graph.Adjacency[K], opts ...Option) *Searcher[K] {
	return newSearcher(g, g.Reverse(), opts)
}

// NewWithReverse returns a Searcher whose backward direction follows rev, a
// caller-supplied reverse adjacency of g. rev must hold v→u for every edge
// u→v of g; it is not checked.
func NewWithReverse[K comparable](g, rev graph.Adjacency[K], opts ...Option) *Searcher[K] {
	return newSearcher(g, rev, opts)
}

func newSearcher[K comparable](fwd, bwd graph.Adjacency[K], opts []Option) *Searcher[K] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Searcher[K]{fwd: fwd, bwd: bwd, opts: o}
}

// Search is shorthand for New(g, opts...).Search(start, goal).
func Search[K comparable](g graph.Adjacency[K], start, goal K, opts ...Option) (graph.Path[K], error) {
	return New(g, opts...).Search(start, goal)
}

// side is the mutable state of one search direction.
type side[K comparable] struct {
	dir      Direction
	adj      graph.Adjacency[K]
	origin   K
	frontier []K
	visited  map[K]K // node → discovery predecessor; origin maps to itself
	rounds   int
}

func newSide[K comparable](dir Direction, adj graph.Adjacency[K], origin K) *side[K] {
	return &side[K]{
		dir:      dir,
		adj:      adj,
		origin:   origin,
		frontier: []K{origin},
		visited:  map[K]K{origin: origin},
	}
}

// Search returns a shortest-hop path from start to goal.
//
// The two directions alternate strictly, forward round first. Each round
// expands the whole current frontier of one direction by one hop. The search
// stops as soon as a scanned neighbor is already known to the other
// direction.
//
// Returns graph.ErrNoPath (wrapped) when either frontier empties without a
// meeting, or the context error on cancellation.
func (s *Searcher[K]) Search(start, goal K) (graph.Path[K], error) {
	if start == goal {
		return graph.Path[K]{start}, nil
	}

	fwd := newSide(Forward, s.fwd, start)
	bwd := newSide(Backward, s.bwd, goal)

	for len(fwd.frontier) > 0 && len(bwd.frontier) > 0 {
		if err := s.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if meet, ok := s.expand(fwd, bwd); ok {
			return reconstruct(fwd, bwd, meet), nil
		}
		if meet, ok := s.expand(bwd, fwd); ok {
			return reconstruct(fwd, bwd, meet), nil
		}
	}

	return nil, fmt.Errorf("%w: %v→%v", graph.ErrNoPath, start, goal)
}

// expand advances this by one hop and replaces its frontier with the newly
// discovered nodes. It reports the meeting node as soon as a neighbor is in
// other.visited.
func (s *Searcher[K]) expand(this, other *side[K]) (meet K, found bool) {
	this.rounds++
	s.opts.OnExpand(this.dir, this.rounds, len(this.frontier))

	next := make([]K, 0, len(this.frontier))
	for _, node := range this.frontier {
		for _, nbr := range this.adj.Neighbors(node) {
			if _, seen := this.visited[nbr]; !seen {
				this.visited[nbr] = node
				next = append(next, nbr)
			}
			if _, ok := other.visited[nbr]; ok {
				return nbr, true
			}
		}
	}
	this.frontier = next

	return meet, false
}

// reconstruct joins start→meet (forward map, reversed) with meet→goal
// (backward map). meet appears exactly once.
func reconstruct[K comparable](fwd, bwd *side[K], meet K) graph.Path[K] {
	var path graph.Path[K]
	for cur := meet; ; cur = fwd.visited[cur] {
		path = append(path, cur)
		if cur == fwd.origin {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if meet == bwd.origin {
		return path
	}
	for cur := bwd.visited[meet]; ; cur = bwd.visited[cur] {
		path = append(path, cur)
		if cur == bwd.origin {
			break
		}
	}

	return path
}
