// Package astar implements A* search: a weighted shortest-path search guided
// by a heuristic estimate of the remaining cost to the goal.
//
// Each node carries a g-score (best known cost from the start) and an f-score
// (g-score plus heuristic). The open set is a min-heap ordered by f-score;
// popping the goal ends the search.
//
// Stale heap entries (pushed before a better g-score was found) are skipped
// when popped. A node whose g-score improves after it was expanded is pushed
// again and re-expanded, so inconsistent but admissible heuristics still give
// optimal paths.
//
// Complexity: O((V + E) log V) with a consistent heuristic; re-expansion may
// add work for inconsistent ones.
package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/graph"
	"github.com/katalvlaran/pathsearch/internal/pq"
)

// ctxCheckEvery is how many pops pass between context checks.
const ctxCheckEvery = 256

// Search returns a least-cost path from start to goal in g.
// start == goal yields [start] with cost 0.
//
// Errors: ErrNilHeuristic, graph.ErrNoPath when the open set empties before
// goal is popped, or the context error on cancellation.
func Search[K comparable](g graph.Weighted[K], start, goal K, h Heuristic[K], opts ...Option) (*Result[K], error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &search[K]{
		g:     g,
		h:     h,
		opts:  o,
		gs:    map[K]float64{start: 0},
		fs:    map[K]float64{start: h(start)},
		prev:  make(map[K]K),
		queue: pq.New[K](g.Order()),
	}
	s.queue.Push(start, s.fs[start])

	found, err := s.run(goal)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %v→%v", graph.ErrNoPath, start, goal)
	}

	path, err := graph.PathTo(s.prev, start, goal)
	if err != nil {
		return nil, err
	}

	return &Result[K]{Path: path, Cost: s.gs[goal], Expanded: s.expanded}, nil
}

// search holds the mutable state of one Search call.
type search[K comparable] struct {
	g        graph.Weighted[K]
	h        Heuristic[K]
	opts     Options
	gs       map[K]float64 // g-scores; missing means +Inf
	fs       map[K]float64 // f-score of the live heap entry per node
	prev     map[K]K
	queue    *pq.Queue[K]
	expanded int
}

// run processes the open set until goal is popped or the set is empty.
func (s *search[K]) run(goal K) (bool, error) {
	for pops := 0; s.queue.Len() > 0; pops++ {
		if pops%ctxCheckEvery == 0 {
			if err := s.opts.Ctx.Err(); err != nil {
				return false, err
			}
		}

		item := s.queue.Pop()
		u := item.ID
		// Stale: a cheaper entry for u was pushed after this one.
		if item.Priority > s.fs[u] {
			continue
		}
		if u == goal {
			return true, nil
		}

		s.expanded++
		s.opts.OnExpand(u, s.gs[u], s.fs[u])
		s.relax(u)
	}

	return false, nil
}

// relax pushes every neighbor of u whose g-score improves through u.
func (s *search[K]) relax(u K) {
	gu := s.gs[u]
	for _, e := range s.g.Neighbors(u) {
		tentative := gu + e.Weight
		if !(tentative < s.score(e.To)) {
			continue
		}
		s.prev[e.To] = u
		s.gs[e.To] = tentative
		s.fs[e.To] = tentative + s.h(e.To)
		s.queue.Push(e.To, s.fs[e.To])
	}
}

// score returns the g-score of id, +Inf if it was never reached.
func (s *search[K]) score(id K) float64 {
	if v, ok := s.gs[id]; ok {
		return v
	}

	return math.Inf(1)
}
