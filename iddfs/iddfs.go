// Package iddfs implements iterative-deepening depth-first search over a
// graph.Adjacency.
//
// For each depth limit d = 0, 1, 2, … a depth-limited DFS looks for the goal
// at exactly d edges from the start. Cycle avoidance is per path: a node is
// on the visited set only while it is on the current DFS path and is released
// on backtrack. The first limit that reaches the goal yields a path with the
// fewest hops.
//
// The DFS runs on an explicit stack of frames, so deep graphs cannot
// overflow the goroutine stack.
//
// Termination:
//
//   - If an iteration finishes without any branch being cut off by the limit,
//     the whole reachable set has been explored and graph.ErrNoPath is returned.
//   - Otherwise deepening stops at the ceiling (WithMaxDepth, or the number of
//     nodes by default) with ErrDepthExceeded.
//
// Complexity:
//
//   - Time:   O(b^d) node expansions summed over all limits, b = branching factor.
//   - Memory: O(d) for the stack and the per-path visited set.
package iddfs

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/graph"
)

// ctxCheckEvery is how many frame steps pass between context checks.
const ctxCheckEvery = 1024

// frame is one level of the explicit DFS stack.
type frame[K comparable] struct {
	node K
	next int // index of the next neighbor to try
}

// walker holds the mutable state of one Search call.
type walker[K comparable] struct {
	g     graph.Adjacency[K]
	goal  K
	opts  Options
	stack []frame[K]
	onDFS map[K]bool // nodes on the current path
	steps int
}

// Search returns a fewest-hop path from start to goal, found by iterative
// deepening. start == goal yields [start].
//
// Returns ErrOptionViolation for bad options, graph.ErrNoPath when the goal
// is provably unreachable, ErrDepthExceeded when the ceiling is hit first,
// or the context error on cancellation.
func Search[K comparable](g graph.Adjacency[K], start, goal K, opts ...Option) (graph.Path[K], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ceiling := o.MaxDepth
	if ceiling < 0 {
		ceiling = g.Order()
	}

	w := &walker[K]{
		g:     g,
		goal:  goal,
		opts:  o,
		onDFS: make(map[K]bool),
	}

	for limit := 0; limit <= ceiling; limit++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		o.OnDepth(limit)

		path, cutoff, err := w.limited(start, limit)
		if err != nil {
			return nil, err
		}
		if path != nil {
			return path, nil
		}
		if !cutoff {
			return nil, fmt.Errorf("%w: %v→%v", graph.ErrNoPath, start, goal)
		}
	}

	return nil, fmt.Errorf("%w: no path %v→%v within depth %d", ErrDepthExceeded, start, goal, ceiling)
}

// limited runs one depth-limited DFS from start. It returns the path when the
// goal sits at exactly limit edges, and reports whether any node at the limit
// still had unexplored neighbors (cutoff).
func (w *walker[K]) limited(start K, limit int) (path graph.Path[K], cutoff bool, err error) {
	w.stack = append(w.stack[:0], frame[K]{node: start})
	clear(w.onDFS)
	w.onDFS[start] = true

	for len(w.stack) > 0 {
		w.steps++
		if w.steps%ctxCheckEvery == 0 {
			if err = w.opts.Ctx.Err(); err != nil {
				return nil, false, err
			}
		}

		top := &w.stack[len(w.stack)-1]
		if len(w.stack)-1 == limit {
			if top.node == w.goal {
				return w.path(), false, nil
			}
			if w.hasFreshNeighbor(top.node) {
				cutoff = true
			}
			w.pop()
			continue
		}

		if !w.descend(top) {
			w.pop()
		}
	}

	return nil, cutoff, nil
}

// descend pushes the next neighbor of top that is not on the current path.
// It reports false when top has no such neighbor left.
func (w *walker[K]) descend(top *frame[K]) bool {
	nbrs := w.g.Neighbors(top.node)
	for top.next < len(nbrs) {
		nbr := nbrs[top.next]
		top.next++
		if w.onDFS[nbr] {
			continue
		}
		w.onDFS[nbr] = true
		w.stack = append(w.stack, frame[K]{node: nbr})

		return true
	}

	return false
}

// hasFreshNeighbor reports whether id has a neighbor off the current path,
// i.e. whether a deeper limit could explore further from here.
func (w *walker[K]) hasFreshNeighbor(id K) bool {
	for _, nbr := range w.g.Neighbors(id) {
		if !w.onDFS[nbr] {
			return true
		}
	}

	return false
}

// pop backtracks one level and releases the node from the path set.
func (w *walker[K]) pop() {
	last := w.stack[len(w.stack)-1]
	delete(w.onDFS, last.node)
	w.stack = w.stack[:len(w.stack)-1]
}

// path copies the current stack into a Path.
func (w *walker[K]) path() graph.Path[K] {
	p := make(graph.Path[K], len(w.stack))
	for i, f := range w.stack {
		p[i] = f.node
	}

	return p
}
