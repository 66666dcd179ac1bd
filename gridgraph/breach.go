package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/pathsearch/graph"
)

// Breach finds a route from a to b that crosses the fewest walls.
// Entering a passable cell costs 0 and entering a wall costs 1, so the
// returned cost is the number of walls that must be removed for b to become
// reachable from a. Cost 0 means the cells are already connected.
//
// Behavior:
//  1. Validate both points (ErrOutOfBounds).
//  2. 0-1 BFS from a: cost-0 moves go to the front of the deque, cost-1
//     moves to the back.
//  3. Stop when b is popped and rebuild the route from predecessors.
//
// Time: O(W·H·d). Memory: O(W·H).
func (g *Grid) Breach(a, b Point) (path graph.Path[Point], walls int, err error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil, 0, fmt.Errorf("%w: %v→%v in %dx%d grid", ErrOutOfBounds, a, b, g.Width, g.Height)
	}

	n := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.index(a), g.index(b)
	dist[src] = g.wallCost(a)
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		up := g.point(u)
		for _, d := range g.offsets {
			vp := Point{X: up.X + d[0], Y: up.Y + d[1]}
			if !g.InBounds(vp) {
				continue
			}
			v := g.index(vp)
			step := g.wallCost(vp)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := dst; at >= 0; at = prev[at] {
		path = append(path, g.point(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

// wallCost is 1 for a wall cell and 0 for a passable one.
func (g *Grid) wallCost(p Point) int {
	if g.Cells[p.Y][p.X] < g.Threshold {
		return 1
	}

	return 0
}
