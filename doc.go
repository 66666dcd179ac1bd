// Package pathsearch is a small family of path-finding algorithms over
// in-memory graphs, sharing one graph model.
//
// What is in the box?
//
//   - graph: Adjacency[K] and Weighted[K] maps, Path, Distances, path reconstruction
//   - bidirectional: bidirectional BFS, two frontiers meeting in the middle
//   - iddfs: iterative-deepening DFS on an explicit stack, with a depth ceiling
//   - dijkstra: single-source distances for non-negative weights
//   - bellmanford: single-source distances with negative-cycle detection
//   - astar: heuristic-guided shortest path
//   - gridgraph: 2D grids as graphs, plus Manhattan/Chebyshev/Octile/Euclidean heuristics
//   - builder: seeded graph fixtures (Path, Cycle, Complete, RandomSparse)
//
// Node identifiers are any comparable type. A node with no outgoing edges
// may be missing from the map; every lookup treats it as "no edges".
//
// Quick ASCII example:
//
//	A───B───D
//	│   │
//	C   E
//	 ╲ ╱
//	  F
//
//	g := graph.Adjacency[string]{}
//	g.AddUndirected("A", "B") // … and the rest
//	path, err := bidirectional.Search(g, "A", "F") // A → C → F
//
// Failures are sentinel errors checked with errors.Is: graph.ErrNoPath,
// iddfs.ErrDepthExceeded, dijkstra.ErrNegativeWeight and
// bellmanford.ErrNegativeCycle. Unreachable nodes in a distance map hold +Inf.
//
// The pathsearch command (cmd/pathsearch) runs every algorithm on built-in
// graphs:
//
//	go run ./cmd/pathsearch demo
package pathsearch
