// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over graph.Weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum cumulative cost from one source to every
//     node of the graph in O((V + E) log V) time.
//   - A min-heap (internal/pq) always expands the next-closest node.
//   - Unreachable nodes keep a distance of +Inf; that is a normal outcome.
//
// When to use:
//
//   - Static weighted graphs whose weights are all ≥ 0.
//   - For negative weights use package bellmanford, which also detects
//     negative cycles.
//   - For a single goal with a good heuristic use package astar.
//
// Key features:
//
//   - Functional options keep the call signature small.
//   - ReturnPath: record predecessors so Result.PathTo can rebuild paths.
//   - MaxDistance: stop exploring beyond a distance budget.
//   - InfEdgeThreshold: treat heavy edges as walls.
//
// Negative weights:
//
//	Dijkstra's greedy order is only correct when no edge is negative. Instead
//	of silently returning non-minimal distances, Dijkstra scans every edge
//	first and returns ErrNegativeWeight.
//
// Stale entries:
//
//	Improved distances are pushed as new heap entries; outdated entries are
//	recognised when popped (the node is already finalized or its recorded
//	distance is smaller) and skipped.
//
// Usage:
//
//	g := graph.Weighted[string]{}
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.PathTo("C")
//	fmt.Println(res.Dist["C"], path) // 3 A → B → C
package dijkstra
