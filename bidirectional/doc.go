// Package bidirectional implements bidirectional breadth-first search: two
// simultaneous BFS expansions, one rooted at the start and one at the goal,
// that stop as soon as they meet.
//
// What
//
//   - Forward and backward rounds alternate strictly.
//   - Each round expands the full frontier of one direction by one hop and
//     replaces that frontier with the nodes it newly discovered.
//   - Every scanned neighbor is checked against the other direction's
//     visited map; the first hit ends the search immediately.
//   - The path is start→meeting node (forward predecessors) followed by
//     meeting node→goal (backward predecessors).
//
// Why
//
//	With branching factor b and distance d, each direction only reaches
//	depth about d/2, so the work is O(b^(d/2)) per side instead of O(b^d).
//
// Directed graphs
//
//	New reuses the forward adjacency for the backward direction. That is
//	only correct for undirected graphs, where every edge is stored both
//	ways. On a directed graph the backward side would walk edges the wrong
//	way and may miss paths. NewDirected builds the reverse adjacency once
//	and expands the backward side over it.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) worst case
//   - Memory: O(V) for the two visited maps and frontiers
//
// Usage
//
//	path, err := bidirectional.Search(g, "A", "F")
//	if errors.Is(err, graph.ErrNoPath) {
//	    // unreachable
//	}
//
//	s := bidirectional.NewDirected(dg, bidirectional.WithContext(ctx))
//	path, err = s.Search("src", "dst")
//
// Errors
//
//   - graph.ErrNoPath  if the goal cannot be reached.
//   - ctx.Err()        if the context is cancelled.
package bidirectional
