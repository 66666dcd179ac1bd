// Package graph defines the in-memory graph model shared by every search
// package of pathsearch: unweighted and weighted adjacency maps, paths,
// distance maps and predecessor-based path reconstruction.
//
// What
//
//   - Adjacency[K]: node → ordered outgoing neighbors (unweighted).
//   - Weighted[K]:  node → ordered outgoing Edge{To, Weight} (weighted).
//   - Path[K]:      ordered node sequence from start to goal inclusive.
//   - Distances[K]: node → best known cumulative cost (+Inf when unreachable).
//
// Node identifiers are any comparable Go type: strings, integers, or small
// structs such as gridgraph.Point. No ordering between identifiers is assumed.
//
// Missing keys
//
//	A node without outgoing edges may be absent from the key set. Every lookup
//	in this package treats a missing key (and a nil map) as "no edges", so a
//	node referenced only as an edge target is still a valid search endpoint.
//
// Ownership
//
//	Graph values are plain maps owned by the caller. The search packages only
//	read them; concurrent searches over the same graph are safe as long as no
//	goroutine mutates it during a search.
//
// Errors
//
//   - ErrNoPath       if no path connects the requested endpoints.
//   - ErrMissingEdge  if a Path hop is not an edge of the graph.
//
// Usage
//
//	g := graph.Adjacency[string]{}
//	g.AddUndirected("A", "B")
//	g.AddUndirected("B", "C")
//	fmt.Println(g.Neighbors("B")) // [A C]
//
//	w := graph.Weighted[string]{}
//	w.AddEdge("A", "B", 1.5)
//	fmt.Println(w.HasNegativeWeight()) // false
package graph
