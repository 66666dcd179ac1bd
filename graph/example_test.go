package graph_test

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/graph"
)

// ExampleAdjacency builds a small undirected graph and lists neighbors.
// Node "D" is never a key, yet it is a node of the graph.
func ExampleAdjacency() {
	g := graph.Adjacency[string]{}
	g.AddUndirected("A", "B")
	g.AddUndirected("B", "C")
	g.AddEdge("C", "D")

	fmt.Println("B:", g.Neighbors("B"))
	fmt.Println("D:", g.Neighbors("D"))
	fmt.Println("order:", g.Order(), "edges:", g.EdgeCount())
	// Output:
	// B: [A C]
	// D: []
	// order: 4 edges: 5
}

// ExamplePath_Cost sums the weights along a path.
func ExamplePath_Cost() {
	w := graph.Weighted[string]{}
	w.AddEdge("A", "B", 1)
	w.AddEdge("B", "E", 3)
	w.AddEdge("E", "G", 1)

	p := graph.Path[string]{"A", "B", "E", "G"}
	cost, err := p.Cost(w)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s costs %g\n", p, cost)
	// Output: A → B → E → G costs 5
}
