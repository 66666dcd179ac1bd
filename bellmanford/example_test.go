package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathsearch/bellmanford"
	"github.com/katalvlaran/pathsearch/graph"
)

// ExampleBellmanFord handles a negative edge that Dijkstra would reject.
func ExampleBellmanFord() {
	g := graph.Weighted[string]{}
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 4)
	g.AddEdge("B", "C", -3)
	g.AddEdge("C", "D", 2)

	res, err := bellmanford.BellmanFord(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist["A"], res.Dist["B"], res.Dist["C"], res.Dist["D"])
	// Output: 0 1 -2 0
}

// ExampleBellmanFord_negativeCycle shows the distinct negative-cycle signal.
func ExampleBellmanFord_negativeCycle() {
	g := graph.Weighted[string]{}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "A", -2)

	_, err := bellmanford.BellmanFord(g, "A")
	fmt.Println(errors.Is(err, bellmanford.ErrNegativeCycle))
	// Output: true
}
