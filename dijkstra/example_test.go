// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/dijkstra"
	"github.com/katalvlaran/pathsearch/graph"
)

// ExampleDijkstra computes all distances from A on a four-node graph.
func ExampleDijkstra() {
	g := graph.Weighted[string]{}
	g.AddUndirected("A", "B", 1)
	g.AddUndirected("A", "C", 4)
	g.AddUndirected("B", "C", 2)
	g.AddUndirected("B", "D", 6)
	g.AddUndirected("C", "D", 3)

	res, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range []string{"A", "B", "C", "D"} {
		fmt.Printf("%s=%g ", id, res.Dist[id])
	}
	fmt.Println()
	// Output: A=0 B=1 C=3 D=6
}

// ExampleResult_PathTo reconstructs the route behind a distance.
// A→B→D and A→C→B→D both cost 5; ties keep the first predecessor found.
func ExampleResult_PathTo() {
	g := graph.Weighted[string]{}
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)

	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[D]=%g via %s\n", res.Dist["D"], path)
	// Output: dist[D]=5 via A → B → D
}

// ExampleWithInfEdgeThreshold treats heavy edges as walls.
func ExampleWithInfEdgeThreshold() {
	g := graph.Weighted[string]{}
	g.AddUndirected("A", "B", 2)
	g.AddUndirected("B", "C", 4)
	g.AddUndirected("A", "C", 10)

	// The direct edge A—C (weight 10) is ignored.
	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[C]=%g\n", res.Dist["C"])
	// Output: dist[C]=6
}
