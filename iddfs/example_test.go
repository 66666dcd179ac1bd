package iddfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathsearch/graph"
	"github.com/katalvlaran/pathsearch/iddfs"
)

// ExampleSearch deepens one hop at a time until F is reached.
func ExampleSearch() {
	g := graph.Adjacency[string]{}
	g.AddUndirected("A", "B")
	g.AddUndirected("A", "C")
	g.AddUndirected("B", "D")
	g.AddUndirected("B", "E")
	g.AddUndirected("C", "F")
	g.AddUndirected("E", "F")

	path, err := iddfs.Search(g, "A", "F",
		iddfs.WithOnDepth(func(limit int) { fmt.Println("limit", limit) }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// limit 0
	// limit 1
	// limit 2
	// A → C → F
}

// ExampleWithMaxDepth shows the ceiling error when the goal lies deeper.
func ExampleWithMaxDepth() {
	g := graph.Adjacency[int]{1: {2}, 2: {3}, 3: {4}}

	_, err := iddfs.Search(g, 1, 4, iddfs.WithMaxDepth(2))
	fmt.Println(errors.Is(err, iddfs.ErrDepthExceeded))
	// Output: true
}
