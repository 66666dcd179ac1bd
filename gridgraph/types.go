// Package gridgraph defines core types and options for treating a 2D grid
// as a graph of Points.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// Point is a cell coordinate; X is the column, Y the row.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Threshold is the minimum cell value considered passable.
	Threshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Threshold=1 (values ≥1 are passable) and Conn4.
func DefaultOptions() Options {
	return Options{
		Threshold: 1,
		Conn:      Conn4,
	}
}

// Grid is a rectangular grid of integer cells. It is immutable once built.
// Cells[y][x] holds the input value; Marks records lettered cells read by
// Parse.
type Grid struct {
	Width, Height int
	Cells         [][]int
	Conn          Connectivity
	Threshold     int
	Marks         map[rune]Point
	offsets       [][2]int
}
