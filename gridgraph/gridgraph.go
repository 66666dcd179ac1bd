// Package gridgraph turns a 2D grid of integer cells into the graph shapes
// the searches consume, and provides grid distance heuristics for A*.
//
// Cells with value < Threshold are walls; cells with value ≥ Threshold are
// passable. Neighbors follow Conn4 or Conn8 connectivity.
package gridgraph

import (
	"math"

	"github.com/katalvlaran/pathsearch/graph"
)

// Cell values produced by Parse.
const (
	wallValue = 0
	openValue = 1
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:     w,
		Height:    h,
		Cells:     cells,
		Conn:      opts.Conn,
		Threshold: opts.Threshold,
		Marks:     map[rune]Point{},
		offsets:   offsets,
	}, nil
}

// Parse reads an ASCII map: '#' is a wall, every other character is open.
// Characters other than '#' and '.' are recorded in Grid.Marks, so "S" and
// "G" can label start and goal. The threshold is fixed at 1.
func Parse(rows []string, conn Connectivity) (*Grid, error) {
	values := make([][]int, len(rows))
	marks := map[rune]Point{}
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for _, ch := range row {
			x := len(values[y])
			switch ch {
			case '#':
				values[y] = append(values[y], wallValue)
			case '.':
				values[y] = append(values[y], openValue)
			default:
				values[y] = append(values[y], openValue)
				marks[ch] = Point{X: x, Y: y}
			}
		}
	}

	g, err := New(values, Options{Threshold: openValue, Conn: conn})
	if err != nil {
		return nil, err
	}
	g.Marks = marks

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Passable reports whether p is in bounds and not a wall.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.Cells[p.Y][p.X] >= g.Threshold
}

// Neighbors returns the in-bounds passable neighbors of p in offset order
// (clockwise from north).
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(g.offsets))
	for _, d := range g.offsets {
		q := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.Passable(q) {
			out = append(out, q)
		}
	}

	return out
}

// Weighted converts the grid into a graph.Weighted over passable cells.
// Orthogonal steps cost 1, diagonal steps (Conn8) cost √2. Walls are not
// nodes. Complexity: O(W×H×d).
func (g *Grid) Weighted() graph.Weighted[Point] {
	w := graph.Weighted[Point]{}
	g.each(func(p Point) {
		edges := make([]graph.Edge[Point], 0, len(g.offsets))
		for _, q := range g.Neighbors(p) {
			edges = append(edges, graph.Edge[Point]{To: q, Weight: stepCost(p, q)})
		}
		w[p] = edges
	})

	return w
}

// Unweighted converts the grid into a graph.Adjacency over passable cells.
func (g *Grid) Unweighted() graph.Adjacency[Point] {
	a := graph.Adjacency[Point]{}
	g.each(func(p Point) {
		a[p] = g.Neighbors(p)
	})

	return a
}

// each calls fn for every passable cell in row-major order.
func (g *Grid) each(fn func(Point)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if p := (Point{X: x, Y: y}); g.Passable(p) {
				fn(p)
			}
		}
	}
}

// index maps p to a row-major index: y*Width + x.
func (g *Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

// point converts a row-major index back to a Point.
func (g *Grid) point(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// stepCost is 1 for an orthogonal move and √2 for a diagonal one.
func stepCost(p, q Point) float64 {
	if p.X != q.X && p.Y != q.Y {
		return math.Sqrt2
	}

	return 1
}
