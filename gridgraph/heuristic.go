package gridgraph

import "math"

// Manhattan returns |dx|+|dy| to goal. Admissible for Conn4 grids.
func Manhattan(goal Point) func(Point) float64 {
	return func(p Point) float64 {
		dx, dy := delta(p, goal)

		return dx + dy
	}
}

// Chebyshev returns max(|dx|,|dy|) to goal. Admissible for both
// connectivities, but loose on Conn8 grids with √2 diagonals.
func Chebyshev(goal Point) func(Point) float64 {
	return func(p Point) float64 {
		dx, dy := delta(p, goal)

		return math.Max(dx, dy)
	}
}

// Octile returns the exact obstacle-free distance on a Conn8 grid with
// unit orthogonal and √2 diagonal steps.
func Octile(goal Point) func(Point) float64 {
	return func(p Point) float64 {
		dx, dy := delta(p, goal)
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)

		return hi + (math.Sqrt2-1)*lo
	}
}

// Euclidean returns the straight-line distance to goal.
func Euclidean(goal Point) func(Point) float64 {
	return func(p Point) float64 {
		dx, dy := delta(p, goal)

		return math.Hypot(dx, dy)
	}
}

func delta(p, q Point) (dx, dy float64) {
	return math.Abs(float64(p.X - q.X)), math.Abs(float64(p.Y - q.Y))
}
