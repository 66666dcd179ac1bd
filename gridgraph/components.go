package gridgraph

// Components finds all contiguous regions of passable cells according to
// g.Conn connectivity. Each component lists its Points in BFS order; the
// components themselves are ordered by their first cell in row-major order.
//
// Two cells are connected by some path exactly when they share a component,
// so callers can rule out a search before running one.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Point {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Point

	g.each(func(p Point) {
		i0 := g.index(p)
		if seen[i0] {
			return
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Point

		for qi := 0; qi < len(queue); qi++ {
			u := g.point(queue[qi])
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	})

	return comps
}

// Connected reports whether a and b are passable and in the same component.
func (g *Grid) Connected(a, b Point) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	for _, comp := range g.Components() {
		in := map[Point]bool{}
		for _, p := range comp {
			in[p] = true
		}
		if in[a] {
			return in[b]
		}
	}

	return false
}
