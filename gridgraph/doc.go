// Package gridgraph treats a 2D grid of cells as a graph of Points, for use
// with the path searches and as a source of A* heuristics.
//
// What:
//
//   - Grid wraps a rectangular [][]int grid with a tunable Threshold.
//   - Parse reads ASCII maps ('#' wall, anything else open).
//   - Weighted and Unweighted export the passable cells as graph values.
//   - Components finds connected regions; Breach computes the fewest walls
//     to cross between two cells (0-1 BFS).
//   - Manhattan, Chebyshev, Octile and Euclidean build heuristics towards a goal.
//
// Why:
//
//   - Game and robot maps: grid A* with an exact or admissible estimate.
//   - Quick reachability checks before running a search.
//
// Complexity:
//
//   - Weighted, Unweighted: O(W×H×d), Memory: O(W×H×d)   (d = 4 or 8).
//   - Components:           O(W×H×d), Memory: O(W×H).
//   - Breach:               O(W×H×d), Memory: O(W×H).
//
// Heuristic admissibility:
//
//   - Conn4: Manhattan, Chebyshev, Octile and Euclidean are all admissible.
//   - Conn8 (√2 diagonals): Octile, Chebyshev and Euclidean are admissible;
//     Manhattan overestimates diagonal moves.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a point lies outside the grid.
package gridgraph
