package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/pathsearch/astar"
	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/graph"
	"github.com/katalvlaran/pathsearch/gridgraph"
)

// dataset is a built-in graph with default endpoints. Every dataset is
// labelled with string node IDs so all commands share one code path.
type dataset struct {
	name     string
	about    string
	g        graph.Weighted[string]
	from, to string
	directed bool
	// table holds precomputed A* estimates towards the default goal.
	table map[string]float64
	// points maps node IDs back to grid cells for grid heuristics.
	points map[string]gridgraph.Point
}

type loader func(input *Input) (*dataset, error)

var datasets = map[string]struct {
	about string
	load  loader
}{
	"sample":   {"six-node undirected graph (A..F)", loadSample},
	"weighted": {"four-node weighted undirected graph (A..D)", loadWeighted},
	"negative": {"directed graph with a negative edge, no cycle", loadNegative},
	"cycle":    {"two-node directed graph with a negative cycle", loadCycle},
	"astar":    {"seven-node DAG with an admissible heuristic table", loadAStar},
	"grid":     {"ASCII maze; honors --conn", loadGrid},
	"random":   {"seeded random digraph; honors --nodes, --density, --seed", loadRandom},
}

// datasetNames lists the built-in graphs in alphabetical order.
func datasetNames() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// loadDataset resolves --graph into a dataset.
func loadDataset(input *Input) (*dataset, error) {
	entry, ok := datasets[input.graph]
	if !ok {
		return nil, fmt.Errorf("unknown graph %q (available: %v)", input.graph, datasetNames())
	}
	ds, err := entry.load(input)
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", input.graph, err)
	}
	ds.name, ds.about = input.graph, entry.about

	return ds, nil
}

// endpoints returns --from/--to, falling back to the dataset defaults.
func (d *dataset) endpoints(input *Input) (from, to string) {
	from, to = d.from, d.to
	if input.from != "" {
		from = input.from
	}
	if input.to != "" {
		to = input.to
	}

	return from, to
}

// heuristic builds the A* heuristic named by --heuristic towards goal.
// "auto" picks the table for the astar graph, the exact grid metric for the
// grid and the zero heuristic otherwise.
func (d *dataset) heuristic(name, goal string) (astar.Heuristic[string], error) {
	if name == "auto" {
		switch {
		case d.table != nil && goal == d.to:
			name = "table"
		case d.points != nil:
			name = "octile"
		default:
			name = "zero"
		}
	}

	switch name {
	case "zero":
		return astar.Zero[string], nil
	case "table":
		if d.table == nil {
			return nil, fmt.Errorf("graph %s has no heuristic table", d.name)
		}
		return astar.Table(d.table), nil
	}

	if d.points == nil {
		return nil, fmt.Errorf("heuristic %q needs the grid graph", name)
	}
	target, ok := d.points[goal]
	if !ok {
		return nil, fmt.Errorf("goal %s is not a passable grid cell", goal)
	}
	var metric func(gridgraph.Point) float64
	switch name {
	case "manhattan":
		metric = gridgraph.Manhattan(target)
	case "chebyshev":
		metric = gridgraph.Chebyshev(target)
	case "octile":
		metric = gridgraph.Octile(target)
	case "euclidean":
		metric = gridgraph.Euclidean(target)
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}

	return func(id string) float64 {
		return metric(d.points[id])
	}, nil
}

func loadSample(*Input) (*dataset, error) {
	g := graph.Weighted[string]{}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"B", "E"}, {"C", "F"}, {"E", "F"}} {
		g.AddUndirected(e[0], e[1], 1)
	}

	return &dataset{g: g, from: "A", to: "F"}, nil
}

func loadWeighted(*Input) (*dataset, error) {
	g := graph.Weighted[string]{}
	g.AddUndirected("A", "B", 1)
	g.AddUndirected("A", "C", 4)
	g.AddUndirected("B", "C", 2)
	g.AddUndirected("B", "D", 6)
	g.AddUndirected("C", "D", 3)

	return &dataset{g: g, from: "A", to: "D"}, nil
}

func loadNegative(*Input) (*dataset, error) {
	g := graph.Weighted[string]{}
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 4)
	g.AddEdge("B", "C", -3)
	g.AddEdge("C", "D", 2)

	return &dataset{g: g, from: "A", to: "D", directed: true}, nil
}

func loadCycle(*Input) (*dataset, error) {
	g := graph.Weighted[string]{}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "A", -2)

	return &dataset{g: g, from: "A", to: "B", directed: true}, nil
}

func loadAStar(*Input) (*dataset, error) {
	g := graph.Weighted[string]{}
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 3)
	g.AddEdge("B", "D", 1)
	g.AddEdge("B", "E", 3)
	g.AddEdge("C", "F", 2)
	g.AddEdge("D", "G", 3)
	g.AddEdge("E", "G", 1)
	g.AddEdge("F", "G", 2)

	return &dataset{
		g:        g,
		from:     "A",
		to:       "G",
		directed: true,
		table:    map[string]float64{"A": 6, "B": 4, "C": 5, "D": 2, "E": 2, "F": 3, "G": 0},
	}, nil
}

// maze is the grid dataset; S and G mark the default endpoints.
var maze = []string{
	"S...#......",
	".##.#.####.",
	".#..#....#.",
	".#.###.#.#.",
	".#.....#..G",
}

func loadGrid(input *Input) (*dataset, error) {
	grid, err := gridgraph.Parse(maze, input.connectivity())
	if err != nil {
		return nil, err
	}

	points := map[string]gridgraph.Point{}
	g := graph.Weighted[string]{}
	for p, edges := range grid.Weighted() {
		id := pointID(p)
		points[id] = p
		out := make([]graph.Edge[string], len(edges))
		for i, e := range edges {
			out[i] = graph.Edge[string]{To: pointID(e.To), Weight: e.Weight}
		}
		g[id] = out
	}

	return &dataset{
		g:      g,
		from:   pointID(grid.Marks['S']),
		to:     pointID(grid.Marks['G']),
		points: points,
	}, nil
}

// pointID labels a grid cell as "x,y".
func pointID(p gridgraph.Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

func loadRandom(input *Input) (*dataset, error) {
	w, err := builder.Build(
		[]builder.Constructor{builder.RandomSparse(input.nodes, input.density)},
		builder.WithSeed(input.seed),
		builder.WithDirected(true),
		builder.WithWeightFn(builder.IntWeight(1, 9)),
	)
	if err != nil {
		return nil, err
	}

	g := make(graph.Weighted[string], len(w))
	for u, edges := range w {
		out := make([]graph.Edge[string], len(edges))
		for i, e := range edges {
			out[i] = graph.Edge[string]{To: strconv.Itoa(e.To), Weight: e.Weight}
		}
		g[strconv.Itoa(u)] = out
	}

	return &dataset{g: g, from: "0", to: strconv.Itoa(input.nodes - 1), directed: true}, nil
}
