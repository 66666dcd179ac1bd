package cli

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathsearch/astar"
	"github.com/katalvlaran/pathsearch/bellmanford"
	"github.com/katalvlaran/pathsearch/bidirectional"
	"github.com/katalvlaran/pathsearch/dijkstra"
	"github.com/katalvlaran/pathsearch/graph"
	"github.com/katalvlaran/pathsearch/iddfs"
)

// Algorithm names, used as subcommand names and in reports.
const (
	algoBidirectional = "bidirectional"
	algoIDDFS         = "iddfs"
	algoDijkstra      = "dijkstra"
	algoBellmanFord   = "bellman-ford"
	algoAStar         = "astar"
)

// outcomes are search errors reported as results rather than failures.
var outcomes = []error{
	graph.ErrNoPath,
	iddfs.ErrDepthExceeded,
	dijkstra.ErrNegativeWeight,
	bellmanford.ErrNegativeCycle,
}

// runner executes one algorithm on a dataset.
type runner func(ctx context.Context, input *Input, ds *dataset, r *report) error

var runners = map[string]runner{
	algoBidirectional: runBidirectional,
	algoIDDFS:         runIDDFS,
	algoDijkstra:      runDijkstra,
	algoBellmanFord:   runBellmanFord,
	algoAStar:         runAStar,
}

// search runs algo on ds and returns its report. Expected outcomes such as
// "no path" are stored in report.Error; other errors are returned.
func search(ctx context.Context, input *Input, algo string, ds *dataset) (*report, error) {
	from, to := ds.endpoints(input)
	// Single-source algorithms report a path only for an explicit --to.
	if (algo == algoDijkstra || algo == algoBellmanFord) && input.to == "" {
		to = ""
	}
	r := &report{Algorithm: algo, Graph: ds.name, From: from, To: to}
	logger := log.WithFields(log.Fields{"algorithm": algo, "graph": ds.name, "from": from, "to": to})
	logger.Debugf("graph has %d nodes and %d edges", ds.g.Order(), ds.g.EdgeCount())

	err := runners[algo](ctx, input, ds, r)
	for _, outcome := range outcomes {
		if errors.Is(err, outcome) {
			logger.WithError(err).Debug("search finished without a result")
			r.Error = err.Error()
			return r, nil
		}
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}

func runBidirectional(ctx context.Context, input *Input, ds *dataset, r *report) error {
	opts := []bidirectional.Option{
		bidirectional.WithContext(ctx),
		bidirectional.WithOnExpand(func(dir bidirectional.Direction, round, frontier int) {
			log.WithFields(log.Fields{"direction": dir, "round": round}).Debugf("expanding %d node(s)", frontier)
		}),
	}

	g := ds.g.Unweighted()
	s := bidirectional.New(g, opts...)
	if ds.directed || input.reverse {
		s = bidirectional.NewWithReverse(g, ds.g.Reverse().Unweighted(), opts...)
	}
	path, err := s.Search(r.From, r.To)
	if err != nil {
		return err
	}

	return r.setPath(path, nil)
}

func runIDDFS(ctx context.Context, input *Input, ds *dataset, r *report) error {
	opts := []iddfs.Option{
		iddfs.WithContext(ctx),
		iddfs.WithOnDepth(func(limit int) {
			log.WithField("limit", limit).Debug("deepening")
		}),
	}
	if input.maxDepth >= 0 {
		opts = append(opts, iddfs.WithMaxDepth(input.maxDepth))
	}

	path, err := iddfs.Search(ds.g.Unweighted(), r.From, r.To, opts...)
	if err != nil {
		return err
	}

	return r.setPath(path, nil)
}

func runDijkstra(_ context.Context, _ *Input, ds *dataset, r *report) error {
	res, err := dijkstra.Dijkstra(ds.g, r.From, dijkstra.WithReturnPath())
	if err != nil {
		return err
	}
	r.setDistances(res.Dist)

	return pathFromPrev(r, ds, res.PathTo)
}

func runBellmanFord(_ context.Context, _ *Input, ds *dataset, r *report) error {
	res, err := bellmanford.BellmanFord(ds.g, r.From)
	if err != nil {
		return err
	}
	r.setDistances(res.Dist)
	r.Passes = res.Passes

	return pathFromPrev(r, ds, res.PathTo)
}

// pathFromPrev adds the path to r.To for single-source algorithms.
func pathFromPrev(r *report, ds *dataset, pathTo func(string) (graph.Path[string], error)) error {
	if r.To == "" {
		return nil
	}
	path, err := pathTo(r.To)
	if errors.Is(err, graph.ErrNoPath) {
		r.Error = err.Error()
		return nil
	}
	if err != nil {
		return err
	}

	return r.setPath(path, ds.g)
}

func runAStar(ctx context.Context, input *Input, ds *dataset, r *report) error {
	h, err := ds.heuristic(input.heuristic, r.To)
	if err != nil {
		return err
	}

	res, err := astar.Search(ds.g, r.From, r.To, h,
		astar.WithContext(ctx),
		astar.WithOnExpand(func(id any, g, f float64) {
			log.WithFields(log.Fields{"node": id, "g": g, "f": f}).Debug("expanding")
		}))
	if err != nil {
		return err
	}
	r.Expanded = res.Expanded

	return r.setPath(res.Path, ds.g)
}
