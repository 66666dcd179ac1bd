// Package cli implements the pathsearch command line: one subcommand per
// search algorithm over built-in graphs, plus a demo of the canonical
// scenarios.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	if err := createRootCommand(ctx, input, version).Execute(); err != nil {
		logFailure(err)
		os.Exit(1)
	}
}

// reportedError is a search outcome already printed in the report.
type reportedError struct {
	msg string
}

func (e *reportedError) Error() string { return e.msg }

// logFailure logs err unless the report already carried it.
func logFailure(err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	log.Error(err)
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "pathsearch",
		Short:             "Run graph path searches on built-in graphs.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup(input),
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&input.jsonLogger, "json", false, "output logging in json format")
	rootCmd.PersistentFlags().StringVarP(&input.output, "output", "o", formatText, "result format: text, json or yaml")
	rootCmd.PersistentFlags().StringVarP(&input.graph, "graph", "g", "sample", "built-in graph to search (see 'pathsearch graphs')")
	rootCmd.PersistentFlags().IntVar(&input.conn, "conn", 4, "grid connectivity: 4 or 8")
	rootCmd.PersistentFlags().IntVar(&input.nodes, "nodes", 20, "node count of the random graph")
	rootCmd.PersistentFlags().Float64Var(&input.density, "density", 0.15, "edge probability of the random graph")
	rootCmd.PersistentFlags().Int64Var(&input.seed, "seed", 1, "seed of the random graph")

	rootCmd.AddCommand(
		newSearchCommand(ctx, input, algoBidirectional, "Bidirectional breadth-first search (fewest hops)"),
		newSearchCommand(ctx, input, algoIDDFS, "Iterative-deepening depth-first search (fewest hops)"),
		newSearchCommand(ctx, input, algoDijkstra, "Dijkstra single-source distances (non-negative weights)"),
		newSearchCommand(ctx, input, algoBellmanFord, "Bellman-Ford single-source distances with negative-cycle detection"),
		newSearchCommand(ctx, input, algoAStar, "A* search guided by a heuristic"),
		newDemoCommand(ctx, input),
		newGraphsCommand(),
	)

	return rootCmd
}

// setup validates shared flags and configures logging before any subcommand.
func setup(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		configureLogger(input, cmd.ErrOrStderr())
		return input.validate()
	}
}

func newSearchCommand(ctx context.Context, input *Input, algo, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   algo,
		Short: short,
		Args:  cobra.NoArgs,
		RunE:  newSearchAction(ctx, input, algo),
	}
	cmd.Flags().StringVarP(&input.from, "from", "f", "", "start node (default: the graph's start)")
	cmd.Flags().StringVarP(&input.to, "to", "t", "", "goal node (default: the graph's goal)")

	switch algo {
	case algoBidirectional:
		cmd.Flags().BoolVar(&input.reverse, "reverse", false, "expand the backward side over reverse edges (directed graphs)")
	case algoIDDFS:
		cmd.Flags().IntVar(&input.maxDepth, "max-depth", -1, "deepest limit to try (default: node count)")
	case algoAStar:
		cmd.Flags().StringVar(&input.heuristic, "heuristic", "auto",
			"auto, zero, table, manhattan, chebyshev, octile or euclidean")
	}

	return cmd
}

func newSearchAction(ctx context.Context, input *Input, algo string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ds, err := loadDataset(input)
		if err != nil {
			return err
		}

		r, err := search(ctx, input, algo, ds)
		if err != nil {
			return err
		}
		if err := printReports(cmd.OutOrStdout(), input.output, r); err != nil {
			return err
		}
		if r.Error != "" {
			return &reportedError{msg: r.Error}
		}

		return nil
	}
}

// demoRun is one canonical scenario.
type demoRun struct {
	algo, graph string
	from, to    string
}

var demoRuns = []demoRun{
	{algoBidirectional, "sample", "A", "F"},
	{algoIDDFS, "sample", "A", "F"},
	{algoDijkstra, "weighted", "A", ""},
	{algoBellmanFord, "negative", "A", ""},
	{algoBellmanFord, "cycle", "A", ""},
	{algoAStar, "astar", "A", "G"},
	{algoAStar, "grid", "", ""},
}

func newDemoCommand(ctx context.Context, input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every algorithm on its canonical scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports := make([]*report, 0, len(demoRuns))
			for _, run := range demoRuns {
				runInput := *input
				runInput.graph, runInput.from, runInput.to = run.graph, run.from, run.to
				runInput.maxDepth, runInput.heuristic = -1, "auto"

				ds, err := loadDataset(&runInput)
				if err != nil {
					return err
				}
				r, err := search(ctx, &runInput, run.algo, ds)
				if err != nil {
					return fmt.Errorf("%s on %s: %w", run.algo, run.graph, err)
				}
				log.WithFields(log.Fields{"algorithm": run.algo, "graph": run.graph}).Debug("scenario done")
				reports = append(reports, r)
			}

			return printReports(cmd.OutOrStdout(), input.output, reports...)
		},
	}
}

func newGraphsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graphs",
		Short: "List the built-in graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range datasetNames() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", name, datasets[name].about); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
