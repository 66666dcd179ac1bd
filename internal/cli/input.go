package cli

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/gridgraph"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Input contains the flags of the root command and its subcommands.
type Input struct {
	verbose    bool
	jsonLogger bool
	output     string

	graph     string
	from      string
	to        string
	maxDepth  int
	heuristic string
	conn      int
	reverse   bool

	nodes   int
	density float64
	seed    int64
}

// validate checks the flags shared by every search command.
func (i *Input) validate() error {
	switch i.output {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", i.output)
	}
	if i.conn != 4 && i.conn != 8 {
		return fmt.Errorf("--conn must be 4 or 8, got %d", i.conn)
	}

	return nil
}

// connectivity maps --conn onto gridgraph connectivity.
func (i *Input) connectivity() gridgraph.Connectivity {
	if i.conn == 8 {
		return gridgraph.Conn8
	}

	return gridgraph.Conn4
}
