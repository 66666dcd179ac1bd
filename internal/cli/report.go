package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathsearch/graph"
)

// distance is a DistanceMap entry that encodes +Inf as "inf", which neither
// JSON nor a cross-language YAML reader handles as a number.
type distance float64

func (d distance) String() string {
	if math.IsInf(float64(d), 1) {
		return "inf"
	}

	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (d distance) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(d), 1) {
		return []byte(`"inf"`), nil
	}

	return json.Marshal(float64(d))
}

// MarshalYAML implements yaml.Marshaler.
func (d distance) MarshalYAML() (interface{}, error) {
	if math.IsInf(float64(d), 1) {
		return "inf", nil
	}

	return float64(d), nil
}

// report is the printable outcome of one command run.
type report struct {
	Algorithm string              `json:"algorithm" yaml:"algorithm"`
	Graph     string              `json:"graph" yaml:"graph"`
	From      string              `json:"from" yaml:"from"`
	To        string              `json:"to,omitempty" yaml:"to,omitempty"`
	Path      []string            `json:"path,omitempty" yaml:"path,omitempty"`
	Cost      *float64            `json:"cost,omitempty" yaml:"cost,omitempty"`
	Distances map[string]distance `json:"distances,omitempty" yaml:"distances,omitempty"`
	Expanded  int                 `json:"expanded,omitempty" yaml:"expanded,omitempty"`
	Passes    int                 `json:"passes,omitempty" yaml:"passes,omitempty"`
	Error     string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// setPath records p and, when w is given, its cost.
func (r *report) setPath(p graph.Path[string], w graph.Weighted[string]) error {
	r.Path = []string(p)
	if w == nil {
		return nil
	}
	cost, err := p.Cost(w)
	if err != nil {
		return err
	}
	r.Cost = &cost

	return nil
}

// setDistances copies a DistanceMap into the report.
func (r *report) setDistances(dist graph.Distances[string]) {
	r.Distances = make(map[string]distance, len(dist))
	for id, d := range dist {
		r.Distances[id] = distance(d)
	}
}

// printReports writes reports to w in the requested format. JSON and YAML
// print a single object for one report and a list otherwise.
func printReports(w io.Writer, format string, reports ...*report) error {
	var doc interface{} = reports
	if len(reports) == 1 {
		doc = reports[0]
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, r.text()); err != nil {
			return err
		}
	}

	return nil
}

// text renders r for humans.
func (r *report) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s on %s from %s", r.Algorithm, r.Graph, r.From)
	if r.To != "" {
		fmt.Fprintf(&b, " to %s", r.To)
	}
	b.WriteString("\n")

	if r.Error != "" {
		fmt.Fprintf(&b, "  error: %s\n", r.Error)
		return b.String()
	}
	if r.Path != nil {
		fmt.Fprintf(&b, "  path: %s\n", strings.Join(r.Path, " → "))
	}
	if r.Cost != nil {
		fmt.Fprintf(&b, "  cost: %g\n", *r.Cost)
	}
	if r.Expanded > 0 {
		fmt.Fprintf(&b, "  expanded: %d\n", r.Expanded)
	}
	if r.Passes > 0 {
		fmt.Fprintf(&b, "  passes: %d\n", r.Passes)
	}
	if len(r.Distances) > 0 {
		ids := make([]string, 0, len(r.Distances))
		for id := range r.Distances {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		b.WriteString("  distances:\n")
		for _, id := range ids {
			fmt.Fprintf(&b, "    %s: %s\n", id, r.Distances[id])
		}
	}

	return b.String()
}
