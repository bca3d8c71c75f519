package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Result is one solver's outcome.
type Result struct {
	Route   tsp.Route
	Elapsed time.Duration
}

// Run collects everything produced by one invocation.
type Run struct {
	ID    string
	Seed  int64
	Nodes []geom.Node

	// Distances is the cost table the solvers ran on; nil for an empty run.
	Distances matrix.Matrix

	Samples       []tsp.Route
	SampleAverage float64

	// BruteForce is nil when the exact solver was skipped.
	BruteForce *Result
	HillClimb  Result
	Annealing  Result
	Anneal     tsp.AnnealOptions
}

// Write renders r in the named format.
func Write(w io.Writer, format string, r *Run) error {
	switch format {
	case FormatText:
		return WriteText(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
