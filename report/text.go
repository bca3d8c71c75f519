package report

import (
	"fmt"
	"io"
	"strings"
)

// Separator closes every section of the text report.
var Separator = strings.Repeat("-", 60)

// errWriter latches the first write error so the layout code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, args...)
}

// WriteText renders r in the console layout:
//
//	Nodes:
//	0: (12.34, 56.78)
//	...
//	------------------------------------------------------------
//	Random routes:
//	[3, 0, 2, 1] distance=210.55
//	Average distance of random routes: 230.12
//	------------------------------------------------------------
//	Best route (brute force):
//	...
func WriteText(w io.Writer, r *Run) error {
	ew := &errWriter{w: w}

	ew.println("Nodes:")
	for _, n := range r.Nodes {
		ew.println(n)
	}
	if len(r.Nodes) == 0 && r.Distances != nil {
		ew.printf("%d stops from a cost matrix\n", r.Distances.Rows())
	}
	ew.println(Separator)

	ew.println("Random routes:")
	for _, s := range r.Samples {
		ew.println(s)
	}
	ew.printf("Average distance of random routes: %.2f\n", r.SampleAverage)
	ew.println(Separator)

	if r.BruteForce != nil {
		ew.println("Best route (brute force):")
		ew.println(r.BruteForce.Route)
		ew.println(Separator)
	}

	ew.println("Best hill climbing route:")
	ew.println(r.HillClimb.Route)
	ew.println(Separator)

	ew.println("Best simulated annealing route:")
	ew.println(r.Annealing.Route)
	ew.println(Separator)

	return ew.err
}
