package tsp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors. Solvers themselves never fail; these are returned only
// where external input enters the package (DistanceMatrixFrom, NewFromMatrix,
// AnnealOptions.Validate, ValidatePath).
var (
	// ErrDimensionMismatch indicates an ill-shaped input: wrong length,
	// out-of-range or duplicate index, NaN cost.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare is returned when a cost matrix is not n×n with n ≥ 1.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNonZeroDiagonal is returned when some d(i,i) is not ≈0.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal not zero")

	// ErrNegativeWeight is returned when some off-diagonal cost is negative.
	ErrNegativeWeight = errors.New("tsp: negative weight")

	// ErrIncompleteGraph is returned when some off-diagonal cost is ±Inf.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrAsymmetry is returned when d(i,j) and d(j,i) differ beyond tolerance.
	ErrAsymmetry = errors.New("tsp: matrix is not symmetric")

	// ErrInvalidAnnealOptions is returned by AnnealOptions.Validate.
	ErrInvalidAnnealOptions = errors.New("tsp: invalid annealing options")
)

// Route is a visiting order over node indices plus its cyclic length.
// Path is a permutation of 0..n-1 (no closing repeat). Every solver returns
// a freshly allocated Path; callers may keep or modify it freely.
type Route struct {
	Path     []int
	Distance float64
}

// String renders the route as "[0, 3, 1, 2] distance=12.34".
func (r Route) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range r.Path {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	fmt.Fprintf(&sb, " distance=%.2f", r.Distance)

	return sb.String()
}

// Len returns the number of stops on the route.
func (r Route) Len() int { return len(r.Path) }

// Default annealing schedule.
const (
	DefaultInitialTemp = 1000.0
	DefaultCoolingRate = 0.99
	DefaultIterations  = 1000
)

// AnnealOptions parameterizes SimulatedAnnealing.
//
// InitialTemp must be > 0, CoolingRate in (0,1), Iterations ≥ 0.
// SimulatedAnnealing does not check them; callers that take the values from
// users should run Validate first.
type AnnealOptions struct {
	InitialTemp float64
	CoolingRate float64
	Iterations  int
}

// DefaultAnnealOptions returns {1000, 0.99, 1000}.
func DefaultAnnealOptions() AnnealOptions {
	return AnnealOptions{
		InitialTemp: DefaultInitialTemp,
		CoolingRate: DefaultCoolingRate,
		Iterations:  DefaultIterations,
	}
}

// Validate reports ErrInvalidAnnealOptions (wrapped with the offending
// field) when the schedule is degenerate.
func (o AnnealOptions) Validate() error {
	if !(o.InitialTemp > 0) {
		return fmt.Errorf("initial temperature %v: %w", o.InitialTemp, ErrInvalidAnnealOptions)
	}
	if !(o.CoolingRate > 0 && o.CoolingRate < 1) {
		return fmt.Errorf("cooling rate %v: %w", o.CoolingRate, ErrInvalidAnnealOptions)
	}
	if o.Iterations < 0 {
		return fmt.Errorf("iterations %d: %w", o.Iterations, ErrInvalidAnnealOptions)
	}

	return nil
}
