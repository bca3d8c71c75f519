// Package tsp - the shared distance model.
//
// DistanceMatrix stores all pairwise costs in a flat row-major buffer
// w[i*n+j]. Solvers read it through At without interface indirection or
// error returns; the matrix is never written after construction, so one
// instance may back any number of concurrent solver calls.
package tsp

import (
	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/matrix"
)

// DistanceMatrix is an immutable n×n cost table indexed by node position.
type DistanceMatrix struct {
	n int
	w []float64
}

// NewDistanceMatrix computes Euclidean distances between every pair of nodes.
// Only the upper triangle is computed; it is mirrored into the lower one,
// so the result is exactly symmetric with an exact zero diagonal.
//
// Complexity: O(n²) time and space.
func NewDistanceMatrix(nodes []geom.Node) *DistanceMatrix {
	n := len(nodes)
	w := make([]float64, n*n)

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = geom.Distance(nodes[i], nodes[j])
			w[i*n+j] = d
			w[j*n+i] = d
		}
	}

	return &DistanceMatrix{n: n, w: w}
}

// DistanceMatrixFrom copies a caller-supplied cost matrix after validating it
// (see validateDistMatrix for the rules and sentinels).
//
// Complexity: O(n²).
func DistanceMatrixFrom(m matrix.Matrix) (*DistanceMatrix, error) {
	n, err := validateDistMatrix(m, symTol)
	if err != nil {
		return nil, err
	}

	w := make([]float64, n*n)
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// validateDistMatrix already read every cell successfully.
			x, _ = m.At(i, j)
			w[i*n+j] = x
		}
	}

	return &DistanceMatrix{n: n, w: w}, nil
}

// Len returns the matrix order n.
func (d *DistanceMatrix) Len() int { return d.n }

// At returns the cost between positions i and j.
// Indices are not checked; out-of-range access panics like a slice index.
//
// Complexity: O(1).
func (d *DistanceMatrix) At(i, j int) float64 {
	return d.w[i*d.n+j]
}

// Matrix exports an independent *matrix.Dense copy of the table.
// For n == 0 it returns nil, since Dense has no 0×0 shape.
//
// Complexity: O(n²).
func (d *DistanceMatrix) Matrix() *matrix.Dense {
	if d.n == 0 {
		return nil
	}
	out, err := matrix.NewDense(d.n, d.n)
	if err != nil {
		return nil
	}
	out.AllowNonFinite()

	var i, j int
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			_ = out.Set(i, j, d.w[i*d.n+j])
		}
	}

	return out
}
