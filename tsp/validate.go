// Package tsp - validation of externally supplied cost matrices.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"math"

	"github.com/katalvlaran/salesman/matrix"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n ≥ 1,
//   - diagonal ≈ 0 (|a_ii| ≤ tol), finite,
//   - off-diagonal: no NaN, no ±Inf, no negatives,
//   - symmetric: |a_ij − a_ji| ≤ tol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix, tol float64) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return 0, ErrNonSquare
	}

	var (
		i, j     int
		aij, aji float64
		err      error
	)

	// Diagonal: a_ii ≈ 0 within tol, finite.
	for i = 0; i < n; i++ {
		aij, err = dist.At(i, i)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrDimensionMismatch
		}
		if math.Abs(aij) > tol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Off-diagonal scan.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			aij, err = dist.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(aij) {
				return 0, ErrDimensionMismatch
			}
			if math.IsInf(aij, 0) {
				return 0, ErrIncompleteGraph
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	// Symmetry over the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = dist.At(i, j)
			aji, _ = dist.At(j, i)
			if math.Abs(aij-aji) > tol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
