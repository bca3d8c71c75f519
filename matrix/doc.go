// SPDX-License-Identifier: MIT

// Package matrix provides the minimal two-dimensional float64 storage used by
// the salesman solvers.
//
// The package offers:
//
//   - Matrix: a small interface (Rows, Cols, At, Set, Clone) so that callers
//     can hand in precomputed cost tables of their own layout.
//   - Dense: a row-major implementation with bounds-checked accessors and an
//     optional finite-only numeric policy.
//
// All public accessors return sentinel errors (errors.go) instead of
// panicking; callers match them with errors.Is.
package matrix
