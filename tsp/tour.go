// Package tsp: path utilities.
//
// Helpers operate purely on index sequences (open paths, no closing repeat)
// and never touch a distance matrix:
//   - ValidatePath: verify a permutation over {0..n-1}.
//   - CopyPath: independent copy.
//   - RotatePath / ReversePath: the two symmetries that leave a cycle's length unchanged.
//   - SameCycle: equality modulo rotation and direction.
package tsp

// ValidatePath checks that path is a permutation of {0..n-1} of length n.
// n == 0 accepts only an empty path.
//
// Complexity: O(n) time, O(n) space.
func ValidatePath(path []int, n int) error {
	if n < 0 || len(path) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = path[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CopyPath returns an independent copy of path (nil stays nil).
func CopyPath(path []int) []int {
	if path == nil {
		return nil
	}
	out := make([]int, len(path))
	copy(out, path)

	return out
}

// RotatePath returns a fresh path shifted left by k positions:
// out[i] = path[(i+k) mod n]. Negative k rotates right.
//
// Complexity: O(n).
func RotatePath(path []int, k int) []int {
	n := len(path)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	k %= n
	if k < 0 {
		k += n
	}

	var i int
	for i = 0; i < n; i++ {
		out[i] = path[(i+k)%n]
	}

	return out
}

// ReversePath returns a fresh path visiting the same stops backwards.
//
// Complexity: O(n).
func ReversePath(path []int) []int {
	n := len(path)
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = path[n-1-i]
	}

	return out
}

// SameCycle reports whether a and b describe the same cycle, allowing any
// rotation and either direction.
//
// Complexity: O(n).
func SameCycle(a, b []int) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	p := -1
	var i int
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}

	fwd, bwd := true, true
	for i = 0; i < n && (fwd || bwd); i++ {
		if a[i] != b[(p+i)%n] {
			fwd = false
		}
		if a[i] != b[((p-i)%n+n)%n] {
			bwd = false
		}
	}

	return fwd || bwd
}
