// Package tsp: route evaluation.
//
// PathDistance is the fitness function shared by every solver. It always
// re-sums the whole cycle; no solver takes an incremental shortcut, so all
// of them observe identical floating-point totals for identical paths.
package tsp

// PathDistance returns the total cyclic length of path:
//
//	Σ_{i=1..n-1} d(path[i-1], path[i])  +  d(path[0], path[n-1])
//
// An empty path has distance 0, and so does a single-node path because the
// diagonal is zero. path must hold valid indices; it is not modified.
//
// Complexity: O(n).
func (d *DistanceMatrix) PathDistance(path []int) float64 {
	n := len(path)
	if n == 0 {
		return 0
	}

	var (
		total float64
		i     int
	)
	for i = 1; i < n; i++ {
		total += d.w[path[i-1]*d.n+path[i]]
	}
	total += d.w[path[0]*d.n+path[n-1]]

	return total
}
