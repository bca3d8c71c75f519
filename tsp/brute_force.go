package tsp

import "math"

// BruteForce returns an optimal route by evaluating every permutation of
// 0..n-1 in lexicographic order, starting from the identity. A candidate
// replaces the incumbent only when strictly shorter, so ties go to the
// lexicographically first path.
//
// n == 0 returns an empty route, n == 1 returns [0]; both have distance 0.
// There is no size guard: callers decide when n! is affordable.
//
// Time complexity:  O(n!·n)
// Memory complexity: O(n)
func (t *Tsp) BruteForce() Route {
	n := t.Len()
	cur := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		cur[i] = i
	}

	var (
		best     = make([]int, n)
		bestCost = math.Inf(1)
		cost     float64
	)
	for {
		cost = t.dist.PathDistance(cur)
		if cost < bestCost {
			bestCost = cost
			copy(best, cur)
		}
		if !nextPermutation(cur) {
			break
		}
	}

	return Route{Path: best, Distance: bestCost}
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed; the last permutation is left untouched.
//
// Complexity: O(n) worst case, O(1) amortized.
func nextPermutation(p []int) bool {
	n := len(p)
	i := n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
