// Package tsp - 2-swap hill climbing.
//
// HillClimb performs best-improvement local search:
//   - Start: a uniformly random permutation (the first draw from rng).
//   - Neighborhood: every route obtained by exchanging the stops at two
//     distinct positions i<j, C(n,2) candidates in total.
//   - Move: evaluate all candidates, pick the single best (first found on
//     ties) and take it only if strictly shorter than the current route.
//   - Stop: no candidate is strictly shorter (local optimum).
//
// Candidates are evaluated in place (swap, PathDistance, swap back), so a
// scan allocates nothing.
//
// Complexity:
//   - One scan: O(n²) candidates × O(n) evaluation = O(n³).
//   - Number of moves is bounded by the number of distinct route lengths.
package tsp

import (
	"math"
	"math/rand"
)

// HillClimb returns a 2-swap local optimum reached from a random start.
// n == 0 returns an empty route; n == 1 returns [0] without touching rng.
// Different generators may yield different local optima.
func (t *Tsp) HillClimb(rng *rand.Rand) Route {
	n := t.Len()
	switch n {
	case 0:
		return Route{Path: []int{}, Distance: 0}
	case 1:
		return Route{Path: []int{0}, Distance: 0}
	}

	cur := RandomPath(n, rngOrDefault(rng))
	cost := t.dist.PathDistance(cur)

	var (
		i, j         int
		bestI, bestJ int
		bestCost     float64
		cand         float64
	)
	for {
		bestI, bestJ = -1, -1
		bestCost = math.Inf(1)

		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				cur[i], cur[j] = cur[j], cur[i]
				cand = t.dist.PathDistance(cur)
				cur[i], cur[j] = cur[j], cur[i]

				if cand < bestCost {
					bestCost = cand
					bestI, bestJ = i, j
				}
			}
		}

		if bestI < 0 || bestCost >= cost {
			break
		}
		cur[bestI], cur[bestJ] = cur[bestJ], cur[bestI]
		cost = bestCost
	}

	return Route{Path: cur, Distance: cost}
}
