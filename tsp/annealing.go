// Package tsp - simulated annealing over random 2-swaps.
//
// Each iteration:
//  1. cur  = PathDistance(path)
//  2. draw i, j uniformly from [0,n) independently (i == j is a no-op swap)
//  3. swap path[i], path[j]; next = PathDistance(path); Δ = next − cur
//  4. Δ ≤ 0 ⇒ keep; Δ > 0 ⇒ keep with probability exp(−Δ/T), else swap back
//  5. T ← T·CoolingRate, whatever the outcome
//
// The acceptance draw is taken only when Δ > 0, so the random stream
// consumed per iteration is 2 or 3 values.
//
// Complexity: O(Iterations·n) time, O(n) space.
package tsp

import (
	"math"
	"math/rand"
)

// SimulatedAnnealing runs the fixed-budget annealing schedule in opts from a
// random start route and returns the final route with a freshly computed
// distance. With opts.Iterations == 0 the start route is returned as drawn.
//
// opts is not validated here (see AnnealOptions.Validate). Once the
// temperature has cooled to zero every worsening move is rejected.
// n == 0 returns an empty route.
func (t *Tsp) SimulatedAnnealing(rng *rand.Rand, opts AnnealOptions) Route {
	n := t.Len()
	if n == 0 {
		return Route{Path: []int{}, Distance: 0}
	}

	r := rngOrDefault(rng)
	path := RandomPath(n, r)
	temp := opts.InitialTemp

	var (
		it        int
		i, j      int
		cur, next float64
		delta     float64
	)
	for it = 0; it < opts.Iterations; it++ {
		cur = t.dist.PathDistance(path)

		i = r.Intn(n)
		j = r.Intn(n)
		path[i], path[j] = path[j], path[i]

		next = t.dist.PathDistance(path)
		delta = next - cur

		// Metropolis criterion: worsening moves survive with probability exp(−Δ/T).
		if delta > 0 && math.Exp(-delta/temp) < r.Float64() {
			path[i], path[j] = path[j], path[i]
		}

		temp *= opts.CoolingRate
	}

	return Route{Path: path, Distance: t.dist.PathDistance(path)}
}
