package tsp

import "math/rand"

// SampleRoutes draws k random routes and returns them together with their
// mean distance, a baseline for judging the solvers. k ≤ 0 yields no routes
// and a zero mean.
//
// Complexity: O(k·n).
func (t *Tsp) SampleRoutes(rng *rand.Rand, k int) ([]Route, float64) {
	if k <= 0 {
		return nil, 0
	}
	r := rngOrDefault(rng)
	n := t.Len()

	var (
		out   = make([]Route, k)
		total float64
		i     int
	)
	for i = 0; i < k; i++ {
		p := RandomPath(n, r)
		out[i] = Route{Path: p, Distance: t.dist.PathDistance(p)}
		total += out[i].Distance
	}

	return out, total / float64(k)
}
