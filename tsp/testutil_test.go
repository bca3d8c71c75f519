// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny absorbs summation-order noise when comparing route lengths.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for RNG-based solvers.
	seedDet = int64(42)
)

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// rngFor returns a fresh generator for seed.
func rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// circleNodes places n nodes on a slightly rippled circle of radius ~10.
// The ripple breaks ties between mirror-image tours.
func circleNodes(n int) []geom.Node {
	nodes := make([]geom.Node, n)
	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10 + 0.25*float64(i%3)
		nodes[i] = geom.NewNode(i, r*math.Cos(th), r*math.Sin(th))
	}

	return nodes
}

// randomInstance builds an instance over n uniformly random nodes.
func randomInstance(n int, seed int64) *tsp.Tsp {
	return tsp.New(geom.RandomNodes(n, 100, rngFor(seed)))
}

// allPerms enumerates every permutation of 0..n-1 recursively (Heap-free
// swap recursion). Kept independent from the solver's own enumeration.
func allPerms(n int) [][]int {
	var out [][]int
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}

	var rec func(k int)
	rec = func(k int) {
		if k == n {
			out = append(out, slices.Clone(base))
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			rec(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	rec(0)

	return out
}

// cycleLen recomputes a tour length straight from node coordinates,
// bypassing the DistanceMatrix.
func cycleLen(nodes []geom.Node, path []int) float64 {
	n := len(path)
	if n == 0 {
		return 0
	}
	var total float64
	for i := 1; i < n; i++ {
		total += geom.Distance(nodes[path[i-1]], nodes[path[i]])
	}

	return total + geom.Distance(nodes[path[n-1]], nodes[path[0]])
}

// requireValidRoute asserts the route is a permutation of 0..n-1 whose
// distance matches a fresh evaluation.
func requireValidRoute(t *testing.T, inst *tsp.Tsp, r tsp.Route) {
	t.Helper()
	require.NoError(t, tsp.ValidatePath(r.Path, inst.Len()), "path %v", r.Path)

	sorted := slices.Clone(r.Path)
	slices.Sort(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v)
	}
	require.InDelta(t, inst.Distance(r.Path), r.Distance, epsTiny)
}
