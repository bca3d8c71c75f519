// Package tsp_test: benchmarks for the three solvers and the evaluator.
// Inputs are built outside the timer; seeds are fixed.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/salesman/tsp"
)

func BenchmarkPathDistance_n100(b *testing.B) {
	inst := randomInstance(100, seedDet)
	p := tsp.RandomPath(100, rngFor(seedDet))

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		_ = inst.Distance(p)
	}
}

func BenchmarkBruteForce_n8(b *testing.B) {
	inst := randomInstance(8, seedDet)

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		_ = inst.BruteForce()
	}
}

func BenchmarkHillClimb_n40(b *testing.B) {
	inst := randomInstance(40, seedDet)
	rng := rngFor(seedDet)

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		_ = inst.HillClimb(rng)
	}
}

func BenchmarkSimulatedAnnealing_n100(b *testing.B) {
	inst := randomInstance(100, seedDet)
	rng := rngFor(seedDet)
	opts := tsp.AnnealOptions{InitialTemp: 1000, CoolingRate: 0.999, Iterations: 10000}

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		_ = inst.SimulatedAnnealing(rng, opts)
	}
}
