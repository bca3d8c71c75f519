// Package tsp provides Travelling Salesman Problem solvers over points in
// the plane.
//
// A problem instance (Tsp) owns a node set and its DistanceMatrix, computed
// once at construction and read-only afterwards. Three independent solvers
// run over that matrix:
//
//   - BruteForce: exact; enumerates all n! visiting orders, O(n!·n).
//     Use for n≲10 only; the solver itself imposes no limit.
//   - HillClimb: best-improvement local search over the 2-swap
//     neighborhood of a random start, stopping at a local optimum.
//     O(n³) per move.
//   - SimulatedAnnealing: random 2-swaps accepted by the Metropolis
//     criterion exp(−Δ/T), geometric cooling over a fixed iteration
//     budget, O(iterations·n).
//
// Routes are open permutations of node indices; the closing edge from the
// last back to the first index is implied and included in Route.Distance.
//
// Randomness is always injected as a *rand.Rand. Passing nil selects a fixed
// default stream, so every solver is reproducible under a seed.
package tsp
