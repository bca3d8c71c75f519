// Package geom holds the planar input model of the salesman solvers.
//
// A Node is an immutable point on the plane tagged with an integer id.
// Positions are orb.Point values so that callers can feed the nodes into
// any orb-based tooling (bounds, projections, GeoJSON export) unchanged.
//
// Distances are plain Euclidean distances computed by orb/planar:
//
//	d(a, b) = √((ax−bx)² + (ay−by)²)
//
// RandomNodes draws nodes uniformly from a square using an explicit
// *rand.Rand; there is no package-level random state.
package geom
