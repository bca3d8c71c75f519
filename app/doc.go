// Package app wires one salesman run together: it generates the nodes,
// builds the problem instance, runs the solvers and hands the outcome to
// the report renderer. All logging of the program happens here; the
// solver packages stay silent.
package app
