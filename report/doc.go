// Package report renders the outcome of one salesman run.
//
// Two formats are supported:
//
//   - text: the console layout of the classic demo (node list, random
//     baseline, then one block per solver, each closed by a dashed rule);
//   - yaml: the same data as a single YAML document, for scripting.
//
// The YAML layout is informal and may change between releases.
package report
