package tsp

import (
	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/matrix"
)

// Tsp is a problem instance: a fixed node sequence and its DistanceMatrix.
// It is read-only after construction and safe for concurrent solver calls,
// provided each call gets its own *rand.Rand.
type Tsp struct {
	nodes []geom.Node
	dist  *DistanceMatrix
}

// New builds an instance over nodes, computing the Euclidean DistanceMatrix
// once. The node slice is copied.
//
// Complexity: O(n²).
func New(nodes []geom.Node) *Tsp {
	own := make([]geom.Node, len(nodes))
	copy(own, nodes)

	return &Tsp{nodes: own, dist: NewDistanceMatrix(own)}
}

// NewFromMatrix builds an instance from a precomputed cost matrix.
// nodes may be nil; otherwise len(nodes) must equal the matrix order.
//
// Errors: ErrDimensionMismatch and the matrix sentinels of DistanceMatrixFrom.
func NewFromMatrix(nodes []geom.Node, m matrix.Matrix) (*Tsp, error) {
	d, err := DistanceMatrixFrom(m)
	if err != nil {
		return nil, err
	}
	if nodes != nil && len(nodes) != d.Len() {
		return nil, ErrDimensionMismatch
	}
	own := make([]geom.Node, len(nodes))
	copy(own, nodes)

	return &Tsp{nodes: own, dist: d}, nil
}

// Len returns the number of stops n.
func (t *Tsp) Len() int { return t.dist.Len() }

// Nodes returns a copy of the node sequence.
func (t *Tsp) Nodes() []geom.Node {
	out := make([]geom.Node, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Distances exposes the shared read-only DistanceMatrix.
func (t *Tsp) Distances() *DistanceMatrix { return t.dist }

// Distance evaluates path against the instance; see PathDistance.
func (t *Tsp) Distance(path []int) float64 { return t.dist.PathDistance(path) }

// Route wraps a path with its freshly computed distance. The path is copied.
func (t *Tsp) Route(path []int) Route {
	p := CopyPath(path)

	return Route{Path: p, Distance: t.dist.PathDistance(p)}
}
