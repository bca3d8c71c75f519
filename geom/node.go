package geom

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DefaultExtent is the side length of the square [0, DefaultExtent)² used by
// RandomNodes when no explicit extent is given.
const DefaultExtent = 100.0

// Node is a single stop of a tour.
// ID is assigned at creation and never changes; Pos is the planar position.
type Node struct {
	ID  int
	Pos orb.Point
}

// NewNode builds a Node at (x, y).
func NewNode(id int, x, y float64) Node {
	return Node{ID: id, Pos: orb.Point{x, y}}
}

// X returns the horizontal coordinate.
func (n Node) X() float64 { return n.Pos.X() }

// Y returns the vertical coordinate.
func (n Node) Y() float64 { return n.Pos.Y() }

// String renders the node as "id: (x, y)" with two decimals.
func (n Node) String() string {
	return fmt.Sprintf("%d: (%.2f, %.2f)", n.ID, n.Pos.X(), n.Pos.Y())
}

// Distance returns the Euclidean distance between a and b.
// Non-finite coordinates propagate into the result; validating them is the
// caller's job.
//
// Complexity: O(1).
func Distance(a, b Node) float64 {
	return planar.Distance(a.Pos, b.Pos)
}

// RandomNodes returns n nodes with ids 0..n-1 drawn uniformly from
// [0, extent)². A non-positive extent falls back to DefaultExtent.
// If rng is nil a fresh deterministic stream (seed 1) is used.
//
// Complexity: O(n) time, O(n) space.
func RandomNodes(n int, extent float64, rng *rand.Rand) []Node {
	if n <= 0 {
		return []Node{}
	}
	if extent <= 0 {
		extent = DefaultExtent
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	nodes := make([]Node, n)
	var i int
	for i = 0; i < n; i++ {
		nodes[i] = NewNode(i, rng.Float64()*extent, rng.Float64()*extent)
	}

	return nodes
}

// Bounds returns the bounding box of the given nodes (zero Bound if empty).
func Bounds(nodes []Node) orb.Bound {
	if len(nodes) == 0 {
		return orb.Bound{}
	}
	b := nodes[0].Pos.Bound()
	for _, nd := range nodes[1:] {
		b = b.Extend(nd.Pos)
	}

	return b
}
