// Package share holds the points a secret is reconstructed from and the
// per-record decoding step that produces them.
package share

import (
	"fmt"
	"math/big"
	"sort"
)

// Point is one evaluation (X, Y) of the unknown polynomial.
type Point struct {
	X int
	Y *big.Int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %s)", p.X, p.Y)
}

// Record is a raw input unit: an index and a value written in some base.
// Base is kept as text so an unparsable base fails that record only.
type Record struct {
	Index  int
	Base   string
	Digits string
}

// PointSet is the collection of decoded points of one case, ordered by
// ascending X. N and K are the declared share count and threshold.
type PointSet struct {
	N      int
	K      int
	points []Point
}

// NewPointSet builds a PointSet. Points are stably sorted by X; points with
// equal X are kept so that reconstruction can report them.
func NewPointSet(n, k int, points ...Point) *PointSet {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})
	return &PointSet{N: n, K: k, points: sorted}
}

// Points returns the points in ascending X order.
func (ps *PointSet) Points() []Point {
	out := make([]Point, len(ps.points))
	copy(out, ps.points)
	return out
}

// Len returns the number of available points.
func (ps *PointSet) Len() int {
	return len(ps.points)
}

// Sufficient reports whether at least K points are available.
func (ps *PointSet) Sufficient() bool {
	return len(ps.points) >= ps.K
}
