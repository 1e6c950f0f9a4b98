// Package secret recovers the constant term of a polynomial from a
// threshold of its points with Lagrange interpolation over exact rationals.
//
// For selected points (x_i, y_i) the value at zero is
//
//	f(0) = Σ_i y_i · Π_{j≠i} (0 - x_j) / (x_i - x_j)
//
// Every term is an exact fraction; nothing is rounded.
package secret

import (
	"math/big"

	"github.com/dbsmedya/gosecret/internal/share"
)

// Reconstruction is the outcome of a successful reconstruction.
type Reconstruction struct {
	Secret     *big.Int
	Selected   []share.Point
	Unselected []share.Point
}

// SelectedIndices returns the X of every selected point.
func (r *Reconstruction) SelectedIndices() []int {
	out := make([]int, len(r.Selected))
	for i, p := range r.Selected {
		out[i] = p.X
	}
	return out
}

// Option configures a Reconstructor.
type Option func(*Reconstructor)

// WithSelector sets the point selection strategy.
func WithSelector(s Selector) Option {
	return func(r *Reconstructor) {
		if s != nil {
			r.selector = s
		}
	}
}

// Reconstructor selects k points from a PointSet and interpolates f(0).
// It holds no state between calls.
type Reconstructor struct {
	selector Selector
}

// New returns a Reconstructor using FirstK unless overridden.
func New(opts ...Option) *Reconstructor {
	r := &Reconstructor{selector: FirstK{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Selector returns the configured selector.
func (r *Reconstructor) Selector() Selector {
	return r.selector
}

// Reconstruct selects k points of ps and returns the secret together with
// the points that were and were not used.
func (r *Reconstructor) Reconstruct(ps *share.PointSet, k int) (*Reconstruction, error) {
	points := ps.Points()
	selected, err := r.selector.Select(points, k)
	if err != nil {
		return nil, err
	}

	s, err := InterpolateZero(selected)
	if err != nil {
		return nil, err
	}

	return &Reconstruction{
		Secret:     s,
		Selected:   selected,
		Unselected: difference(points, selected),
	}, nil
}

// Reconstruct returns the secret of ps using the first k points by index.
func Reconstruct(ps *share.PointSet, k int) (*big.Int, error) {
	rec, err := New().Reconstruct(ps, k)
	if err != nil {
		return nil, err
	}
	return rec.Secret, nil
}

// InterpolateZero returns f(0) for the polynomial through exactly the given
// points. Terms are summed over a common denominator that is reduced once.
func InterpolateZero(points []share.Point) (*big.Int, error) {
	if len(points) == 0 {
		return nil, &InsufficientPointsError{Have: 0, Need: 1}
	}
	if err := checkDistinct(points); err != nil {
		return nil, err
	}

	sumNum := new(big.Int)
	sumDen := big.NewInt(1)

	for i, pi := range points {
		num := big.NewInt(1)
		den := big.NewInt(1)
		xi := big.NewInt(int64(pi.X))

		for j, pj := range points {
			if i == j {
				continue
			}
			xj := big.NewInt(int64(pj.X))
			num.Mul(num, new(big.Int).Neg(xj))
			den.Mul(den, new(big.Int).Sub(xi, xj))
		}
		num.Mul(num, pi.Y)

		// sumNum/sumDen + num/den
		sumNum.Mul(sumNum, den)
		sumNum.Add(sumNum, num.Mul(num, sumDen))
		sumDen.Mul(sumDen, den)
	}

	v := new(big.Rat).SetFrac(sumNum, sumDen)
	if !v.IsInt() {
		return nil, &NonIntegerResultError{Value: v}
	}
	return new(big.Int).Set(v.Num()), nil
}

// InterpolateAt evaluates the polynomial through points at x.
func InterpolateAt(points []share.Point, x int) (*big.Rat, error) {
	if len(points) == 0 {
		return nil, &InsufficientPointsError{Have: 0, Need: 1}
	}
	if err := checkDistinct(points); err != nil {
		return nil, err
	}

	bx := big.NewInt(int64(x))
	sum := new(big.Rat)
	for i, pi := range points {
		num := new(big.Int).Set(pi.Y)
		den := big.NewInt(1)
		xi := big.NewInt(int64(pi.X))

		for j, pj := range points {
			if i == j {
				continue
			}
			xj := big.NewInt(int64(pj.X))
			num.Mul(num, new(big.Int).Sub(bx, xj))
			den.Mul(den, new(big.Int).Sub(xi, xj))
		}
		sum.Add(sum, new(big.Rat).SetFrac(num, den))
	}
	return sum, nil
}

func checkDistinct(points []share.Point) error {
	seen := make(map[int]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p.X]; ok {
			return &DuplicateIndexError{X: p.X}
		}
		seen[p.X] = struct{}{}
	}
	return nil
}

// difference returns the points of all that are not in subset. subset must
// be drawn from all, which holds for every Selector.
func difference(all, subset []share.Point) []share.Point {
	used := make(map[int]int, len(subset))
	for _, p := range subset {
		used[p.X]++
	}
	var out []share.Point
	for _, p := range all {
		if used[p.X] > 0 {
			used[p.X]--
			continue
		}
		out = append(out, p)
	}
	return out
}
