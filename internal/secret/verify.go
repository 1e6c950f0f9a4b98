package secret

import (
	"fmt"
	"math/big"

	"github.com/dbsmedya/gosecret/internal/share"
)

// Mismatch is an unselected point whose Y differs from the value the
// reconstructed polynomial takes at its X.
type Mismatch struct {
	X        int
	Got      *big.Int
	Expected *big.Rat
}

func (m Mismatch) String() string {
	return fmt.Sprintf("x=%d has y=%s, polynomial gives %s", m.X, m.Got, m.Expected.RatString())
}

// CrossValidate checks every point of others against the polynomial through
// selected and returns those that do not lie on it.
func CrossValidate(selected, others []share.Point) ([]Mismatch, error) {
	var mismatches []Mismatch
	for _, p := range others {
		want, err := InterpolateAt(selected, p.X)
		if err != nil {
			return nil, err
		}
		if !want.IsInt() || want.Num().Cmp(p.Y) != 0 {
			mismatches = append(mismatches, Mismatch{X: p.X, Got: p.Y, Expected: want})
		}
	}
	return mismatches, nil
}

// Verify cross-validates a reconstruction against its unselected points.
// It returns an *InconsistentPointError when any of them is off the curve.
func (r *Reconstruction) Verify() ([]Mismatch, error) {
	mismatches, err := CrossValidate(r.Selected, r.Unselected)
	if err != nil {
		return nil, err
	}
	if len(mismatches) > 0 {
		return mismatches, &InconsistentPointError{Mismatches: mismatches}
	}
	return nil, nil
}
