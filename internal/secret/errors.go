package secret

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInsufficientPoints is returned when fewer points than the
	// threshold are available.
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrDuplicateIndex is returned when two selected points share an X.
	ErrDuplicateIndex = errors.New("duplicate index")

	// ErrNonIntegerResult is returned when the interpolated value at zero
	// is not an integer.
	ErrNonIntegerResult = errors.New("non-integer result")

	// ErrInconsistentPoint is returned by strict cross-validation when an
	// unselected point does not lie on the reconstructed polynomial.
	ErrInconsistentPoint = errors.New("inconsistent point")
)

// InsufficientPointsError reports how many points were available and needed.
type InsufficientPointsError struct {
	Have int
	Need int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: need %d, have %d", e.Need, e.Have)
}

func (e *InsufficientPointsError) Unwrap() error { return ErrInsufficientPoints }

// DuplicateIndexError names the repeated X.
type DuplicateIndexError struct {
	X int
}

func (e *DuplicateIndexError) Error() string {
	return fmt.Sprintf("duplicate index: x=%d appears more than once in the selected points", e.X)
}

func (e *DuplicateIndexError) Unwrap() error { return ErrDuplicateIndex }

// NonIntegerResultError carries the exact fraction that was computed.
type NonIntegerResultError struct {
	Value *big.Rat
}

func (e *NonIntegerResultError) Error() string {
	return fmt.Sprintf("non-integer result: f(0) = %s", e.Value.RatString())
}

func (e *NonIntegerResultError) Unwrap() error { return ErrNonIntegerResult }

// InconsistentPointError lists the points off the reconstructed polynomial.
type InconsistentPointError struct {
	Mismatches []Mismatch
}

func (e *InconsistentPointError) Error() string {
	if len(e.Mismatches) == 1 {
		return fmt.Sprintf("inconsistent point: %s", e.Mismatches[0])
	}
	return fmt.Sprintf("inconsistent points: %d points do not lie on the polynomial (first: %s)",
		len(e.Mismatches), e.Mismatches[0])
}

func (e *InconsistentPointError) Unwrap() error { return ErrInconsistentPoint }
