package secret

import (
	"fmt"

	"github.com/dbsmedya/gosecret/internal/share"
)

// Selector picks the k points used for interpolation out of a set ordered
// by ascending X. Implementations must be deterministic.
type Selector interface {
	Name() string
	Select(points []share.Point, k int) ([]share.Point, error)
}

// FirstK selects the k points with the lowest indices.
type FirstK struct{}

func (FirstK) Name() string { return "first-k" }

func (FirstK) Select(points []share.Point, k int) ([]share.Point, error) {
	if err := checkCount(len(points), k); err != nil {
		return nil, err
	}
	return points[:k], nil
}

// LastK selects the k points with the highest indices.
type LastK struct{}

func (LastK) Name() string { return "last-k" }

func (LastK) Select(points []share.Point, k int) ([]share.Point, error) {
	if err := checkCount(len(points), k); err != nil {
		return nil, err
	}
	return points[len(points)-k:], nil
}

func checkCount(have, k int) error {
	if k < 1 || have < k {
		return &InsufficientPointsError{Have: have, Need: k}
	}
	return nil
}

// SelectorByName returns the selector registered under name.
func SelectorByName(name string) (Selector, error) {
	switch name {
	case "", "first-k":
		return FirstK{}, nil
	case "last-k":
		return LastK{}, nil
	default:
		return nil, fmt.Errorf("unknown selector %q (want first-k or last-k)", name)
	}
}

// SelectorNames lists the names accepted by SelectorByName.
func SelectorNames() []string {
	return []string{FirstK{}.Name(), LastK{}.Name()}
}
