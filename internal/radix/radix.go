// Package radix converts digit strings in bases 2 through 36 to and from
// exact integers.
package radix

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Alphabet is the digit alphabet; a digit's value is its position.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const (
	MinBase = 2
	MaxBase = 36
)

var (
	// ErrInvalidBase is returned when a base is outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("invalid base")

	// ErrInvalidDigit is returned when a character is not a legal digit
	// for the base it is decoded in.
	ErrInvalidDigit = errors.New("invalid digit")
)

// InvalidBaseError describes a base that cannot be used.
type InvalidBaseError struct {
	Base  int
	Input string // raw base text, set when parsing failed
}

func (e *InvalidBaseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid base %q: must be an integer between %d and %d", e.Input, MinBase, MaxBase)
	}
	return fmt.Sprintf("invalid base %d: must be between %d and %d", e.Base, MinBase, MaxBase)
}

func (e *InvalidBaseError) Unwrap() error { return ErrInvalidBase }

// InvalidDigitError describes the first illegal character of a digit string.
type InvalidDigitError struct {
	Base int
	Char rune
	Pos  int
}

func (e *InvalidDigitError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("invalid digit: empty digit string for base %d", e.Base)
	}
	return fmt.Sprintf("invalid digit %q at position %d for base %d", e.Char, e.Pos, e.Base)
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidDigit }

// ValidBase reports whether base can be used with Decode and Encode.
func ValidBase(base int) bool {
	return base >= MinBase && base <= MaxBase
}

// ParseBase parses the decimal text of a base, such as "16".
func ParseBase(s string) (int, error) {
	base, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidBaseError{Input: s}
	}
	if !ValidBase(base) {
		return 0, &InvalidBaseError{Base: base}
	}
	return base, nil
}

// digitValue returns the value of r in Alphabet, case-folded, or -1.
func digitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// Decode returns the exact value of digits read in the given base.
// Digits are consumed most significant first, so no power of base is
// ever materialized.
func Decode(digits string, base int) (*big.Int, error) {
	if !ValidBase(base) {
		return nil, &InvalidBaseError{Base: base}
	}
	if digits == "" {
		return nil, &InvalidDigitError{Base: base}
	}

	acc := new(big.Int)
	b := big.NewInt(int64(base))
	d := new(big.Int)

	pos := 0
	for _, r := range digits {
		v := digitValue(r)
		if v < 0 || v >= base {
			return nil, &InvalidDigitError{Base: base, Char: r, Pos: pos}
		}
		acc.Mul(acc, b)
		acc.Add(acc, d.SetInt64(int64(v)))
		pos++
	}
	return acc, nil
}

// Encode renders a non-negative v in the given base using lowercase digits.
func Encode(v *big.Int, base int) (string, error) {
	if !ValidBase(base) {
		return "", &InvalidBaseError{Base: base}
	}
	if v == nil || v.Sign() < 0 {
		return "", fmt.Errorf("encode: value must be non-negative")
	}
	if v.Sign() == 0 {
		return "0", nil
	}

	b := big.NewInt(int64(base))
	n := new(big.Int).Set(v)
	rem := new(big.Int)

	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, b, rem)
		out = append(out, Alphabet[rem.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}
