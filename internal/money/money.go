// Package money implements the fixed-point, two-decimal, non-negative
// scalar used for prices and totals throughout the order book.
//
// Input is parsed directly from decimal text via shopspring/decimal, never
// through float64. A string like "44.26" is read digit by digit, so there
// is no binary-rounding error to inherit. Rendering always zero-pads the
// fractional part to two digits.
package money

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"depthquote/internal/bookerr"
)

// decimalFormat accepts an unsigned integer, optionally followed by a
// fractional part of one or two digits. Signs, exponents and more than two
// fractional digits are all rejected as MalformedPrice.
var decimalFormat = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

// Money is a non-negative amount with exactly two decimal places of
// precision, internally backed by an exact (non-floating-point) decimal.
type Money struct {
	v decimal.Decimal
}

// Zero is the additive identity.
var Zero = Money{v: decimal.Zero}

// Parse reads a price or total from its canonical decimal text. It fails
// with bookerr.ErrMalformedPrice if the string is not a non-negative
// decimal with at most two fractional digits.
func Parse(s string) (Money, error) {
	if !decimalFormat.MatchString(s) {
		return Money{}, errors.Wrapf(bookerr.ErrMalformedPrice, "price %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errors.Wrapf(bookerr.ErrMalformedPrice, "price %q", s)
	}
	return Money{v: d.Truncate(2)}, nil
}

// MustParse is Parse for fixtures and constants; it panics on malformed
// input and should never be called on untrusted data.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other, exactly.
func (m Money) Add(other Money) Money {
	return Money{v: m.v.Add(other.v)}
}

// MulInt returns m multiplied by the integer quantity k, exactly.
func (m Money) MulInt(k int64) Money {
	return Money{v: m.v.Mul(decimal.NewFromInt(k))}
}

// Equal reports whether m and other represent the same amount.
func (m Money) Equal(other Money) bool {
	return m.v.Equal(other.v)
}

// Cmp returns -1, 0, or 1 as m is less than, equal to, or greater than other.
func (m Money) Cmp(other Money) int {
	return m.v.Cmp(other.v)
}

// String renders the amount as "Q.RR": the integer part, a dot, and the
// fractional part zero-padded to exactly two digits.
func (m Money) String() string {
	return m.v.StringFixed(2)
}
