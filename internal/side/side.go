// Package side implements the two-valued Bid/Ask tag shared by events,
// price levels, and reports.
package side

import (
	"github.com/pkg/errors"

	"depthquote/internal/bookerr"
)

// Side distinguishes the buy side of the book from the sell side.
type Side string

const (
	// Bid is the buy side.
	Bid Side = "B"
	// Ask is the sell side.
	Ask Side = "S"
)

// Parse reads a side token ("B" or "S"). Anything else fails with
// bookerr.ErrMalformedSide.
func Parse(token string) (Side, error) {
	switch token {
	case string(Bid):
		return Bid, nil
	case string(Ask):
		return Ask, nil
	default:
		return "", errors.Wrapf(bookerr.ErrMalformedSide, "side %q", token)
	}
}

// Negate returns the opposite side: Bid for Ask, Ask for Bid.
func (s Side) Negate() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

// String renders the one-character side code.
func (s Side) String() string {
	return string(s)
}
