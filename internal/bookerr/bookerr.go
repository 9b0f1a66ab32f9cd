// Package bookerr defines the sentinel errors the engine and dispatcher
// raise, matched by callers with errors.Is rather than type assertions.
package bookerr

import "errors"

var (
	// ErrMalformedEvent means a line could not be parsed into an Add or
	// Reduce event: wrong token count, an unparseable integer field, or a
	// size below 1.
	ErrMalformedEvent = errors.New("malformed event")

	// ErrMalformedSide means an Add event's side token was neither "B" nor "S".
	ErrMalformedSide = errors.New("malformed side")

	// ErrMalformedPrice means a price token was not a plain decimal string
	// with at most two fractional digits.
	ErrMalformedPrice = errors.New("malformed price")

	// ErrUnknownOrderID means a Reduce referenced an id with no prior Add.
	// Unlike the parse errors above, this is fatal: the input stream is
	// corrupt and processing cannot continue.
	ErrUnknownOrderID = errors.New("unknown order id")
)
