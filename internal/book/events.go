// Package book implements the order book engine: event parsing, the
// id-to-(price,side) cache, the per-side depth ladders, and the target
// clearing summary.
package book

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"depthquote/internal/bookerr"
	"depthquote/internal/money"
	"depthquote/internal/side"
)

// Event is either an AddEvent or a ReduceEvent, as parsed from one input
// line. ParseLine returns a nil Event (and a nil error) for blank or
// unrecognised lines, which the dispatcher ignores.
type Event interface {
	isEvent()
}

// AddEvent places a new resting order on the book.
type AddEvent struct {
	Timestamp int64
	ID        string
	Side      side.Side
	Price     money.Money
	Size      int64
}

func (AddEvent) isEvent() {}

// ReduceEvent shrinks (or fully removes) the remaining size of a previously
// added order, identified by id.
type ReduceEvent struct {
	Timestamp int64
	ID        string
	Size      int64
}

func (ReduceEvent) isEvent() {}

// ParseLine tokenises one input line and parses it into an Event.
//
// A line whose second token is neither "A" nor "R" is ignored: ParseLine
// returns (nil, nil). A line that looks like an Add or Reduce but fails to
// parse (too few tokens, an unparseable integer, a malformed side or
// price) returns (nil, err) wrapping one of bookerr's sentinel errors; the
// caller is expected to skip such lines and continue, per the engine's
// error policy.
func ParseLine(line string) (Event, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return nil, nil
	}

	switch tokens[1] {
	case "A":
		return parseAdd(tokens)
	case "R":
		return parseReduce(tokens)
	default:
		return nil, nil
	}
}

func parseAdd(tokens []string) (Event, error) {
	if len(tokens) < 6 {
		return nil, errors.Wrapf(bookerr.ErrMalformedEvent, "add event has %d tokens, want 6", len(tokens))
	}

	ts, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(bookerr.ErrMalformedEvent, "timestamp %q", tokens[0])
	}

	sd, err := side.Parse(tokens[3])
	if err != nil {
		return nil, err
	}

	price, err := money.Parse(tokens[4])
	if err != nil {
		return nil, err
	}

	size, err := strconv.ParseInt(tokens[5], 10, 64)
	if err != nil || size < 1 {
		return nil, errors.Wrapf(bookerr.ErrMalformedEvent, "size %q", tokens[5])
	}

	return AddEvent{
		Timestamp: ts,
		ID:        tokens[2],
		Side:      sd,
		Price:     price,
		Size:      size,
	}, nil
}

func parseReduce(tokens []string) (Event, error) {
	if len(tokens) < 4 {
		return nil, errors.Wrapf(bookerr.ErrMalformedEvent, "reduce event has %d tokens, want 4", len(tokens))
	}

	ts, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(bookerr.ErrMalformedEvent, "timestamp %q", tokens[0])
	}

	size, err := strconv.ParseInt(tokens[3], 10, 64)
	if err != nil || size < 1 {
		return nil, errors.Wrapf(bookerr.ErrMalformedEvent, "size %q", tokens[3])
	}

	return ReduceEvent{
		Timestamp: ts,
		ID:        tokens[2],
		Size:      size,
	}, nil
}
