package book

import (
	"github.com/pkg/errors"

	"depthquote/internal/bookerr"
	"depthquote/internal/money"
	"depthquote/internal/side"
)

// Book holds the live state of a single instrument's order book: the two
// depth ladders, the id cache, running per-side totals, the fixed target
// clearing size, and which side was touched by the most recently applied
// event.
type Book struct {
	target int64

	bids *ladder
	asks *ladder

	cache idCache

	bidsTotal int64
	asksTotal int64

	lastSide side.Side
	lastTS   int64
}

// NewBook creates an empty book that reports the cost or income of
// clearing target units against the opposite side of the book.
func NewBook(target int64) *Book {
	return &Book{
		target: target,
		bids:   newBidLadder(),
		asks:   newAskLadder(),
		cache:  newIDCache(),
	}
}

// ApplyAdd places a new order on the book: the ladder is grown or
// mutated, the side's running total advances, the id cache records where
// the order lives, and the book remembers this as the last-touched side.
func (b *Book) ApplyAdd(e AddEvent) {
	switch e.Side {
	case side.Bid:
		b.bids.add(e.Price, e.Size)
		b.bidsTotal += e.Size
	case side.Ask:
		b.asks.add(e.Price, e.Size)
		b.asksTotal += e.Size
	}

	b.cache.insert(e.ID, e.Price, e.Side)
	b.lastSide = e.Side
	b.lastTS = e.Timestamp
}

// ApplyReduce shrinks the remaining size of a previously added order. The
// order's (price, side) is resolved solely through the id cache; if the id
// was never added, ApplyReduce returns bookerr.ErrUnknownOrderID, which is
// fatal: the caller should abort the stream rather than keep processing.
func (b *Book) ApplyReduce(e ReduceEvent) error {
	price, sd, ok := b.cache.lookup(e.ID)
	if !ok {
		return errors.Wrapf(bookerr.ErrUnknownOrderID, "reduce referenced unknown id %q", e.ID)
	}

	switch sd {
	case side.Bid:
		b.bids.reduce(price, e.Size)
		b.bidsTotal -= e.Size
		if b.bidsTotal < 0 {
			b.bidsTotal = 0
		}
	case side.Ask:
		b.asks.reduce(price, e.Size)
		b.asksTotal -= e.Size
		if b.asksTotal < 0 {
			b.asksTotal = 0
		}
	}

	b.lastSide = sd
	b.lastTS = e.Timestamp
	return nil
}

// LastSide returns the side touched by the most recently applied event.
func (b *Book) LastSide() side.Side {
	return b.lastSide
}

// LastTimestamp returns the timestamp of the most recently applied event.
func (b *Book) LastTimestamp() int64 {
	return b.lastTS
}

// SummariseTarget reports the total cost or income of immediately
// clearing target units against the side most recently touched, walking
// that side's ladder in aggressive-price order; the result is what a
// counterparty on the opposite side could achieve. It returns ok=false if
// the last-touched side does not itself hold at least target units of
// depth: the ladder of the untouched side is never summarised, even if
// that side is already clearable.
func (b *Book) SummariseTarget() (total money.Money, ok bool) {
	switch {
	case b.lastSide == side.Bid && b.bidsTotal >= b.target:
		return b.sum(b.bids), true
	case b.lastSide == side.Ask && b.asksTotal >= b.target:
		return b.sum(b.asks), true
	default:
		return money.Zero, false
	}
}

// sum walks l in aggressive order, taking min(depth, remaining) at each
// level until target units have been accounted for.
func (b *Book) sum(l *ladder) money.Money {
	total := money.Zero
	remaining := b.target

	l.walk(func(price money.Money, depth int64) bool {
		if remaining <= 0 {
			return false
		}
		if depth == 0 {
			return true
		}

		take := depth
		if take > remaining {
			take = remaining
		}

		total = total.Add(price.MulInt(take))
		remaining -= take
		return true
	})

	return total
}
