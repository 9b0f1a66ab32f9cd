package book

import (
	"depthquote/internal/money"
	"depthquote/internal/side"
)

// originalPlacement is the (price, side) an order was first added at.
type originalPlacement struct {
	price money.Money
	side  side.Side
}

// idCache maps an opaque order id to the price and side it was originally
// added at. Entries are inserted on every Add and never removed (a repeated
// Add of the same id replaces the earlier entry): a Reduce must always be
// able to find where its order lives, and retaining the entry after the
// order's depth reaches zero costs only memory, never correctness.
type idCache map[string]originalPlacement

func newIDCache() idCache {
	return make(idCache)
}

// insert records id's original (price, side). Called once per Add.
func (c idCache) insert(id string, price money.Money, s side.Side) {
	c[id] = originalPlacement{price: price, side: s}
}

// lookup returns the (price, side) id was added at, or ok=false if id has
// never been added.
func (c idCache) lookup(id string) (money.Money, side.Side, bool) {
	p, ok := c[id]
	return p.price, p.side, ok
}
