package book

import (
	"sort"

	"depthquote/internal/money"
)

// priceLevel is one price point in a ladder: the aggregate remaining size
// of every live order at that price on one side of the book.
type priceLevel struct {
	price money.Money
	depth int64
}

// ladder holds one side's price levels, sorted in aggressive-first order:
// ascending price for asks, descending price for bids. It is a sorted
// slice rather than a balanced tree or a hash map. At the ladder sizes
// this engine sees in practice (a few hundred distinct price points),
// that beats the constant-factor overhead of a tree for both insertion
// and the full-ladder summarise walk.
//
// Levels are never removed once created, even after their depth drops to
// zero: a later order at the same price simply finds the existing level
// again, and the summarise walk skips zero-depth levels without needing
// to compact the slice.
type ladder struct {
	levels []priceLevel
	// before reports whether a is strictly more aggressive than b for this
	// side: lower price for asks, higher price for bids.
	before func(a, b money.Money) bool
}

func newAskLadder() *ladder {
	return &ladder{before: func(a, b money.Money) bool { return a.Cmp(b) < 0 }}
}

func newBidLadder() *ladder {
	return &ladder{before: func(a, b money.Money) bool { return a.Cmp(b) > 0 }}
}

// find returns the index of price's level, and whether it was found. If
// not found, the index is where a new level for price should be inserted
// to keep levels in aggressive order.
func (l *ladder) find(price money.Money) (idx int, ok bool) {
	idx = sort.Search(len(l.levels), func(i int) bool {
		return !l.before(l.levels[i].price, price)
	})
	if idx < len(l.levels) && l.levels[idx].price.Equal(price) {
		return idx, true
	}
	return idx, false
}

// add locates price's level, creating it with depth delta if absent, or
// increases its depth by delta if present.
func (l *ladder) add(price money.Money, delta int64) {
	idx, ok := l.find(price)
	if ok {
		l.levels[idx].depth += delta
		return
	}
	l.levels = append(l.levels, priceLevel{})
	copy(l.levels[idx+1:], l.levels[idx:])
	l.levels[idx] = priceLevel{price: price, depth: delta}
}

// reduce decreases price's level by delta. If price has no level, reduce
// is a no-op, matching a well-formed stream where a Reduce always targets
// a price the cache already resolved. Depth is clamped at zero rather
// than allowed to go negative, since a Reduce that overshoots the
// remaining depth only happens on a malformed stream the engine otherwise
// treats as out of scope.
func (l *ladder) reduce(price money.Money, delta int64) {
	idx, ok := l.find(price)
	if !ok {
		return
	}
	l.levels[idx].depth -= delta
	if l.levels[idx].depth < 0 {
		l.levels[idx].depth = 0
	}
}

// walk visits every level in aggressive-first order, calling f with each
// level's price and depth (including zero-depth levels) until f returns
// false or the ladder is exhausted.
func (l *ladder) walk(f func(price money.Money, depth int64) bool) {
	for _, lvl := range l.levels {
		if !f(lvl.price, lvl.depth) {
			return
		}
	}
}
