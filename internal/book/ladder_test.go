package book

import (
	"testing"

	"github.com/stretchr/testify/require"

	"depthquote/internal/money"
)

func collect(l *ladder) []priceLevel {
	var out []priceLevel
	l.walk(func(price money.Money, depth int64) bool {
		out = append(out, priceLevel{price: price, depth: depth})
		return true
	})
	return out
}

func TestAskLadderOrdersAscending(t *testing.T) {
	l := newAskLadder()
	l.add(money.MustParse("44.26"), 100)
	l.add(money.MustParse("44.10"), 50)
	l.add(money.MustParse("60.00"), 10)

	levels := collect(l)
	require.Len(t, levels, 3)
	require.Equal(t, "44.10", levels[0].price.String())
	require.Equal(t, "44.26", levels[1].price.String())
	require.Equal(t, "60.00", levels[2].price.String())
}

func TestBidLadderOrdersDescending(t *testing.T) {
	l := newBidLadder()
	l.add(money.MustParse("1.00"), 1)
	l.add(money.MustParse("2.00"), 1)

	levels := collect(l)
	require.Len(t, levels, 2)
	require.Equal(t, "2.00", levels[0].price.String())
	require.Equal(t, "1.00", levels[1].price.String())
}

func TestLadderAddAccumulatesAtSamePrice(t *testing.T) {
	l := newAskLadder()
	l.add(money.MustParse("44.26"), 100)
	l.add(money.MustParse("44.26"), 50)

	levels := collect(l)
	require.Len(t, levels, 1)
	require.Equal(t, int64(150), levels[0].depth)
}

func TestLadderReduceIsNoOpForMissingPrice(t *testing.T) {
	l := newAskLadder()
	l.add(money.MustParse("44.26"), 100)
	l.reduce(money.MustParse("99.99"), 10)

	levels := collect(l)
	require.Len(t, levels, 1)
	require.Equal(t, int64(100), levels[0].depth)
}

func TestLadderReduceClampsAtZero(t *testing.T) {
	l := newAskLadder()
	l.add(money.MustParse("44.26"), 100)
	l.reduce(money.MustParse("44.26"), 150)

	levels := collect(l)
	require.Len(t, levels, 1)
	require.Equal(t, int64(0), levels[0].depth)
}

func TestLadderRetainsZeroDepthLevels(t *testing.T) {
	l := newAskLadder()
	l.add(money.MustParse("44.26"), 100)
	l.reduce(money.MustParse("44.26"), 100)
	l.add(money.MustParse("45.00"), 5)

	levels := collect(l)
	require.Len(t, levels, 2)
	require.Equal(t, int64(0), levels[0].depth)
}

func TestLadderWalkStopsEarly(t *testing.T) {
	l := newAskLadder()
	l.add(money.MustParse("1.00"), 1)
	l.add(money.MustParse("2.00"), 1)
	l.add(money.MustParse("3.00"), 1)

	var seen int
	l.walk(func(price money.Money, depth int64) bool {
		seen++
		return seen < 2
	})
	require.Equal(t, 2, seen)
}
