// Package dispatch reads one event per line, applies it to an order book,
// and emits a report line whenever the target-clearing total changes.
package dispatch

import (
	"bufio"
	"fmt"
	"io"

	"depthquote/internal/book"
	"depthquote/internal/money"
	"depthquote/internal/side"
)

// report is the per-side memory of what was last emitted: "None" (has is
// false) until a value has been reported for that side and again after an
// NA report, "Some(value)" while the last report for that side was a value.
type report struct {
	has   bool
	value money.Money
}

// Run reads whitespace-separated events, one per line, from r, applies
// each to book, and writes a report line to w whenever the target-clearing
// total for the side just made reportable changes. It returns on EOF, or
// immediately on a fatal error: an unknown order id referenced by a
// Reduce, a read error from r, or a write error to w.
//
// The two sides keep independent "last reported" memories, matching the
// book's own asymmetry: a report is only ever compared against the prior
// report for the same reporting side, never against the side that was
// just touched.
func Run(r io.Reader, w io.Writer, bk *book.Book) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	prev := map[side.Side]report{
		side.Bid: {},
		side.Ask: {},
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		ev, err := book.ParseLine(line)
		if err != nil {
			// MalformedEvent / MalformedSide / MalformedPrice: skip the
			// line, leave the book untouched, keep reading.
			continue
		}
		if ev == nil {
			// Blank or unrecognised line: no state change, no report.
			continue
		}

		switch e := ev.(type) {
		case book.AddEvent:
			bk.ApplyAdd(e)
		case book.ReduceEvent:
			if err := bk.ApplyReduce(e); err != nil {
				return err
			}
		}

		cur, ok := bk.SummariseTarget()
		reportingSide := bk.LastSide().Negate()
		old := prev[reportingSide]

		changed := ok != old.has || (ok && old.has && !cur.Equal(old.value))
		if changed {
			if err := emit(bw, bk.LastTimestamp(), reportingSide, cur, ok); err != nil {
				return err
			}
		}

		prev[reportingSide] = report{has: ok, value: cur}
	}

	return scanner.Err()
}

func emit(w *bufio.Writer, ts int64, reportingSide side.Side, value money.Money, ok bool) error {
	var err error
	if ok {
		_, err = fmt.Fprintf(w, "%d %s %s\n", ts, reportingSide, value)
	} else {
		_, err = fmt.Fprintf(w, "%d %s NA\n", ts, reportingSide)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}
