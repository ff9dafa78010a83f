package grid

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lfmcastro/epggrid/internal/utils"
	"github.com/lfmcastro/epggrid/pkg/schedule"
)

// SlotsPerDay is the number of 5-minute rows on the time axis, 00:00
// through 23:55.
const SlotsPerDay = 288

// ErrNoDates is returned when no row of the batch carries a parseable date.
var ErrNoDates = errors.New("no dated rows to lay out")

// Grid is the visual schedule: one column per calendar date, one row per
// 5-minute boundary. A cell holds the slug of the program starting in that
// slot, or "" (span starts only; contiguous runs are rebuilt by Spans).
type Grid struct {
	Dates []string   // DD/MM/YYYY, ascending
	cells [][]string // cells[col][slot]
}

// Build projects sorted clean rows onto the fixed time axis. Start times
// round to the nearest 5-minute boundary; a minute overflow carries into
// the hour and past 23:55 wraps to 00:00 of the same column. Rows whose
// date or time does not parse are skipped with a warning.
func Build(rows []schedule.CleanRow) (*Grid, error) {
	type dated struct {
		t time.Time
		s string
	}
	seen := make(map[string]time.Time)
	for _, r := range rows {
		if _, ok := seen[r.Date]; ok {
			continue
		}
		if d, err := time.Parse(schedule.DateLayout, r.Date); err == nil {
			seen[r.Date] = d
		}
	}
	if len(seen) == 0 {
		return nil, ErrNoDates
	}

	orderedDates := make([]dated, 0, len(seen))
	for s, d := range seen {
		orderedDates = append(orderedDates, dated{t: d, s: s})
	}
	sort.Slice(orderedDates, func(i, j int) bool { return orderedDates[i].t.Before(orderedDates[j].t) })

	g := &Grid{
		Dates: make([]string, len(orderedDates)),
		cells: make([][]string, len(orderedDates)),
	}
	colOf := make(map[string]int, len(orderedDates))
	for i, d := range orderedDates {
		g.Dates[i] = d.s
		g.cells[i] = make([]string, SlotsPerDay)
		colOf[d.s] = i
	}

	for _, r := range rows {
		col, ok := colOf[r.Date]
		if !ok {
			utils.Log.Warnf("skipping row with unparseable date %q at %q", r.Date, r.Time)
			continue
		}
		clock, _, ok := schedule.ParseClock(r.Time)
		if !ok {
			utils.Log.Warnf("skipping row with unparseable time %q on %s", r.Time, r.Date)
			continue
		}
		slot := RoundSlot(clock.Hour(), clock.Minute())
		g.cells[col][slot] = schedule.Slugify(r.Program)
	}
	return g, nil
}

// RoundSlot maps (hour, minute) to its 5-minute slot index, rounding the
// minute half-up. 23:58 rounds past 23:55 and wraps to slot 0.
func RoundSlot(hour, minute int) int {
	m := 5 * int(math.Round(float64(minute)/5))
	if m == 60 {
		hour++
		m = 0
		if hour == 24 {
			hour = 0
		}
	}
	return hour*12 + m/5
}

// Cell returns the value at (column, slot).
func (g *Grid) Cell(col, slot int) string {
	return g.cells[col][slot]
}

// TimeLabel renders the HH:MM label of a slot index.
func TimeLabel(slot int) string {
	return fmt.Sprintf("%02d:%02d", slot/12, (slot%12)*5)
}

// Span is a contiguous vertical run of one value in a column, rendered as a
// single merged region. Start and End are inclusive slot indexes; a
// single-slot span (Start == End) renders as a plain cell.
type Span struct {
	Start, End int
	Value      string
}

// Spans rebuilds the merged regions of one column in a single pass:
// vertically contiguous equal non-empty values collapse into one span, an
// empty cell or a different value closes the open span, and the last slot
// closes any span still open. The result has no gaps inside a span and no
// overlapping spans.
func (g *Grid) Spans(col int) []Span {
	cells := g.cells[col]
	var spans []Span
	start := -1
	last := ""

	flush := func(end int) {
		if start != -1 {
			spans = append(spans, Span{Start: start, End: end, Value: last})
			start = -1
		}
	}

	for slot, val := range cells {
		switch {
		case val == "":
			flush(slot - 1)
		case start == -1:
			start, last = slot, val
		case val != last:
			flush(slot - 1)
			start, last = slot, val
		}
	}
	flush(len(cells) - 1)
	return spans
}
