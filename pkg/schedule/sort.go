package schedule

import (
	"errors"
	"sort"
	"time"
)

// ErrEmptyBatch is returned when extraction produced no rows at all, which
// usually means the selected PDFs were empty or unreadable.
var ErrEmptyBatch = errors.New("no readable schedule data")

// clockLayouts are the accepted time formats, tried in order. HH:MM:SS is a
// fallback for artifacts that kept a seconds component.
var clockLayouts = []string{"15:04", "15:04:05"}

// ParseClock tries each accepted clock layout in order and reports the index
// of the layout that succeeded, so the chosen strategy stays observable.
func ParseClock(s string) (time.Time, int, bool) {
	for i, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, i, true
		}
	}
	return time.Time{}, -1, false
}

// SortChronologically orders a batch by (calendar date, time-of-day)
// ascending and rewrites every parseable time to canonical HH:MM, dropping
// seconds. Rows whose date or time does not parse sort before everything
// else and get an empty time field. The sort is stable, so rows with equal
// keys keep their extraction order.
func SortChronologically(rows []RawRow) ([]RawRow, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBatch
	}

	type keyed struct {
		row     RawRow
		date    time.Time
		dateOK  bool
		clock   time.Time
		clockOK bool
	}

	ks := make([]keyed, len(rows))
	for i, r := range rows {
		k := keyed{row: r}
		if d, err := time.Parse(DateLayout, r.Date); err == nil {
			k.date, k.dateOK = d, true
		}
		if c, _, ok := ParseClock(r.Time); ok {
			k.clock, k.clockOK = c, true
			k.row.Time = c.Format("15:04")
		} else {
			k.row.Time = ""
		}
		ks[i] = k
	}

	sort.SliceStable(ks, func(i, j int) bool {
		a, b := ks[i], ks[j]
		if a.dateOK != b.dateOK {
			return !a.dateOK // unparseable dates first
		}
		if a.dateOK && !a.date.Equal(b.date) {
			return a.date.Before(b.date)
		}
		if a.clockOK != b.clockOK {
			return !a.clockOK // unparseable times first
		}
		if a.clockOK {
			return a.clock.Before(b.clock)
		}
		return false
	})

	out := make([]RawRow, len(ks))
	for i, k := range ks {
		out[i] = k.row
	}
	return out, nil
}
