package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used across schedule PDFs and
// generated artifacts.
const DateLayout = "02/01/2006"

// SlotKey builds the "{weekday}_{HH:MM}" join key that aligns rows from two
// schedules covering different calendar weeks. The weekday is the true
// calendar day-of-week of the row's date (Monday=0 .. Sunday=6), never the
// order in which dates happened to appear: appearance order depends on file
// selection and silently conflates different physical weekdays.
//
// On unparseable input SlotKey returns an error-marker key instead of
// failing, so one malformed row cannot abort a batch. Marker keys match no
// counterpart and such rows surface as NEW in comparisons.
func SlotKey(date, clock string) string {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return errKey(date, clock)
	}
	hhmm, ok := CanonicalClock(clock)
	if !ok {
		return errKey(date, clock)
	}
	weekday := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return fmt.Sprintf("%d_%s", weekday, hhmm)
}

// IsErrKey reports whether key is an error marker produced by SlotKey.
func IsErrKey(key string) bool {
	return strings.HasPrefix(key, "ERR_")
}

func errKey(date, clock string) string {
	return fmt.Sprintf("ERR_%s_%s", date, clock)
}

// AttachSlotKeys fills in the SlotKey field of every row.
func AttachSlotKeys(rows []CleanRow) []CleanRow {
	out := make([]CleanRow, len(rows))
	for i, r := range rows {
		r.SlotKey = SlotKey(r.Date, r.Time)
		out[i] = r
	}
	return out
}

// CanonicalClock extracts a zero-padded HH:MM from a clock string that may
// carry seconds or a single-digit hour. It scans for the first H:MM or
// HH:MM group anywhere in the string, which tolerates values like
// "09:00:00" and "9:00" alike.
func CanonicalClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	h, m, ok := scanClock(s)
	if !ok || h > 23 || m > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}

func scanClock(s string) (int, int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		// up to two digits before the colon, exactly two after
		start := i
		for start > 0 && i-start < 2 && isDigit(s[start-1]) {
			start--
		}
		if start == i || i+2 >= len(s) || !isDigit(s[i+1]) || !isDigit(s[i+2]) {
			continue
		}
		h, _ := strconv.Atoi(s[start:i])
		m, _ := strconv.Atoi(s[i+1 : i+3])
		return h, m, true
	}
	return 0, 0, false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
