package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/lfmcastro/epggrid/internal/utils"
)

// Layout constants of the schedule page. The time column sits left of a
// fixed divider; fragments within a 10-unit vertical band belong to one
// visual row.
const (
	columnDividerX = 70.0
	rowBandHeight  = 10.0
	wordGapX       = 1.5
)

var dateRE = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

// fragment is one positioned piece of text from a PDF page. The reader
// yields sub-word fragments, so words are reassembled by X adjacency.
type fragment struct {
	X, Y, W float64
	S       string
}

// ExtractRows reads each given PDF and returns one RawRow per detected
// program slot, in document order. Only the first page of a document is
// treated as the schedule page; multi-page grids are unsupported. A
// document that cannot be opened contributes no rows, and one without a
// recognizable date contributes rows with an empty date field.
func ExtractRows(paths []string) []RawRow {
	var rows []RawRow
	for _, path := range paths {
		date := ResolveDate(path)
		frags, err := pageFragments(path, 1)
		if err != nil {
			utils.Log.WithError(err).Warnf("skipping unreadable PDF: %s", path)
			continue
		}
		rows = append(rows, rowsFromFragments(frags, date)...)
	}
	return rows
}

// ResolveDate returns the first DD/MM/YYYY token found anywhere in the
// document, scanning pages in order, or "" when there is none or the file
// cannot be read. The one date found labels every row of the document.
func ResolveDate(path string) (date string) {
	// The reader panics on some malformed content streams; a document we
	// cannot read resolves to no date rather than aborting the batch.
	defer func() {
		if r := recover(); r != nil {
			date = ""
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, band := range bandFragments(textFragments(p)) {
			line := joinWords(assembleWords(band))
			if m := dateRE.FindString(line); m != "" {
				return m
			}
		}
	}
	return ""
}

func pageFragments(path string, pageNum int) (frags []fragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			frags, err = nil, fmt.Errorf("malformed PDF content: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if r.NumPage() < pageNum {
		return nil, nil
	}
	p := r.Page(pageNum)
	if p.V.IsNull() {
		return nil, nil
	}
	return textFragments(p), nil
}

func textFragments(p pdf.Page) []fragment {
	var frags []fragment
	for _, t := range p.Content().Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		frags = append(frags, fragment{X: t.X, Y: t.Y, W: t.W, S: t.S})
	}
	return frags
}

// rowsFromFragments turns positioned fragments into RawRows: band by Y,
// split each band at the column divider, keep only bands whose time token
// starts with a digit.
func rowsFromFragments(frags []fragment, date string) []RawRow {
	var rows []RawRow
	for _, band := range bandFragments(frags) {
		clock := ""
		var nameParts []string
		for _, w := range assembleWords(band) {
			if w.X < columnDividerX {
				clock = w.S
			} else {
				nameParts = append(nameParts, w.S)
			}
		}
		if clock == "" || !isDigit(clock[0]) {
			continue
		}
		rows = append(rows, RawRow{
			Date:    date,
			Time:    clock,
			RawName: strings.Join(nameParts, " "),
		})
	}
	return rows
}

// bandFragments groups fragments into visual rows by bucketing Y into
// fixed-height bands, ordered top of page first. PDF Y grows upward, so
// visual order is descending band.
func bandFragments(frags []fragment) [][]fragment {
	bands := make(map[int][]fragment)
	for _, f := range frags {
		key := int(f.Y / rowBandHeight)
		bands[key] = append(bands[key], f)
	}

	keys := make([]int, 0, len(bands))
	for k := range bands {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	out := make([][]fragment, 0, len(keys))
	for _, k := range keys {
		band := bands[k]
		sort.SliceStable(band, func(i, j int) bool { return band[i].X < band[j].X })
		out = append(out, band)
	}
	return out
}

// assembleWords merges X-adjacent fragments of one band back into words. A
// fragment starting within wordGapX of the previous fragment's right edge
// continues the current word; a larger gap starts a new one. The word keeps
// the X of its first fragment.
func assembleWords(band []fragment) []fragment {
	var words []fragment
	for _, f := range band {
		if n := len(words); n > 0 {
			prev := &words[n-1]
			if f.X-(prev.X+prev.W) < wordGapX {
				prev.S += f.S
				prev.W = f.X + f.W - prev.X
				continue
			}
		}
		words = append(words, f)
	}
	return words
}

func joinWords(words []fragment) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.S
	}
	return strings.Join(parts, " ")
}
