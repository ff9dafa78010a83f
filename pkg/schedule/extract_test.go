package schedule

import (
	"reflect"
	"testing"
)

// frag builds a word-sized fragment at (x, y).
func frag(x, y float64, s string) fragment {
	return fragment{X: x, Y: y, W: float64(len(s)) * 5, S: s}
}

func TestRowsFromFragments(t *testing.T) {
	frags := []fragment{
		// page header, no time token
		frag(100, 700, "Grade"),
		frag(140, 700, "03/11/2025"),
		// first slot
		frag(20, 680, "09:00"),
		frag(100, 680, "Jornal"),
		frag(140, 680, "Hoje"),
		// second slot, out of visual order in the stream
		frag(120, 660, "Sessão"),
		frag(20, 660, "10:30"),
		// band with a non-numeric left token is dropped
		frag(20, 640, "Obs:"),
		frag(100, 640, "sujeito"),
		frag(130, 640, "a"),
		frag(140, 640, "alterações"),
	}

	got := rowsFromFragments(frags, "03/11/2025")
	want := []RawRow{
		{Date: "03/11/2025", Time: "09:00", RawName: "Jornal Hoje"},
		{Date: "03/11/2025", Time: "10:30", RawName: "Sessão"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRowsFromFragmentsEmptyDate(t *testing.T) {
	frags := []fragment{
		frag(20, 680, "09:00"),
		frag(100, 680, "Jornal"),
	}
	got := rowsFromFragments(frags, "")
	if len(got) != 1 || got[0].Date != "" {
		t.Fatalf("rows from an undated document must carry an empty date: %+v", got)
	}
}

func TestBandFragmentsTopDownAndLeftToRight(t *testing.T) {
	frags := []fragment{
		frag(100, 100, "low"),
		frag(50, 500, "high-right"),
		frag(20, 505, "high-left"), // same 10-unit band as high-right
	}
	bands := bandFragments(frags)
	if len(bands) != 2 {
		t.Fatalf("expected 2 bands, got %d", len(bands))
	}
	if bands[0][0].S != "high-left" || bands[0][1].S != "high-right" {
		t.Fatalf("top band not left-to-right: %+v", bands[0])
	}
	if bands[1][0].S != "low" {
		t.Fatalf("bottom band should come last: %+v", bands[1])
	}
}

func TestAssembleWords(t *testing.T) {
	// "Jor" + "nal" are adjacent sub-word fragments, "Hoje" starts after a gap
	band := []fragment{
		{X: 100, Y: 0, W: 15, S: "Jor"},
		{X: 115.5, Y: 0, W: 15, S: "nal"},
		{X: 140, Y: 0, W: 20, S: "Hoje"},
	}
	words := assembleWords(band)
	if len(words) != 2 || words[0].S != "Jornal" || words[1].S != "Hoje" {
		t.Fatalf("unexpected words: %+v", words)
	}
	if words[0].X != 100 {
		t.Fatalf("word must keep the X of its first fragment, got %v", words[0].X)
	}
}
