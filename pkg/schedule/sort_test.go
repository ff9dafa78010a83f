package schedule

import (
	"errors"
	"reflect"
	"testing"
)

func TestSortChronologically(t *testing.T) {
	in := []RawRow{
		{Date: "04/11/2025", Time: "08:00", RawName: "B"},
		{Date: "03/11/2025", Time: "21:30:00", RawName: "A night"},
		{Date: "03/11/2025", Time: "09:00", RawName: "A morning"},
	}

	got, err := SortChronologically(in)
	if err != nil {
		t.Fatal(err)
	}

	want := []RawRow{
		{Date: "03/11/2025", Time: "09:00", RawName: "A morning"},
		{Date: "03/11/2025", Time: "21:30", RawName: "A night"},
		{Date: "04/11/2025", Time: "08:00", RawName: "B"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSortChronologicallyUnparseableFirst(t *testing.T) {
	in := []RawRow{
		{Date: "03/11/2025", Time: "09:00", RawName: "ok"},
		{Date: "", Time: "09:00", RawName: "no date"},
		{Date: "03/11/2025", Time: "junk", RawName: "no time"},
	}

	got, err := SortChronologically(in)
	if err != nil {
		t.Fatal(err)
	}

	if got[0].RawName != "no date" {
		t.Fatalf("rows without a date should sort first, got %+v", got)
	}
	if got[1].RawName != "no time" || got[1].Time != "" {
		t.Fatalf("row with unparseable time should precede parseable one and lose its time, got %+v", got[1])
	}
	if got[2].RawName != "ok" {
		t.Fatalf("parseable row should sort last, got %+v", got)
	}
}

func TestSortChronologicallyIdempotent(t *testing.T) {
	in := []RawRow{
		{Date: "03/11/2025", Time: "09:00", RawName: "first at nine"},
		{Date: "03/11/2025", Time: "09:00", RawName: "second at nine"},
		{Date: "03/11/2025", Time: "08:00", RawName: "eight"},
	}

	once, err := SortChronologically(in)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := SortChronologically(once)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("sort not stable across runs:\n%+v\n%+v", once, twice)
	}
	// equal keys keep extraction order
	if once[1].RawName != "first at nine" || once[2].RawName != "second at nine" {
		t.Fatalf("stable order violated: %+v", once)
	}
}

func TestSortChronologicallyEmptyBatch(t *testing.T) {
	if _, err := SortChronologically(nil); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestParseClockStrategyOrder(t *testing.T) {
	if _, strategy, ok := ParseClock("09:00"); !ok || strategy != 0 {
		t.Fatalf("HH:MM should use the first strategy, got %d ok=%v", strategy, ok)
	}
	if _, strategy, ok := ParseClock("09:00:30"); !ok || strategy != 1 {
		t.Fatalf("HH:MM:SS should fall back to the second strategy, got %d ok=%v", strategy, ok)
	}
	if _, _, ok := ParseClock("junk"); ok {
		t.Fatal("junk should not parse")
	}
}
