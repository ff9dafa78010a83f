package schedule_test

import (
	"testing"

	"github.com/lfmcastro/epggrid/pkg/grid"
	"github.com/lfmcastro/epggrid/pkg/mapping"
	"github.com/lfmcastro/epggrid/pkg/schedule"
)

// Full pipeline over two single-slot days: extraction output for a Monday
// and a Tuesday PDF, both carrying the same raw name with sloppy spacing,
// standardized through the lookup table and laid out on the grid.
func TestPipelineTwoDays(t *testing.T) {
	raw := []schedule.RawRow{
		{Date: "04/11/2025", Time: "09:00", RawName: "Jornal  Hoje "},
		{Date: "03/11/2025", Time: "09:00", RawName: "Jornal  Hoje "},
	}
	table := &mapping.Table{Entries: []mapping.Entry{
		{RawName: "Jornal Hoje", StandardizedName: "Jornal Padrão"},
	}}

	sorted, err := schedule.SortChronologically(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(mapping.FindUnmappedRaw([]string{raw[0].RawName}, table)) != 0 {
		t.Fatal("the sloppy raw name should fold onto the mapping key")
	}

	rows := schedule.AttachSlotKeys(mapping.Apply(sorted, table))
	if len(rows) != 2 {
		t.Fatalf("expected 2 clean rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Program != "Jornal Padrão" {
			t.Fatalf("standardized name = %q", r.Program)
		}
	}
	if rows[0].SlotKey != "0_09:00" || rows[1].SlotKey != "1_09:00" {
		t.Fatalf("slot keys: %q, %q", rows[0].SlotKey, rows[1].SlotKey)
	}

	g, err := grid.Build(rows)
	if err != nil {
		t.Fatal(err)
	}
	slot := grid.RoundSlot(9, 0)
	for col := range g.Dates {
		if got := g.Cell(col, slot); got != "jornal-padrao" {
			t.Fatalf("column %d cell = %q", col, got)
		}
		spans := g.Spans(col)
		if len(spans) != 1 || spans[0].Start != slot || spans[0].End != slot {
			t.Fatalf("column %d should hold one unmerged cell, got %+v", col, spans)
		}
	}
}
