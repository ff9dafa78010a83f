package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/lfmcastro/epggrid/pkg/grid"
	"github.com/lfmcastro/epggrid/pkg/storage"
)

const (
	epgSheet      = "Schedule"
	databaseSheet = "Database"

	timeAxisHeader = "BRT"
	timeColWidth   = 10
	dateColWidth   = 25
)

// WriteEPG renders the visual grid workbook: one "Schedule" sheet with the
// merged time grid and one "Database" sheet dumping the full program-title
// database.
func WriteEPG(path string, g *grid.Grid, titles []storage.Title) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", epgSheet); err != nil {
		return err
	}
	if err := writeGridSheet(f, g); err != nil {
		return err
	}
	if err := writeDatabaseSheet(f, titles); err != nil {
		return err
	}
	return saveWorkbook(f, path)
}

func writeGridSheet(f *excelize.File, g *grid.Grid) error {
	spanStyle, err := f.NewStyle(&excelize.Style{
		Border: thinBorder(),
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(epgSheet, "A1", timeAxisHeader); err != nil {
		return err
	}
	for i, date := range g.Dates {
		if err := f.SetCellValue(epgSheet, cellName(i+2, 1), date); err != nil {
			return err
		}
	}
	for slot := 0; slot < grid.SlotsPerDay; slot++ {
		if err := f.SetCellValue(epgSheet, cellName(1, slot+2), grid.TimeLabel(slot)); err != nil {
			return err
		}
	}

	for col := range g.Dates {
		for _, span := range g.Spans(col) {
			top := cellName(col+2, span.Start+2)
			bottom := cellName(col+2, span.End+2)
			if span.Start != span.End {
				if err := f.MergeCell(epgSheet, top, bottom); err != nil {
					return err
				}
			}
			if err := f.SetCellValue(epgSheet, top, span.Value); err != nil {
				return err
			}
			if err := f.SetCellStyle(epgSheet, top, bottom, spanStyle); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(epgSheet, "A", "A", timeColWidth); err != nil {
		return err
	}
	if len(g.Dates) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(g.Dates) + 1)
		if err := f.SetColWidth(epgSheet, "B", lastCol, dateColWidth); err != nil {
			return err
		}
	}
	return nil
}

func writeDatabaseSheet(f *excelize.File, titles []storage.Title) error {
	if _, err := f.NewSheet(databaseSheet); err != nil {
		return err
	}
	for i, name := range storage.Columns() {
		if err := f.SetCellValue(databaseSheet, cellName(i+1, 1), name); err != nil {
			return err
		}
	}
	for r, t := range titles {
		for c, v := range t.Values() {
			if v == "" {
				continue
			}
			if err := f.SetCellValue(databaseSheet, cellName(c+1, r+2), v); err != nil {
				return err
			}
		}
	}
	return nil
}
