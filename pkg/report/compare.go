package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lfmcastro/epggrid/pkg/diff"
)

// WriteComparison produces the comparison report by using the prior
// artifact as a template: its workbook is opened, all data rows from the
// fixed start row down are cleared, and the classified records are written
// back in chronological order. A yellow separator row marks each date
// boundary; NEW and ALTERED rows get the green highlight. The first sheet
// column stays empty, matching the template's layout.
func WriteComparison(priorPath, outPath string, recs []diff.Record, extras []string) error {
	f, err := excelize.OpenFile(priorPath)
	if err != nil {
		return fmt.Errorf("failed to open prior schedule %s: %w", priorPath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("prior schedule %s has no sheets", priorPath)
	}
	sheet := sheets[0]

	if err := clearDataRows(f, sheet); err != nil {
		return err
	}

	plainStyle, err := f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	changedStyle, err := f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillChanged}},
	})
	if err != nil {
		return err
	}
	separatorStyle, err := f.NewStyle(&excelize.Style{
		Border: thinBorder(),
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillSeparator}},
	})
	if err != nil {
		return err
	}

	// column A stays empty; data starts at column B
	const colOffset = 2
	width := 3 + len(extras)

	row := comparisonStartRow
	lastDate := ""
	for _, rec := range recs {
		if lastDate != "" && rec.Date != lastDate {
			// the separator runs one column past the data, like the template
			for c := 0; c <= width; c++ {
				cell := cellName(colOffset+c, row)
				if err := f.SetCellStyle(sheet, cell, cell, separatorStyle); err != nil {
					return err
				}
			}
			if err := f.SetRowHeight(sheet, row, 15); err != nil {
				return err
			}
			row++
		}
		lastDate = rec.Date

		style := plainStyle
		if rec.Status == diff.StatusNew || rec.Status == diff.StatusAltered {
			style = changedStyle
		}

		values := []string{rec.Date, rec.Time, rec.Program}
		for _, col := range extras {
			values = append(values, rec.Extras[col])
		}
		for c, v := range values {
			cell := cellName(colOffset+c, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
		row++
	}

	return saveWorkbook(f, outPath)
}

// clearDataRows removes everything from the fixed start row down, bottom
// up so row indexes stay valid while removing.
func clearDataRows(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	for i := len(rows); i >= comparisonStartRow; i-- {
		if err := f.RemoveRow(sheet, i); err != nil {
			return err
		}
	}
	return nil
}
