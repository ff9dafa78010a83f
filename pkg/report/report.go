// Package report renders the spreadsheet artifacts: the clean schedule, the
// visual EPG workbook, the week-over-week comparison report and the log
// consolidation sheets.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fill colors and layout constants shared by the writers.
const (
	fillChanged   = "C6EFCE" // green, NEW and ALTERED rows
	fillSeparator = "FFFF00" // yellow, date-boundary rows

	// comparison reports keep their title block above this row; data is
	// cleared and rewritten from here down
	comparisonStartRow = 4
)

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, len(sides))
	for i, s := range sides {
		borders[i] = excelize.Border{Type: s, Color: "000000", Style: 1}
	}
	return borders
}

// saveWorkbook writes the workbook, translating the write-lock failure a
// spreadsheet viewer causes into an actionable message instead of a generic
// one.
func saveWorkbook(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		if isFileInUse(err) {
			return fmt.Errorf("cannot write %q: close the file in your spreadsheet viewer and try again", filepath.Base(path))
		}
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func isFileInUse(err error) bool {
	if errors.Is(err, os.ErrPermission) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "used by another process") ||
		strings.Contains(msg, "being used")
}
