package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/lfmcastro/epggrid/pkg/diff"
	"github.com/lfmcastro/epggrid/pkg/schedule"
)

// WriteCleanSchedule writes the standardized schedule as a single-sheet
// workbook with Date / Time / Program columns.
func WriteCleanSchedule(path string, rows []schedule.CleanRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := []string{diff.ColDate, diff.ColTime, diff.ColProgram}
	for i, name := range header {
		if err := f.SetCellValue(sheet, cellName(i+1, 1), name); err != nil {
			return err
		}
	}
	for i, r := range rows {
		values := []string{r.Date, r.Time, r.Program}
		for c, v := range values {
			if err := f.SetCellValue(sheet, cellName(c+1, i+2), v); err != nil {
				return err
			}
		}
	}

	return saveWorkbook(f, path)
}
