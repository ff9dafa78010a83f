package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/xuri/excelize/v2"
)

// Excel caps sheet names at 31 characters.
const maxSheetNameLen = 31

var (
	ErrNoLogFiles      = errors.New("no log files selected")
	ErrBadSheetName    = errors.New("sheet name is empty or longer than 31 characters")
	errNoRows          = errors.New("selected log files contain no rows")
	logDelimiter  rune = ';'
)

// ConsolidateLogs concatenates semicolon-delimited log files into one sheet
// of the target workbook, creating the workbook or replacing the sheet as
// needed. The first file's header row is kept; matching header rows of
// later files are skipped. Returns a user-facing summary.
func ConsolidateLogs(logPaths []string, outPath, sheetName string) (string, error) {
	if len(logPaths) == 0 {
		return "", ErrNoLogFiles
	}
	if err := ValidateSheetName(sheetName); err != nil {
		return "", err
	}

	rows, err := readLogs(logPaths)
	if err != nil {
		return "", err
	}

	f, err := openOrCreateWorkbook(outPath, sheetName)
	if err != nil {
		return "", err
	}
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			if err := f.SetCellValue(sheetName, cellName(c+1, r+1), v); err != nil {
				return "", err
			}
		}
	}

	if err := saveWorkbook(f, outPath); err != nil {
		return "", err
	}
	return fmt.Sprintf("processed %d files: %d rows written to sheet %q", len(logPaths), len(rows), sheetName), nil
}

// ValidateSheetName enforces the spreadsheet sheet-name limits.
func ValidateSheetName(name string) error {
	if name == "" || len([]rune(name)) > maxSheetNameLen {
		return ErrBadSheetName
	}
	return nil
}

func readLogs(paths []string) ([][]string, error) {
	var all [][]string
	var header []string

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read log file %s: %w", path, err)
		}
		r := csv.NewReader(f)
		r.Comma = logDelimiter
		r.FieldsPerRecord = -1
		r.LazyQuotes = true

		records, err := r.ReadAll()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read log file %s: %w", path, err)
		}
		if len(records) == 0 {
			continue
		}

		if header == nil {
			header = records[0]
			all = append(all, records...)
			continue
		}
		if reflect.DeepEqual(records[0], header) {
			records = records[1:]
		}
		all = append(all, records...)
	}

	if len(all) == 0 {
		return nil, errNoRows
	}
	return all, nil
}

// openOrCreateWorkbook opens an existing workbook and clears the target
// sheet, or starts a new workbook whose only sheet is the target.
func openOrCreateWorkbook(path, sheetName string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		f := excelize.NewFile()
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			f.Close()
			return nil, err
		}
		return f, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			f.Close()
			return nil, err
		}
		return f, nil
	}

	// replace: clear the existing sheet's rows, bottom up
	rows, err := f.GetRows(sheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	for i := len(rows); i >= 1; i-- {
		if err := f.RemoveRow(sheetName, i); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
