package diff

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lfmcastro/epggrid/pkg/schedule"
)

// Canonical column names of generated artifacts. "Programa" is the legacy
// spelling found in older reports and is renamed on load.
const (
	ColDate          = "Date"
	ColTime          = "Time"
	ColProgram       = "Program"
	legacyColProgram = "Programa"
)

// headerRowCandidates are the header positions tried in order: reports
// produced by this tool keep the header on the first sheet row, older
// templates push it down to row 3 (index 2).
var headerRowCandidates = []int{0, 2}

// PriorArtifact is a previously generated report read back as the baseline
// of a comparison. Column names and header position vary between report
// generations, so the reader is deliberately tolerant.
type PriorArtifact struct {
	Columns   []string
	Rows      []map[string]string
	HeaderRow int // 0-based sheet row where the header was found
}

// ReadPrior loads the first sheet of a prior report workbook.
func ReadPrior(path string) (*PriorArtifact, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prior schedule %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("prior schedule %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read prior schedule %s: %w", path, err)
	}
	return parsePriorRows(rows)
}

// parsePriorRows applies the ordered header-detection strategies: a
// candidate header row is accepted when it yields a Date column, and the
// last candidate is used regardless so a malformed artifact still surfaces
// its columns in later errors rather than failing opaquely here.
func parsePriorRows(rows [][]string) (*PriorArtifact, error) {
	var last *PriorArtifact
	for _, headerRow := range headerRowCandidates {
		art, ok := parseAtHeader(rows, headerRow)
		if !ok {
			continue
		}
		last = art
		if art.hasColumn(ColDate) {
			return art, nil
		}
	}
	if last == nil {
		return nil, fmt.Errorf("prior schedule has no usable header row (tried rows %v)", headerRowCandidates)
	}
	return last, nil
}

func parseAtHeader(rows [][]string, headerRow int) (*PriorArtifact, bool) {
	if headerRow >= len(rows) {
		return nil, false
	}

	header := rows[headerRow]
	type column struct {
		name string
		idx  int
	}
	var cols []column
	for i, name := range header {
		name = strings.TrimSpace(name)
		// spreadsheet round-trips leave auto-generated blank column names
		if name == "" || strings.HasPrefix(name, "Unnamed") {
			continue
		}
		if name == legacyColProgram {
			name = ColProgram
		}
		cols = append(cols, column{name: name, idx: i})
	}
	if len(cols) == 0 {
		return nil, false
	}

	art := &PriorArtifact{HeaderRow: headerRow}
	for _, c := range cols {
		art.Columns = append(art.Columns, c.name)
	}
	for _, row := range rows[headerRow+1:] {
		rec := make(map[string]string, len(cols))
		empty := true
		for _, c := range cols {
			val := ""
			if c.idx < len(row) {
				val = row[c.idx]
			}
			if strings.TrimSpace(val) != "" {
				empty = false
			}
			rec[c.name] = val
		}
		if empty {
			continue
		}
		art.Rows = append(art.Rows, rec)
	}
	return art, true
}

func (p *PriorArtifact) hasColumn(name string) bool {
	for _, c := range p.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// programColumnCandidates are exact names tried before falling back to a
// fuzzy substring match.
var programColumnCandidates = []string{ColProgram, "StandardizedName", "RawName"}

// ProgramColumn locates the column holding program names: exact known names
// first, then any column whose folded name contains a program-ish
// substring.
func (p *PriorArtifact) ProgramColumn() (string, bool) {
	for _, cand := range programColumnCandidates {
		if p.hasColumn(cand) {
			return cand, true
		}
	}
	for _, c := range p.Columns {
		folded := schedule.Normalize(c)
		for _, sub := range []string{"program", "programa", "nome"} {
			if strings.Contains(folded, sub) {
				return c, true
			}
		}
	}
	return "", false
}
