package diff

import (
	"fmt"

	"github.com/lfmcastro/epggrid/pkg/schedule"
)

// Status classifies one new-schedule slot against the prior week.
type Status string

const (
	StatusNew       Status = "NEW"
	StatusAltered   Status = "ALTERED"
	StatusUnchanged Status = "UNCHANGED"
)

// reservedColumns never count as carried-forward metadata.
var reservedColumns = map[string]struct{}{
	ColDate:    {},
	ColTime:    {},
	ColProgram: {},
	"key":      {},
	"Status":   {},
}

// Record is one diffed output row, in new-batch chronological order.
type Record struct {
	Date    string
	Time    string
	Program string
	Status  Status
	Extras  map[string]string
}

// Index is the prior schedule reduced to its two join surfaces: slot key to
// program name for classification, and program name to metadata row for
// carry-forward. Both take the last occurrence on duplicates.
type Index struct {
	byKey   map[string]string
	byName  map[string]map[string]string
	extras  []string
	program string
}

// BuildIndex derives the comparison index from a prior artifact.
func BuildIndex(p *PriorArtifact) (*Index, error) {
	programCol, ok := p.ProgramColumn()
	if !ok {
		return nil, fmt.Errorf("prior schedule has no program-name column (columns: %v)", p.Columns)
	}

	idx := &Index{
		byKey:   make(map[string]string),
		byName:  make(map[string]map[string]string),
		program: programCol,
	}
	for _, c := range p.Columns {
		if _, reserved := reservedColumns[c]; reserved || c == programCol {
			continue
		}
		idx.extras = append(idx.extras, c)
	}

	for _, row := range p.Rows {
		name := row[programCol]
		key := schedule.SlotKey(row[ColDate], row[ColTime])
		idx.byKey[key] = name

		meta := make(map[string]string, len(idx.extras))
		for _, c := range idx.extras {
			meta[c] = row[c]
		}
		idx.byName[name] = meta
	}
	return idx, nil
}

// Extras lists the carried-forward metadata columns in prior-artifact
// order.
func (idx *Index) Extras() []string { return idx.extras }

// Classify joins each new row against the prior index by slot key. A slot
// with no prior program (or an empty one) is NEW, a prior program whose
// normalized name differs is ALTERED, anything else is UNCHANGED. Metadata
// columns are carried forward by standardized name. Input order is
// preserved.
func Classify(rows []schedule.CleanRow, idx *Index) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		rec := Record{
			Date:    r.Date,
			Time:    r.Time,
			Program: r.Program,
			Status:  StatusUnchanged,
			Extras:  make(map[string]string, len(idx.extras)),
		}

		if meta, ok := idx.byName[r.Program]; ok {
			for _, c := range idx.extras {
				rec.Extras[c] = meta[c]
			}
		} else {
			for _, c := range idx.extras {
				rec.Extras[c] = ""
			}
		}

		prior, ok := idx.byKey[r.SlotKey]
		switch {
		case !ok || prior == "":
			rec.Status = StatusNew
		case schedule.Normalize(prior) != schedule.Normalize(r.Program):
			rec.Status = StatusAltered
		}

		out[i] = rec
	}
	return out
}
