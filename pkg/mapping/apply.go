package mapping

import (
	"github.com/lfmcastro/epggrid/pkg/schedule"
)

func cleanKey(s string) string { return schedule.CleanSpaces(s) }

// Apply substitutes each row's raw program name with its standardized
// counterpart. The lookup is literal on whitespace-cleaned names: case and
// accents must match the table exactly. Names with no entry pass through
// cleaned but otherwise unchanged, which is why detection of unmapped names
// has to run before any artifact is generated.
func Apply(rows []schedule.RawRow, table *Table) []schedule.CleanRow {
	dict := table.Dict()
	out := make([]schedule.CleanRow, len(rows))
	for i, r := range rows {
		cleaned := cleanKey(r.RawName)
		program := cleaned
		if std, ok := dict[cleaned]; ok {
			program = std
		}
		out[i] = schedule.CleanRow{
			Date:    r.Date,
			Time:    r.Time,
			Program: program,
		}
	}
	return out
}

// FindUnmappedRaw returns the distinct raw names with no table entry, in
// first-appearance order and in their original spelling for display.
// Comparison is fully folded (accent/case/space-insensitive) against the
// table's keys.
func FindUnmappedRaw(names []string, table *Table) []string {
	known := make(map[string]struct{}, len(table.Entries))
	for _, e := range table.Entries {
		known[schedule.Normalize(e.RawName)] = struct{}{}
	}
	return unmatched(names, known)
}

// FindUnmappedStandardized is the best-effort fallback when only
// already-standardized names are available: names whose folded form appears
// among none of the table's values are reported as probably unmapped.
func FindUnmappedStandardized(names []string, table *Table) []string {
	known := make(map[string]struct{}, len(table.Entries))
	for _, e := range table.Entries {
		known[schedule.Normalize(e.StandardizedName)] = struct{}{}
	}
	return unmatched(names, known)
}

func unmatched(names []string, known map[string]struct{}) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range names {
		folded := schedule.Normalize(name)
		if folded == "" {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		if _, ok := known[folded]; !ok {
			out = append(out, name)
		}
	}
	return out
}
