package cmd

import (
	"fmt"
	"strings"

	"github.com/lfmcastro/epggrid/internal/utils"
	"github.com/lfmcastro/epggrid/pkg/mapping"
	"github.com/lfmcastro/epggrid/pkg/schedule"
)

// openMappingTable loads the lookup table, creating an empty template file
// on first use.
func openMappingTable() (*mapping.Store, *mapping.Table, error) {
	store := mapping.NewStore(mappingPath())
	if err := store.Ensure(); err != nil {
		return nil, nil, err
	}
	table, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, table, nil
}

// extractClean runs the shared front half of every schedule operation:
// extract raw rows from the PDFs, sort them chronologically, gate on
// unmapped names, and apply the lookup table.
func extractClean(pdfPaths []string, allowUnmapped bool) ([]schedule.CleanRow, error) {
	_, table, err := openMappingTable()
	if err != nil {
		return nil, err
	}

	raw := schedule.ExtractRows(pdfPaths)
	sorted, err := schedule.SortChronologically(raw)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(sorted))
	for i, r := range sorted {
		names[i] = r.RawName
	}
	if unmapped := mapping.FindUnmappedRaw(names, table); len(unmapped) > 0 {
		if !allowUnmapped {
			return nil, fmt.Errorf("%d program name(s) have no mapping entry:\n  %s\nadd them with \"epggrid mapping add\" or pass --allow-unmapped",
				len(unmapped), strings.Join(unmapped, "\n  "))
		}
		utils.Log.Warnf("proceeding with %d unmapped program name(s): %s", len(unmapped), strings.Join(unmapped, ", "))
	}

	return mapping.Apply(sorted, table), nil
}
