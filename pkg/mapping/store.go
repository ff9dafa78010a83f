package mapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lfmcastro/epggrid/internal/utils"
)

// Column headers of the persisted lookup table.
const (
	colRawName          = "RawName"
	colStandardizedName = "StandardizedName"
)

// ErrMalformed is returned when the lookup file exists but does not carry
// the two expected columns.
var ErrMalformed = errors.New("mapping file is malformed: expected RawName and StandardizedName columns")

// Entry maps one raw PDF-extracted program name to its standardized
// counterpart.
type Entry struct {
	RawName          string
	StandardizedName string
}

// Table is the in-memory lookup table. Entries keep file order; keys are
// unique, values need not be.
type Table struct {
	Entries []Entry
}

// Dict returns the cleaned-key lookup map used by Apply. Keys are
// whitespace-cleaned; on duplicate keys the last entry wins. Entries with
// an empty side are skipped.
func (t *Table) Dict() map[string]string {
	m := make(map[string]string, len(t.Entries))
	for _, e := range t.Entries {
		key := cleanKey(e.RawName)
		if key == "" || e.StandardizedName == "" {
			continue
		}
		m[key] = e.StandardizedName
	}
	return m
}

// Store persists the lookup table as a two-column CSV file. Saves replace
// the whole file; there is no partial update.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Ensure creates an empty table file with the expected header when none
// exists yet.
func (s *Store) Ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	utils.Log.Infof("creating empty mapping file: %s", s.path)
	return s.Save(&Table{})
}

// Load reads the whole table. A missing file is an error; an empty file
// yields an empty table.
func (s *Store) Load() (*Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("mapping file not found: %s", s.path)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	rawIdx, stdIdx := -1, -1
	for i, name := range header {
		switch name {
		case colRawName:
			rawIdx = i
		case colStandardizedName:
			stdIdx = i
		}
	}
	if rawIdx < 0 || stdIdx < 0 {
		return nil, ErrMalformed
	}

	table := &Table{}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read mapping file: %w", err)
		}
		if rawIdx >= len(rec) || stdIdx >= len(rec) {
			continue
		}
		e := Entry{RawName: rec[rawIdx], StandardizedName: rec[stdIdx]}
		// rows missing either side carry no usable mapping
		if e.RawName == "" || e.StandardizedName == "" {
			continue
		}
		table.Entries = append(table.Entries, e)
	}
	return table, nil
}

// Save replaces the whole table file under a lock. Concurrent external
// modification during a save loses; this is a single-user tool.
func (s *Store) Save(t *Table) error {
	lock := utils.NewFileLock(s.path)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to save mapping file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{colRawName, colStandardizedName}); err != nil {
		return err
	}
	for _, e := range t.Entries {
		if err := w.Write([]string{e.RawName, e.StandardizedName}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
