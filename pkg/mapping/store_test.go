package mapping

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.csv")
	store := NewStore(path)

	in := &Table{Entries: []Entry{
		{RawName: "Jornal Hoje", StandardizedName: "Jornal Padrão"},
		{RawName: "Nome, com vírgula", StandardizedName: "Padronizado"},
	}}
	if err := store.Save(in); err != nil {
		t.Fatal(err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", in, out)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.csv"))
	if _, err := store.Load(); err == nil {
		t.Fatal("expected an error for a missing mapping file")
	}
}

func TestStoreLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := NewStore(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Entries) != 0 {
		t.Fatalf("expected empty table, got %+v", table.Entries)
	}
}

func TestStoreLoadMalformedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("foo,bar\na,b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(path).Load(); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestStoreLoadSkipsIncompleteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.csv")
	data := "RawName,StandardizedName\nJornal Hoje,Jornal Padrão\nsem padrao,\n,Órfão\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := NewStore(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Entries) != 1 || table.Entries[0].RawName != "Jornal Hoje" {
		t.Fatalf("unexpected entries: %+v", table.Entries)
	}
}

func TestStoreEnsureCreatesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mappings.csv")
	store := NewStore(path)
	if err := store.Ensure(); err != nil {
		t.Fatal(err)
	}
	table, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Entries) != 0 {
		t.Fatalf("fresh template should be empty, got %+v", table.Entries)
	}
	// Ensure is a no-op on an existing file
	if err := store.Ensure(); err != nil {
		t.Fatal(err)
	}
}
