package results

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTable(t *testing.T) {
	input := "t1\t2.0\t-1.0\n\n  t2\t4\t-3.5\textra\n"
	table, err := ParseTable(strings.NewReader(input), 2)
	if err != nil {
		t.Fatalf("ParseTable error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", table.Len())
	}
	if v, ok := table.Lookup("t2", ColumnLogProb); !ok || v != -3.5 {
		t.Fatalf("expected t2 logprob -3.5, got %v (%v)", v, ok)
	}
	if _, ok := table.Lookup("t2", ColumnTotalTime); ok {
		t.Fatal("expected total time to be absent from a two-column table")
	}
	if _, ok := table.Lookup("missing", ColumnTime); ok {
		t.Fatal("expected missing task lookup to fail")
	}
}

func TestParseTableLaterRecordWins(t *testing.T) {
	table, err := ParseTable(strings.NewReader("t1\t1\t0\nt1\t5\t0\n"), 2)
	if err != nil {
		t.Fatalf("ParseTable error: %v", err)
	}
	if v, _ := table.Lookup("t1", ColumnTime); v != 5 {
		t.Fatalf("expected later record to win, got %v", v)
	}
}

func TestParseTableErrors(t *testing.T) {
	_, err := ParseTable(strings.NewReader("t1\t1\n"), 2)
	if !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected line number in error, got %v", err)
	}

	_, err = ParseTable(strings.NewReader("t1\t1\tabc\n"), 2)
	if err == nil || !strings.Contains(err.Error(), "invalid number") {
		t.Fatalf("expected invalid number error, got %v", err)
	}

	if _, err := ParseTable(strings.NewReader(""), 0); err == nil {
		t.Fatal("expected error for zero arity")
	}
}

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.tsv")
	b := filepath.Join(dir, "b.tsv")
	if err := os.WriteFile(a, []byte("t1\t2.0\t-1.0\t3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("t1\t4.0\t-3.0\t5.0\nt2\t1.0\t-0.5\t1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadTables([]string{a, b}, 3)
	if err != nil {
		t.Fatalf("LoadTables error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if tables[1].Path != b {
		t.Fatalf("expected path %s, got %s", b, tables[1].Path)
	}
	if v, _ := tables[1].Lookup("t2", ColumnTotalTime); v != 1.5 {
		t.Fatalf("expected total time 1.5, got %v", v)
	}

	if _, err := LoadTables([]string{a, filepath.Join(dir, "nope.tsv")}, 2); err == nil {
		t.Fatal("expected error for missing file")
	}
}
