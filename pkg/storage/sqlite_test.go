package storage

import (
	"path/filepath"
	"testing"

	"custdb/pkg/common"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.db")

	records := []common.Record{
		common.NewRecord("c1", "Maria", "Lopez", "Acme", "Paris", "France", "m@example.com", "2020-06-15", "https://example.com"),
		common.NewRecord("c2", "Luis", "Diaz", "Globex", "Santiago", "Chile", "l@example.com", "", "https://example.org"),
	}
	if err := ExportSQLite(path, records); err != nil {
		t.Fatalf("export: %v", err)
	}

	rows, err := SQLiteSource{Path: path}.Rows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "c1" || rows[0][5] != "France" || rows[0][7] != "2020-06-15" {
		t.Fatalf("row 0 wrong: %v", rows[0])
	}
	if rows[1][0] != "c2" || rows[1][7] != "" {
		t.Fatalf("row 1 wrong: %v", rows[1])
	}
}

func TestSQLiteExportReplacesById(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.db")

	first := []common.Record{
		common.NewRecord("c1", "Maria", "Lopez", "Acme", "Paris", "France", "m@example.com", "2020-06-15", "w"),
	}
	if err := ExportSQLite(path, first); err != nil {
		t.Fatalf("export: %v", err)
	}
	updated := []common.Record{
		common.NewRecord("c1", "Maria", "Lopez", "Acme", "Lyon", "France", "m@example.com", "2020-06-15", "w"),
	}
	if err := ExportSQLite(path, updated); err != nil {
		t.Fatalf("re-export: %v", err)
	}

	rows, err := SQLiteSource{Path: path}.Rows()
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 || rows[0][4] != "Lyon" {
		t.Fatalf("replace by primary key broken: %v", rows)
	}
}
