package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/custdb.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	// Load with empty path uses default search (may use defaults if no config file)
	cfg, _ := Load("")
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr: got %s", cfg.Server.Addr)
	}
	if cfg.Data.Format != "csv" {
		t.Errorf("default format: got %s", cfg.Data.Format)
	}
	if cfg.Display.Limit != 10 {
		t.Errorf("default limit: got %d", cfg.Display.Limit)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
server:
  addr: ":9000"
data:
  path: "testdata/customers.db"
  format: "SQLite"
display:
  limit: 25
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr: got %s", cfg.Server.Addr)
	}
	if cfg.Data.Path != "testdata/customers.db" {
		t.Errorf("data path: got %s", cfg.Data.Path)
	}
	if cfg.Data.Format != "sqlite" {
		t.Errorf("format not normalized: got %s", cfg.Data.Format)
	}
	if cfg.Display.Limit != 25 {
		t.Errorf("limit: got %d", cfg.Display.Limit)
	}
}

func TestLoadFixesBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
data:
  format: "parquet"
display:
  limit: -5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Format != "csv" {
		t.Errorf("unknown format must fall back to csv, got %s", cfg.Data.Format)
	}
	if cfg.Display.Limit != 10 {
		t.Errorf("non-positive limit must fall back to 10, got %d", cfg.Display.Limit)
	}
}
