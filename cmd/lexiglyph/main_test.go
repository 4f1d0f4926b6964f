package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfusionTableDegradesOnMalformedSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confusion.toml")
	if err := os.WriteFile(path, []byte("not toml at all {"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	table := loadConfusionTable(path)
	if len(table) != 0 {
		t.Fatalf("expected empty confusion table, got %d pairs", len(table))
	}
	if table.Weight('E', 'F') != 0 {
		t.Fatalf("degraded table must yield 0 for every pair")
	}
}

func TestLoadConfusionTableDegradesOnMissingSource(t *testing.T) {
	table := loadConfusionTable(filepath.Join(t.TempDir(), "absent.toml"))
	if len(table) != 0 {
		t.Fatalf("expected empty confusion table, got %d pairs", len(table))
	}
}

func TestLoadRarityTableFallsBackToBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rarity.toml")
	if err := os.WriteFile(path, []byte("[letters]\nAB = 1.0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	table := loadRarityTable(path)
	if table.Weight('Z') != 10 {
		t.Fatalf("expected the built-in table after degradation, got Weight(Z) = %v", table.Weight('Z'))
	}
}
