package tables

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadRarity(t *testing.T) {
	path := writeFile(t, "rarity.toml", `
[letters]
A = 1.0
q = 9.0
Z = 10
`)
	table, err := LoadRarity(path)
	if err != nil {
		t.Fatalf("LoadRarity: %v", err)
	}
	if table.Weight('A') != 1.0 {
		t.Fatalf("Weight(A) = %v, want 1", table.Weight('A'))
	}
	if table.Weight('Q') != 9.0 {
		t.Fatalf("Weight(Q) = %v, want 9 (keys uppercased)", table.Weight('Q'))
	}
	if table.Weight('B') != 0 {
		t.Fatalf("Weight(B) = %v, want 0 for absent letter", table.Weight('B'))
	}
}

func TestLoadRarityRejectsBadKeys(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "multi letter key", content: "[letters]\nAB = 1.0\n"},
		{name: "digit key", content: "[letters]\n\"1\" = 1.0\n"},
		{name: "negative weight", content: "[letters]\nA = -1.0\n"},
		{name: "not toml", content: "{\"A\": 1}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "rarity.toml", tc.content)
			if _, err := LoadRarity(path); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestLoadConfusion(t *testing.T) {
	path := writeFile(t, "confusion.toml", `
[pairs]
EF = 3.0
fe = 2.0
OQ = 4.0
`)
	table, err := LoadConfusion(path)
	if err != nil {
		t.Fatalf("LoadConfusion: %v", err)
	}
	// "fe" canonicalizes to the same EF key and overwrites or is overwritten
	// depending on map order; either way the pair resolves.
	if table.Weight('E', 'F') == 0 {
		t.Fatalf("Weight(E,F) = 0, want non-zero")
	}
	if table.Weight('F', 'E') != table.Weight('E', 'F') {
		t.Fatalf("pair lookup must be order-insensitive")
	}
	if table.Weight('O', 'Q') != 4.0 {
		t.Fatalf("Weight(O,Q) = %v, want 4", table.Weight('O', 'Q'))
	}
	if table.Weight('A', 'B') != 0 {
		t.Fatalf("Weight(A,B) = %v, want 0 for absent pair", table.Weight('A', 'B'))
	}
}

func TestLoadConfusionRejectsBadKeys(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "single letter", content: "[pairs]\nE = 3.0\n"},
		{name: "three letters", content: "[pairs]\nEFG = 3.0\n"},
		{name: "same letter twice", content: "[pairs]\nEE = 3.0\n"},
		{name: "digits", content: "[pairs]\n\"12\" = 3.0\n"},
		{name: "negative weight", content: "[pairs]\nEF = -3.0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "confusion.toml", tc.content)
			if _, err := LoadConfusion(path); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestLoadConfusionMissingFile(t *testing.T) {
	if _, err := LoadConfusion(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing confusion table")
	}
}

func TestDefaultTables(t *testing.T) {
	rarity := DefaultRarity()
	if len(rarity) != 26 {
		t.Fatalf("expected 26 letters in default rarity table, got %d", len(rarity))
	}
	if rarity.Weight('Z') != 10 {
		t.Fatalf("Weight(Z) = %v, want 10", rarity.Weight('Z'))
	}

	confusion := DefaultConfusion()
	if confusion.Weight('E', 'F') != 3 {
		t.Fatalf("Weight(E,F) = %v, want 3", confusion.Weight('E', 'F'))
	}
	if confusion.Weight('Q', 'O') != 4 {
		t.Fatalf("Weight(Q,O) = %v, want 4", confusion.Weight('Q', 'O'))
	}
}
