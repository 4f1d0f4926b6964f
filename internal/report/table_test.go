package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Tier", "Words"}
	rows := [][]string{
		{"Easy", "120"},
		{"Medium", "45"},
		{"Unknown", "0"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "Tier    Words" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Easy      120" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[3] != "Unknown     0" {
		t.Fatalf("unexpected row line: %q", lines[3])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil for empty table, got %v", lines)
	}
}
