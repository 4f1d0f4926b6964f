package wordlist

import (
	"path/filepath"
	"testing"
)

func TestLoadBlocklist(t *testing.T) {
	path := writeFile(t, "blocklist.txt", "Darn\nheck\n\n  drat  \n")
	list, found, err := LoadBlocklist(path)
	if err != nil {
		t.Fatalf("LoadBlocklist: %v", err)
	}
	if !found {
		t.Fatalf("expected blocklist to be found")
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	for _, word := range []string{"darn", "HECK", "Drat", " drat "} {
		if !list.Contains(word) {
			t.Fatalf("expected %q to be blocked", word)
		}
	}
	if list.Contains("kitten") {
		t.Fatalf("kitten should not be blocked")
	}
}

func TestLoadBlocklistMissingFile(t *testing.T) {
	list, found, err := LoadBlocklist(filepath.Join(t.TempDir(), "absent.txt"))
	if err != nil {
		t.Fatalf("LoadBlocklist: %v", err)
	}
	if found {
		t.Fatalf("expected found=false for missing blocklist")
	}
	if len(list) != 0 {
		t.Fatalf("expected empty blocklist, got %d entries", len(list))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	list, _, err := LoadBlocklist(writeFile(t, "blocklist.txt", "heck\n"))
	if err != nil {
		t.Fatalf("LoadBlocklist: %v", err)
	}
	kept, filtered := Filter([]string{"cat", "Heck", "dog", "HECK", "emu"}, list)
	if filtered != 2 {
		t.Fatalf("filtered = %d, want 2", filtered)
	}
	want := []string{"cat", "dog", "emu"}
	if len(kept) != len(want) {
		t.Fatalf("kept %d words, want %d", len(kept), len(want))
	}
	for i, w := range want {
		if kept[i] != w {
			t.Fatalf("kept[%d] = %q, want %q", i, kept[i], w)
		}
	}
}

func TestFilterEmptyBlocklistKeepsEverything(t *testing.T) {
	words := []string{"cat", "dog"}
	kept, filtered := Filter(words, Blocklist{})
	if filtered != 0 || len(kept) != 2 {
		t.Fatalf("expected all words kept, got kept=%v filtered=%d", kept, filtered)
	}
}
