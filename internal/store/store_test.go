package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/lexiglyph/internal/model"
	"github.com/verte-zerg/lexiglyph/internal/pipeline"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexiglyph.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestWriteAndReadDictionary(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	dict := pipeline.NewDictionary([]string{"Easy", "Hard"})
	dict.Buckets["Easy"] = []model.Entry{
		{Word: "CAT", Score: 10.5},
		{Word: "DOG", Score: 11.0},
	}
	dict.Buckets["Hard"] = []model.Entry{
		{Word: "QUIZZICAL", Score: 197.5},
	}
	if err := st.WriteDictionary(ctx, dict); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}

	loaded, err := st.ReadDictionary(ctx)
	if err != nil {
		t.Fatalf("read dictionary: %v", err)
	}
	wantOrder := []string{"Easy", "Hard", "Unknown"}
	if len(loaded.Order) != len(wantOrder) {
		t.Fatalf("order = %v, want %v", loaded.Order, wantOrder)
	}
	for i, name := range wantOrder {
		if loaded.Order[i] != name {
			t.Fatalf("order[%d] = %q, want %q", i, loaded.Order[i], name)
		}
	}
	easy := loaded.Buckets["Easy"]
	if len(easy) != 2 || easy[0].Word != "CAT" || easy[0].Score != 10.5 || easy[1].Word != "DOG" {
		t.Fatalf("unexpected Easy bucket: %+v", easy)
	}
	if len(loaded.Buckets["Unknown"]) != 0 {
		t.Fatalf("expected empty Unknown bucket, got %+v", loaded.Buckets["Unknown"])
	}
}

func TestWriteDictionaryReplacesPriorContent(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	first := pipeline.NewDictionary([]string{"Easy"})
	first.Buckets["Easy"] = []model.Entry{{Word: "CAT", Score: 10.5}}
	if err := st.WriteDictionary(ctx, first); err != nil {
		t.Fatalf("write first dictionary: %v", err)
	}

	second := pipeline.NewDictionary([]string{"Simple", "Tricky"})
	second.Buckets["Tricky"] = []model.Entry{{Word: "LULL", Score: 24.0}}
	if err := st.WriteDictionary(ctx, second); err != nil {
		t.Fatalf("write second dictionary: %v", err)
	}

	loaded, err := st.ReadDictionary(ctx)
	if err != nil {
		t.Fatalf("read dictionary: %v", err)
	}
	if len(loaded.Order) != 3 || loaded.Order[0] != "Simple" {
		t.Fatalf("expected the second dictionary only, got order %v", loaded.Order)
	}
	if len(loaded.Buckets["Easy"]) != 0 {
		t.Fatalf("stale Easy bucket survived: %+v", loaded.Buckets["Easy"])
	}
	if len(loaded.Buckets["Tricky"]) != 1 || loaded.Buckets["Tricky"][0].Word != "LULL" {
		t.Fatalf("unexpected Tricky bucket: %+v", loaded.Buckets["Tricky"])
	}
}
