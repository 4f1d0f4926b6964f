package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/lexiglyph/internal/model"
	"github.com/verte-zerg/lexiglyph/internal/scoring"
)

// Dictionary is the grouped output artifact: tier name to score-sorted
// entries. Order lists the tier names in declaration order with the Unknown
// bucket last, so serialization is byte-stable across runs.
type Dictionary struct {
	Order   []string
	Buckets map[string][]model.Entry
}

// NewDictionary builds an empty dictionary with a bucket for every declared
// tier plus the Unknown bucket.
func NewDictionary(tierNames []string) Dictionary {
	order := make([]string, 0, len(tierNames)+1)
	order = append(order, tierNames...)
	order = append(order, scoring.TierUnknown)
	buckets := make(map[string][]model.Entry, len(order))
	for _, name := range order {
		buckets[name] = []model.Entry{}
	}
	return Dictionary{Order: order, Buckets: buckets}
}

// MarshalJSON writes the buckets as a JSON object in tier declaration order.
func (d Dictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		entries := d.Buckets[name]
		if entries == nil {
			entries = []model.Entry{}
		}
		value, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON persists the dictionary atomically: the artifact is written to a
// temp file in the target directory and renamed into place, so a failed run
// never leaves a partial dictionary behind.
func WriteJSON(path string, dict Dictionary) error {
	data, err := json.MarshalIndent(dict, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "lexiglyph-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp dictionary: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write dictionary: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close dictionary: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write dictionary: %w", err)
	}
	return nil
}

// LoadJSON reads a dictionary artifact back, preserving the tier order of
// the file.
func LoadJSON(path string) (Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dictionary{}, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dictionary.
			_ = cerr
		}
	}()

	dec := json.NewDecoder(file)
	tok, err := dec.Token()
	if err != nil {
		return Dictionary{}, fmt.Errorf("failed to decode dictionary: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Dictionary{}, fmt.Errorf("dictionary %s: expected a top-level object", path)
	}

	dict := Dictionary{Buckets: map[string][]model.Entry{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Dictionary{}, fmt.Errorf("failed to decode dictionary: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return Dictionary{}, fmt.Errorf("dictionary %s: unexpected key token", path)
		}
		var entries []model.Entry
		if err := dec.Decode(&entries); err != nil {
			return Dictionary{}, fmt.Errorf("dictionary %s: invalid entries for tier %q: %w", path, name, err)
		}
		if entries == nil {
			entries = []model.Entry{}
		}
		dict.Order = append(dict.Order, name)
		dict.Buckets[name] = entries
	}
	return dict, nil
}
