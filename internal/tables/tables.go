// Package tables loads the letter rarity and pair confusion score tables.
package tables

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// RarityTable maps an uppercase letter to a non-negative rarity weight.
// Letters absent from the table weigh 0.
type RarityTable map[rune]float64

// Weight returns the rarity weight for a letter, 0 when absent.
func (t RarityTable) Weight(letter rune) float64 {
	return t[letter]
}

// ConfusionTable maps an unordered pair of distinct uppercase letters to a
// non-negative visual-confusion weight. The key is canonicalized with the
// smaller letter first; absent pairs weigh 0.
type ConfusionTable map[[2]rune]float64

// Weight returns the confusion weight for a letter pair, 0 when absent.
// Argument order does not matter.
func (t ConfusionTable) Weight(a, b rune) float64 {
	return t[pairKey(a, b)]
}

func pairKey(a, b rune) [2]rune {
	if a > b {
		a, b = b, a
	}
	return [2]rune{a, b}
}

type rarityFile struct {
	Letters map[string]float64 `toml:"letters"`
}

type confusionFile struct {
	Pairs map[string]float64 `toml:"pairs"`
}

// LoadRarity reads a rarity table from a TOML file with a [letters] section
// mapping single letters to weights.
func LoadRarity(path string) (RarityTable, error) {
	var file rarityFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to decode rarity table %s: %w", path, err)
	}
	table := make(RarityTable, len(file.Letters))
	for key, weight := range file.Letters {
		letter, err := parseLetter(key)
		if err != nil {
			return nil, fmt.Errorf("invalid rarity key %q in %s: %w", key, path, err)
		}
		if weight < 0 {
			return nil, fmt.Errorf("negative rarity weight for %q in %s", key, path)
		}
		table[letter] = weight
	}
	return table, nil
}

// LoadConfusion reads a confusion table from a TOML file with a [pairs]
// section mapping two-letter keys (e.g. "EF") to weights. A missing file is
// an error so the caller can decide how to degrade.
func LoadConfusion(path string) (ConfusionTable, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("confusion table not found at %s", path)
	}
	var file confusionFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to decode confusion table %s: %w", path, err)
	}
	table := make(ConfusionTable, len(file.Pairs))
	for key, weight := range file.Pairs {
		a, b, err := parsePair(key)
		if err != nil {
			return nil, fmt.Errorf("invalid confusion key %q in %s: %w", key, path, err)
		}
		if weight < 0 {
			return nil, fmt.Errorf("negative confusion weight for %q in %s", key, path)
		}
		table[pairKey(a, b)] = weight
	}
	return table, nil
}

func parseLetter(key string) (rune, error) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, fmt.Errorf("expected a single letter")
	}
	r, _ := utf8.DecodeRuneInString(key)
	if !unicode.IsLetter(r) {
		return 0, fmt.Errorf("expected a letter")
	}
	return unicode.ToUpper(r), nil
}

func parsePair(key string) (rune, rune, error) {
	runes := []rune(key)
	if len(runes) != 2 {
		return 0, 0, fmt.Errorf("expected exactly two letters")
	}
	a := unicode.ToUpper(runes[0])
	b := unicode.ToUpper(runes[1])
	if !unicode.IsLetter(a) || !unicode.IsLetter(b) {
		return 0, 0, fmt.Errorf("expected letters")
	}
	if a == b {
		return 0, 0, fmt.Errorf("pair letters must be distinct")
	}
	return a, b, nil
}
