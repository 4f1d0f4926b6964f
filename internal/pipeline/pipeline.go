// Package pipeline drives the word preparation run: validate, score,
// categorize, group, and persist.
package pipeline

import (
	"math"
	"sort"

	"github.com/verte-zerg/lexiglyph/internal/model"
	"github.com/verte-zerg/lexiglyph/internal/scoring"
	"github.com/verte-zerg/lexiglyph/internal/tables"
)

// Settings carries the knobs for one preparation run.
type Settings struct {
	MinLen  int
	MaxLen  int
	Weights model.Weights
	Tiers   scoring.Tiers
}

// Result is the outcome of one preparation run.
type Result struct {
	Dictionary Dictionary
	Stats      model.RunStats
}

// Run validates, scores, and categorizes the raw candidates in input order,
// then groups them into tier buckets sorted ascending by score. Every
// declared tier plus the Unknown bucket is present in the result even when
// empty. Rejected candidates are counted, never an error.
func Run(raw []string, rarity tables.RarityTable, confusion tables.ConfusionTable, settings Settings) Result {
	stats := model.RunStats{
		Read:    len(raw),
		PerTier: make(map[string]int, len(settings.Tiers)+1),
	}

	scored := make([]model.ScoredWord, 0, len(raw))
	for _, candidate := range raw {
		word, ok := scoring.Validate(candidate, settings.MinLen, settings.MaxLen)
		if !ok {
			stats.Rejected++
			continue
		}
		stats.Valid++
		score := scoring.Score(word, rarity, confusion, settings.Weights)
		scored = append(scored, model.ScoredWord{
			Word:  word,
			Score: score,
			Tier:  settings.Tiers.Categorize(score),
		})
	}

	dict := NewDictionary(settings.Tiers.Names())
	for _, sw := range scored {
		dict.Buckets[sw.Tier] = append(dict.Buckets[sw.Tier], model.Entry{
			Word:  sw.Word,
			Score: roundScore(sw.Score),
		})
		stats.PerTier[sw.Tier]++
	}
	for _, bucket := range dict.Buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Score < bucket[j].Score
		})
	}

	return Result{Dictionary: dict, Stats: stats}
}

// roundScore rounds to two decimal places for the persisted form.
func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
