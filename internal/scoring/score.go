package scoring

import (
	"sort"

	"github.com/verte-zerg/lexiglyph/internal/model"
	"github.com/verte-zerg/lexiglyph/internal/tables"
)

// Score computes the difficulty score for a validated word as the weighted
// sum of four signals: word length, summed letter rarity, extra instances of
// repeated letters, and visual confusion over all distinct letter pairs.
func Score(word string, rarity tables.RarityTable, confusion tables.ConfusionTable, weights model.Weights) float64 {
	runes := []rune(word)

	score := weights.Length * float64(len(runes))

	var raritySum float64
	counts := make(map[rune]int, len(runes))
	for _, r := range runes {
		raritySum += rarity.Weight(r)
		counts[r]++
	}
	score += weights.Rarity * raritySum

	extraInstances := 0
	for _, n := range counts {
		if n > 1 {
			extraInstances += n - 1
		}
	}
	score += weights.Repeat * float64(extraInstances)

	score += weights.Confusion * confusionSum(counts, confusion)

	return score
}

// confusionSum sums the confusion weight over every unordered pair of
// distinct letters in the word. Fewer than two distinct letters yield 0.
func confusionSum(counts map[rune]int, confusion tables.ConfusionTable) float64 {
	distinct := make([]rune, 0, len(counts))
	for r := range counts {
		distinct = append(distinct, r)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	var sum float64
	for i := 0; i < len(distinct); i++ {
		for j := i + 1; j < len(distinct); j++ {
			sum += confusion.Weight(distinct[i], distinct[j])
		}
	}
	return sum
}
