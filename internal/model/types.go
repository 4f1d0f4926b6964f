// Package model defines shared data structures.
package model

// Weights defines the multipliers for the four difficulty signals.
type Weights struct {
	Length    float64
	Rarity    float64
	Repeat    float64
	Confusion float64
}

// DefaultWeights returns the stock weight set tuned for the English tables.
func DefaultWeights() Weights {
	return Weights{
		Length:    1.0,
		Rarity:    1.5,
		Repeat:    5.0,
		Confusion: 10.0,
	}
}

// Tier defines a named difficulty bucket with an inclusive score range.
// Max may be math.Inf(1) for the unbounded final tier.
type Tier struct {
	Name string
	Min  float64
	Max  float64
}

// ScoredWord is a validated word with its computed score and tier.
type ScoredWord struct {
	Word  string
	Score float64
	Tier  string
}

// Entry is the persisted projection of a scored word. Score is rounded
// to two decimal places.
type Entry struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// RunStats summarizes one preparation run.
type RunStats struct {
	Read     int
	Valid    int
	Rejected int
	PerTier  map[string]int
}

// FilterStats summarizes one profanity-filter run.
type FilterStats struct {
	Read     int
	Filtered int
	Written  int
}
