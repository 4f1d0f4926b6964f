package scoring

import (
	"fmt"
	"math"

	"github.com/verte-zerg/lexiglyph/internal/model"
)

// TierUnknown is the fallback bucket for scores outside every declared range.
const TierUnknown = "Unknown"

// Tiers is an ordered list of difficulty buckets. Declaration order is the
// tie-break when ranges overlap due to misconfiguration.
type Tiers []model.Tier

// DefaultTiers returns the stock Easy/Medium/Hard ranges.
func DefaultTiers() Tiers {
	return Tiers{
		{Name: "Easy", Min: 0, Max: 70},
		{Name: "Medium", Min: 71, Max: 150},
		{Name: "Hard", Min: 151, Max: math.Inf(1)},
	}
}

// Categorize returns the name of the first tier whose inclusive range
// contains the score. Declared ranges are contiguous even when the mins are
// integers: a score between one tier's max and the next tier's min belongs to
// the next tier (150.5 is Hard under Medium [71,150], Hard [151,inf)).
// TierUnknown is returned for scores below the first tier or past a bounded
// final tier.
func (t Tiers) Categorize(score float64) string {
	for _, tier := range t {
		if score >= tier.Min && score <= tier.Max {
			return tier.Name
		}
	}
	for i := 1; i < len(t); i++ {
		if score > t[i-1].Max && score < t[i].Min {
			return t[i].Name
		}
	}
	return TierUnknown
}

// Names returns the tier names in declaration order.
func (t Tiers) Names() []string {
	names := make([]string, len(t))
	for i, tier := range t {
		names[i] = tier.Name
	}
	return names
}

// Validate checks that tiers are well-formed: non-empty unique names, no
// reserved name, min <= max, and ranges in ascending non-overlapping order.
func (t Tiers) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("at least one tier is required")
	}
	seen := make(map[string]struct{}, len(t))
	for i, tier := range t {
		if tier.Name == "" {
			return fmt.Errorf("tier %d has an empty name", i)
		}
		if tier.Name == TierUnknown {
			return fmt.Errorf("tier name %q is reserved", TierUnknown)
		}
		if _, ok := seen[tier.Name]; ok {
			return fmt.Errorf("duplicate tier name %q", tier.Name)
		}
		seen[tier.Name] = struct{}{}
		if tier.Min > tier.Max {
			return fmt.Errorf("tier %q has min %g greater than max %g", tier.Name, tier.Min, tier.Max)
		}
		if i > 0 && tier.Min <= t[i-1].Max {
			return fmt.Errorf("tier %q overlaps tier %q", tier.Name, t[i-1].Name)
		}
	}
	return nil
}
