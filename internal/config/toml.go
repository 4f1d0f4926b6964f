// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/lexiglyph/internal/model"
	"github.com/verte-zerg/lexiglyph/internal/scoring"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Validation ValidationConfig `toml:"validation"`
	Weights    WeightsConfig    `toml:"weights"`
	Tables     TablesConfig     `toml:"tables"`
	Tiers      []TierConfig     `toml:"tiers"`
}

// ValidationConfig maps word validation settings.
type ValidationConfig struct {
	MinLen *int `toml:"min-len"`
	MaxLen *int `toml:"max-len"`
}

// WeightsConfig maps scoring weight settings.
type WeightsConfig struct {
	Length    *float64 `toml:"length"`
	Rarity    *float64 `toml:"rarity"`
	Repeat    *float64 `toml:"repeat"`
	Confusion *float64 `toml:"confusion"`
}

// TablesConfig maps score table paths.
type TablesConfig struct {
	Rarity    *string `toml:"rarity"`
	Confusion *string `toml:"confusion"`
}

// TierConfig maps one difficulty tier. Declaration order in the file is the
// categorization order. A missing max means unbounded.
type TierConfig struct {
	Name string   `toml:"name"`
	Min  float64  `toml:"min"`
	Max  *float64 `toml:"max"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// TierRanges converts the configured tiers to scoring tiers, or the stock
// Easy/Medium/Hard ranges when none are configured.
func (c FileConfig) TierRanges() scoring.Tiers {
	if len(c.Tiers) == 0 {
		return scoring.DefaultTiers()
	}
	tiers := make(scoring.Tiers, 0, len(c.Tiers))
	for _, tc := range c.Tiers {
		max := math.Inf(1)
		if tc.Max != nil {
			max = *tc.Max
		}
		tiers = append(tiers, model.Tier{Name: tc.Name, Min: tc.Min, Max: max})
	}
	return tiers
}
