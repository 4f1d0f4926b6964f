// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "lexiglyph", "config.toml")
}

// DefaultRarityTablePath returns the default rarity table path.
func DefaultRarityTablePath() string {
	return filepath.Join(XDGConfigHome(), "lexiglyph", "rarity.toml")
}

// DefaultConfusionTablePath returns the default confusion table path.
func DefaultConfusionTablePath() string {
	return filepath.Join(XDGConfigHome(), "lexiglyph", "confusion.toml")
}
