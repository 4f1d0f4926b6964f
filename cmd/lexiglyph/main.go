// Package main provides the CLI entrypoint for lexiglyph.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/lexiglyph/internal/config"
	"github.com/verte-zerg/lexiglyph/internal/dictui"
	"github.com/verte-zerg/lexiglyph/internal/model"
	"github.com/verte-zerg/lexiglyph/internal/pipeline"
	"github.com/verte-zerg/lexiglyph/internal/report"
	"github.com/verte-zerg/lexiglyph/internal/scoring"
	"github.com/verte-zerg/lexiglyph/internal/store"
	"github.com/verte-zerg/lexiglyph/internal/tables"
	"github.com/verte-zerg/lexiglyph/internal/wordlist"
)

const (
	defaultInput     = "raw_word_list.txt"
	defaultOutput    = "lexiglyph_dictionary.json"
	defaultBlocklist = "profanity_list.txt"

	formatJSON   = "json"
	formatSQLite = "sqlite"
)

var (
	prepareInput           string
	prepareOutput          string
	prepareFormat          string
	prepareMinLen          int
	prepareMaxLen          int
	prepareLengthWeight    float64
	prepareRarityWeight    float64
	prepareRepeatPenalty   float64
	prepareConfusionWeight float64
	prepareRarityTable     string
	prepareConfusionTable  string
	prepareNoChart         bool

	filterBlocklist string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lexiglyph",
		Short:         "Prepare a categorized word dictionary for LexiGlyph",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPrepareCmd,
	}

	defaults := model.DefaultWeights()
	rootCmd.Flags().StringVar(&prepareInput, "input", defaultInput, "raw word list path (one word per line)")
	rootCmd.Flags().StringVar(&prepareOutput, "output", defaultOutput, "output dictionary path")
	rootCmd.Flags().StringVar(&prepareFormat, "format", formatJSON, "output format (json or sqlite)")
	rootCmd.Flags().IntVar(&prepareMinLen, "min-len", scoring.DefaultMinLen, "minimum word length")
	rootCmd.Flags().IntVar(&prepareMaxLen, "max-len", scoring.DefaultMaxLen, "maximum word length")
	rootCmd.Flags().Float64Var(&prepareLengthWeight, "length-weight", defaults.Length, "score per letter")
	rootCmd.Flags().Float64Var(&prepareRarityWeight, "rarity-weight", defaults.Rarity, "multiplier for summed letter rarity")
	rootCmd.Flags().Float64Var(&prepareRepeatPenalty, "repeat-penalty", defaults.Repeat, "penalty per extra instance of a repeated letter")
	rootCmd.Flags().Float64Var(&prepareConfusionWeight, "confusion-weight", defaults.Confusion, "multiplier for summed pair confusion")
	rootCmd.Flags().StringVar(&prepareRarityTable, "rarity-table", "", "rarity table path (default: built-in English table)")
	rootCmd.Flags().StringVar(&prepareConfusionTable, "confusion-table", "", "confusion table path (default: built-in table)")
	rootCmd.Flags().BoolVar(&prepareNoChart, "no-chart", false, "skip the tier distribution chart")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newBrowseCmd())

	return rootCmd
}

func runPrepareCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "min-len", &prepareMinLen, fileCfg.Validation.MinLen)
	applyIntConfig(cmd, "max-len", &prepareMaxLen, fileCfg.Validation.MaxLen)
	applyFloatConfig(cmd, "length-weight", &prepareLengthWeight, fileCfg.Weights.Length)
	applyFloatConfig(cmd, "rarity-weight", &prepareRarityWeight, fileCfg.Weights.Rarity)
	applyFloatConfig(cmd, "repeat-penalty", &prepareRepeatPenalty, fileCfg.Weights.Repeat)
	applyFloatConfig(cmd, "confusion-weight", &prepareConfusionWeight, fileCfg.Weights.Confusion)
	applyStringConfig(cmd, "rarity-table", &prepareRarityTable, fileCfg.Tables.Rarity)
	applyStringConfig(cmd, "confusion-table", &prepareConfusionTable, fileCfg.Tables.Confusion)

	settings := pipeline.Settings{
		MinLen: prepareMinLen,
		MaxLen: prepareMaxLen,
		Weights: model.Weights{
			Length:    prepareLengthWeight,
			Rarity:    prepareRarityWeight,
			Repeat:    prepareRepeatPenalty,
			Confusion: prepareConfusionWeight,
		},
		Tiers: fileCfg.TierRanges(),
	}
	if err := validateSettings(settings); err != nil {
		return err
	}
	if err := settings.Tiers.Validate(); err != nil {
		return fmt.Errorf("invalid tier configuration: %w", err)
	}

	rarity := loadRarityTable(prepareRarityTable)
	confusion := loadConfusionTable(prepareConfusionTable)

	words, err := wordlist.LoadWords(prepareInput)
	if err != nil {
		return fmt.Errorf("failed to read word list %s: %w", prepareInput, err)
	}

	result := pipeline.Run(words, rarity, confusion, settings)

	switch prepareFormat {
	case formatJSON:
		if err := pipeline.WriteJSON(prepareOutput, result.Dictionary); err != nil {
			return fmt.Errorf("failed to write dictionary %s: %w", prepareOutput, err)
		}
	case formatSQLite:
		if err := writeSQLite(prepareOutput, result.Dictionary); err != nil {
			return fmt.Errorf("failed to write dictionary %s: %w", prepareOutput, err)
		}
	}

	tierOrder := result.Dictionary.Order
	if err := report.RenderSummary(os.Stderr, result.Stats, tierOrder); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if !prepareNoChart {
		if err := report.RenderChart(os.Stderr, result.Stats, tierOrder, 0); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
	}
	logErrf("Wrote %s\n", prepareOutput)
	return nil
}

func writeSQLite(path string, dict pipeline.Dictionary) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return st.WriteDictionary(context.Background(), dict)
}

// loadRarityTable resolves the rarity table: an explicit path, the default
// XDG table file when present, or the built-in English table. A malformed
// file degrades to the built-in table with a warning.
func loadRarityTable(path string) tables.RarityTable {
	if path == "" {
		candidate := config.DefaultRarityTablePath()
		if _, err := os.Stat(candidate); err != nil {
			return tables.DefaultRarity()
		}
		path = candidate
	}
	table, err := tables.LoadRarity(path)
	if err != nil {
		logErrf("warning: %v; using built-in rarity table\n", err)
		return tables.DefaultRarity()
	}
	return table
}

// loadConfusionTable resolves the confusion table the same way, except a
// missing or malformed explicit source degrades to an empty table so the
// confusion signal becomes 0 for every word.
func loadConfusionTable(path string) tables.ConfusionTable {
	if path == "" {
		candidate := config.DefaultConfusionTablePath()
		if _, err := os.Stat(candidate); err != nil {
			return tables.DefaultConfusion()
		}
		path = candidate
	}
	table, err := tables.LoadConfusion(path)
	if err != nil {
		logErrf("warning: %v; confusion signal disabled for this run\n", err)
		return tables.ConfusionTable{}
	}
	return table
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <input> <output>",
		Short: "Remove blocklisted words from a word list",
		Args:  cobra.ExactArgs(2),
		RunE:  runFilterCmd,
	}
	cmd.Flags().StringVar(&filterBlocklist, "blocklist", defaultBlocklist, "blocklist path (one lowercase word per line)")
	return cmd
}

func runFilterCmd(_ *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	blocklist, found, err := wordlist.LoadBlocklist(filterBlocklist)
	if err != nil {
		return fmt.Errorf("failed to read blocklist %s: %w", filterBlocklist, err)
	}
	if !found {
		logErrf("warning: blocklist not found at %s; no words will be filtered\n", filterBlocklist)
	} else {
		logErrf("Loaded %d blocklisted words from %s\n", len(blocklist), filterBlocklist)
	}

	words, err := wordlist.LoadWords(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read word list %s: %w", inputPath, err)
	}

	kept, filtered := wordlist.Filter(words, blocklist)
	if err := writeWordList(outputPath, kept); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	stats := model.FilterStats{Read: len(words), Filtered: filtered, Written: len(kept)}
	logErrf("Read: %d  Filtered: %d  Written: %d\n", stats.Read, stats.Filtered, stats.Written)
	logErrf("Wrote %s\n", outputPath)
	return nil
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [dictionary]",
		Short: "Browse a generated dictionary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowseCmd,
	}
}

func runBrowseCmd(_ *cobra.Command, args []string) error {
	path := defaultOutput
	if len(args) == 1 {
		path = args[0]
	}
	dict, err := pipeline.LoadJSON(path)
	if err != nil {
		return err
	}

	browser := dictui.NewModel(path, dict)
	program := tea.NewProgram(browser, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func writeWordList(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "wordlist-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp word list: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	defaults := model.DefaultWeights()
	return fmt.Sprintf(`# lexiglyph configuration
# Uncomment a value to enable it. CLI flags override config values.

[validation]
# min-len = %d             # Minimum word length
# max-len = %d            # Maximum word length

[weights]
# length = %.1f            # Score per letter
# rarity = %.1f            # Multiplier for summed letter rarity
# repeat = %.1f            # Penalty per extra instance of a repeated letter
# confusion = %.1f        # Multiplier for summed pair confusion

[tables]
# rarity = %q
# confusion = %q

# Tiers are matched first to last; omit max for the unbounded final tier.
# [[tiers]]
# name = "Easy"
# min = 0
# max = 70
#
# [[tiers]]
# name = "Medium"
# min = 71
# max = 150
#
# [[tiers]]
# name = "Hard"
# min = 151
`,
		scoring.DefaultMinLen,
		scoring.DefaultMaxLen,
		defaults.Length,
		defaults.Rarity,
		defaults.Repeat,
		defaults.Confusion,
		config.DefaultRarityTablePath(),
		config.DefaultConfusionTablePath(),
	)
}

func validateSettings(settings pipeline.Settings) error {
	if settings.MinLen < 1 {
		return fmt.Errorf("--min-len must be >= 1")
	}
	if settings.MaxLen < settings.MinLen {
		return fmt.Errorf("--max-len must be >= --min-len")
	}
	if settings.Weights.Length < 0 {
		return fmt.Errorf("--length-weight must be >= 0")
	}
	if settings.Weights.Rarity < 0 {
		return fmt.Errorf("--rarity-weight must be >= 0")
	}
	if settings.Weights.Repeat < 0 {
		return fmt.Errorf("--repeat-penalty must be >= 0")
	}
	if settings.Weights.Confusion < 0 {
		return fmt.Errorf("--confusion-weight must be >= 0")
	}
	if prepareFormat != formatJSON && prepareFormat != formatSQLite {
		return fmt.Errorf("--format must be %q or %q", formatJSON, formatSQLite)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
