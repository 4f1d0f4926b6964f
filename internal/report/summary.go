package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/lexiglyph/internal/model"
)

// RenderSummary prints run totals and a per-tier count table. Tier rows
// follow the provided declaration order.
func RenderSummary(w io.Writer, stats model.RunStats, tierOrder []string) error {
	if _, err := fmt.Fprintf(w, "Read: %d  Valid: %d  Rejected: %d\n", stats.Read, stats.Valid, stats.Rejected); err != nil {
		return err
	}

	rows := make([][]string, 0, len(tierOrder))
	for _, name := range tierOrder {
		rows = append(rows, []string{name, strconv.Itoa(stats.PerTier[name])})
	}
	lines := formatTable([]string{"Tier", "Words"}, rows, map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
