package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/lexiglyph/internal/model"
)

const (
	barRune             = '█'
	minBarWidth         = 10
	terminalWidthBackup = 80
)

// RenderChart prints a horizontal bar chart of the tier distribution. Bars
// scale to the available width; width <= 0 auto-detects the terminal width.
func RenderChart(w io.Writer, stats model.RunStats, tierOrder []string, width int) error {
	if width <= 0 {
		width = autoChartWidth()
	}

	labelWidth := 0
	maxCount := 0
	for _, name := range tierOrder {
		if lw := runewidth.StringWidth(name); lw > labelWidth {
			labelWidth = lw
		}
		if stats.PerTier[name] > maxCount {
			maxCount = stats.PerTier[name]
		}
	}

	countWidth := len(fmt.Sprintf("%d", maxCount))
	barWidth := width - labelWidth - countWidth - 3
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	for _, name := range tierOrder {
		count := stats.PerTier[name]
		bar := ""
		if maxCount > 0 {
			cells := int(math.Round(float64(count) / float64(maxCount) * float64(barWidth)))
			if count > 0 && cells == 0 {
				cells = 1
			}
			bar = strings.Repeat(string(barRune), cells)
		}
		if _, err := fmt.Fprintf(w, "%s %*d %s\n", padCell(name, labelWidth, false), countWidth, count, bar); err != nil {
			return err
		}
	}
	return nil
}

func autoChartWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
