package components

import (
	"strings"

	"github.com/wanderwallet/wanderwallet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SpendLine renders one block per value, scaled to the larger of the peak
// value and limit. Values above limit are drawn red, the rest green.
func SpendLine(values []int, limit int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := limit
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	over := lipgloss.NewStyle().Foreground(t.Red)
	under := lipgloss.NewStyle().Foreground(t.Green)

	var b strings.Builder
	for _, v := range values {
		idx := v * (len(blocks) - 1) / peak
		if idx < 0 {
			idx = 0
		}
		s := string(blocks[idx])
		if v > limit {
			b.WriteString(over.Render(s))
		} else {
			b.WriteString(under.Render(s))
		}
	}
	return b.String()
}
