package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/wanderwallet/wanderwallet/internal/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestLayoutRow(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, LayoutRow(10, 3))
	assert.Equal(t, []int{5, 5}, LayoutRow(10, 2))
	assert.Nil(t, LayoutRow(10, 0))
}

func TestMetricCardRow_Width(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Spent", Value: "1,500 €"},
		{Label: "Remaining", Value: "500 €", Note: "of 2,000 €"},
		{Label: "Days left", Value: "4"},
	}, 60)

	lines := strings.Split(row, "\n")
	for i, line := range lines {
		assert.Equal(t, 60, lipgloss.Width(line), "line %d", i)
	}
	assert.Contains(t, row, "Remaining")
	assert.Contains(t, row, "of 2,000 €")
}

func TestColorForUsage(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active

	assert.Equal(t, th.Green, ColorForUsage(0.1))
	assert.Equal(t, th.Yellow, ColorForUsage(0.5))
	assert.Equal(t, th.Orange, ColorForUsage(0.75))
	assert.Equal(t, th.Red, ColorForUsage(1))
}

func TestUsageBar_ClampsPercentage(t *testing.T) {
	assert.Contains(t, UsageBar("Budget", 1.7, 8, 20), "100%")
	assert.Contains(t, UsageBar("Budget", -1, 8, 20), "  0%")
}

func TestSpendLine(t *testing.T) {
	assert.Empty(t, SpendLine(nil, 100))

	line := SpendLine([]int{0, 50, 100, 200}, 100)
	assert.Equal(t, "▁▂▄█", line)
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(30, "[q]uit", "Italy")
	assert.Equal(t, 30, lipgloss.Width(bar))
	assert.True(t, strings.HasPrefix(bar, "[q]uit"))
	assert.True(t, strings.HasSuffix(bar, "Italy"))
}
