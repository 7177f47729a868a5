package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wanderwallet/wanderwallet/internal/model"
	"github.com/wanderwallet/wanderwallet/internal/tui/theme"
)

type styles struct {
	title, header, value, muted, dim lipgloss.Style
}

func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
	}
}

// StatusStyle returns the color used for a budget status.
func StatusStyle(s model.BudgetStatus) lipgloss.Style {
	t := theme.Active
	switch s {
	case model.StatusOver:
		return lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	case model.StatusUnder:
		return lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string // a row of just "---" renders a separator
	// LeftAlign lists the columns rendered left-aligned. Column 0 always is.
	LeftAlign []int
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	st := currentStyles()
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(st.title.Render(title))
}

// RenderTable renders a bordered table with headers and rows. Cell widths
// are measured with lipgloss so pre-styled cells line up.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	st := currentStyles()

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	left := map[int]bool{0: true}
	for _, i := range t.LeftAlign {
		left[i] = true
	}

	rule := func(l, mid, r string) string {
		var b strings.Builder
		b.WriteString(l)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(r)
		return st.dim.Render(b.String()) + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(st.header.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(st.dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(st.header.Render(" " + pad(h, widths[i], true) + " "))
			b.WriteString(st.dim.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(st.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(st.value.Render(" " + pad(cell, widths[i], left[i]) + " "))
			b.WriteString(st.dim.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}

func pad(s string, width int, leftAlign bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if leftAlign {
		return s + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + s
}

// SummaryRows returns the label/value rows of a trip summary.
func SummaryRows(s model.Summary, currency string) [][]string {
	return [][]string{
		{"Trip Name", s.Name},
		{"Dates", FormatDateRange(s.StartDate, s.EndDate, s.Duration)},
		{"Days Left", FormatDays(s.DaysLeft)},
		{"---"},
		{"Total Budget", FormatMoney(s.TotalBudget, currency)},
		{"Total Expenses", FormatMoney(s.TotalSpent, currency)},
		{"Remaining Budget", FormatMoney(s.RemainingBudget, currency)},
		{"---"},
		{"Daily Budget", FormatMoney(s.DailyBudget, currency)},
		{"Avg. Daily Expenses", FormatMoney(s.AvgDailySpent, currency)},
		{"Budget Status", StatusStyle(s.Status).Render(s.StatusMessage)},
	}
}

// RenderSummary renders the trip summary table with its rounding footnote.
func RenderSummary(s model.Summary, currency string) string {
	var b strings.Builder
	b.WriteString(RenderTable(Table{
		Headers:   []string{"Trip", "Current"},
		Rows:      SummaryRows(s, currency),
		LeftAlign: []int{1},
	}))
	b.WriteString(currentStyles().muted.Render("  All values rounded to the nearest whole unit"))
	b.WriteString("\n")
	return b.String()
}

// RenderExpenses renders the ledger as a date/amount table with a total row.
func RenderExpenses(expenses []model.Expense, currency string) string {
	if len(expenses) == 0 {
		return currentStyles().muted.Render("  No expenses tracked yet.") + "\n"
	}

	rows := make([][]string, 0, len(expenses)+2)
	total := 0
	for _, e := range expenses {
		total += e.Amount
		rows = append(rows, []string{
			model.FormatDate(e.Date),
			FormatDayOfWeek(e.Date.Weekday()),
			FormatMoney(e.Amount, currency),
		})
	}
	rows = append(rows, []string{"---"}, []string{"Total", "", FormatMoney(total, currency)})

	return RenderTable(Table{
		Headers: []string{"Date", "Day", "Amount"},
		Rows:    rows,
	})
}
