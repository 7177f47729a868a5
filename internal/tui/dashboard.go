// Package tui provides the read-only trip dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/wanderwallet/wanderwallet/internal/cli"
	"github.com/wanderwallet/wanderwallet/internal/model"
	"github.com/wanderwallet/wanderwallet/internal/tui/components"
	"github.com/wanderwallet/wanderwallet/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 80
	minWidth     = 40
)

// Dashboard shows a trip's budget metrics and its expense ledger.
type Dashboard struct {
	summary  model.Summary
	expenses []model.Expense
	currency string

	ledger table.Model
	width  int
	height int
}

var _ tea.Model = Dashboard{}

// NewDashboard builds a dashboard for a computed summary and its ledger.
func NewDashboard(s model.Summary, expenses []model.Expense, currency string) Dashboard {
	d := Dashboard{
		summary:  s,
		expenses: expenses,
		currency: currency,
		width:    defaultWidth,
	}
	d.ledger = d.newLedgerTable()
	return d
}

func (d Dashboard) newLedgerTable() table.Model {
	rows := make([]table.Row, 0, len(d.expenses))
	for _, e := range d.expenses {
		rows = append(rows, table.Row{
			model.FormatDate(e.Date),
			cli.FormatDayOfWeek(e.Date.Weekday()),
			cli.FormatMoney(e.Amount, d.currency),
		})
	}

	t := theme.Active
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(t.Accent).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.Border).
		Bold(false)

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Day", Width: 5},
			{Title: "Amount", Width: 14},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(ledgerHeight(len(rows), 0)),
		table.WithStyles(styles),
	)
}

// ledgerHeight fits the table to its rows, capped by the space left in the
// window when the window height is known.
func ledgerHeight(rows, windowHeight int) int {
	h := rows + 1
	if h < 2 {
		h = 2
	}
	if windowHeight > 0 {
		limit := windowHeight - 18
		if limit < 3 {
			limit = 3
		}
		if h > limit {
			h = limit
		}
	}
	return h
}

// Init implements tea.Model.
func (d Dashboard) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		d.ledger.SetHeight(ledgerHeight(len(d.expenses), d.height))
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return d, tea.Quit
		}
	}

	var cmd tea.Cmd
	d.ledger, cmd = d.ledger.Update(msg)
	return d, cmd
}

// View implements tea.Model.
func (d Dashboard) View() string {
	t := theme.Active
	s := d.summary
	w := d.width
	if w < minWidth {
		w = minWidth
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("WanderWallet") + mutedStyle.Render("  "+s.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(cli.FormatDateRange(s.StartDate, s.EndDate, s.Duration)))
	b.WriteString("\n\n")

	remaining := components.Metric{
		Label: "Remaining",
		Value: cli.FormatMoney(s.RemainingBudget, d.currency),
	}
	if s.RemainingBudget < 0 {
		remaining.Color = t.Red
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Budget", Value: cli.FormatMoney(s.TotalBudget, d.currency)},
		{Label: "Spent", Value: cli.FormatMoney(s.TotalSpent, d.currency),
			Note: fmt.Sprintf("%d expenses", s.ExpenseCount)},
		remaining,
		{Label: "Days left", Value: fmt.Sprintf("%d", s.DaysLeft),
			Note: fmt.Sprintf("of %d", s.Duration)},
	}, w))
	b.WriteString("\n")

	barW := components.CardInnerWidth(w) - 14
	b.WriteString(components.UsageBar("Used", s.BudgetUsed(), 8, barW))
	b.WriteString("\n\n")

	daily := fmt.Sprintf("Daily budget %s, average %s",
		cli.FormatMoney(s.DailyBudget, d.currency),
		cli.FormatMoney(s.AvgDailySpent, d.currency))
	body := cli.StatusStyle(s.Status).Render(s.StatusMessage) + "\n" + mutedStyle.Render(daily)
	if line := components.SpendLine(DailySpend(s, d.expenses), s.DailyBudget); line != "" {
		body += "\n" + line
	}
	b.WriteString(components.ContentCard("Status", body, w))
	b.WriteString("\n")

	if len(d.expenses) == 0 {
		b.WriteString(components.ContentCard("Expenses", mutedStyle.Render("No expenses tracked yet."), w))
	} else {
		b.WriteString(components.ContentCard("Expenses", d.ledger.View(), w))
	}
	b.WriteString("\n")

	b.WriteString(components.RenderStatusBar(w, " [↑/↓] scroll  [q]uit",
		"as of "+model.FormatDate(s.ComputedFor)+" "))
	return b.String()
}

// DailySpend returns the amount spent on each trip day from the start date
// through the earlier of the end date and the computation date. Days with no
// expense count as zero.
func DailySpend(s model.Summary, expenses []model.Expense) []int {
	last := s.EndDate
	if s.ComputedFor.Before(last) {
		last = s.ComputedFor
	}
	if last.Before(s.StartDate) {
		return nil
	}

	byDay := make(map[string]int, len(expenses))
	for _, e := range expenses {
		byDay[model.FormatDate(e.Date)] = e.Amount
	}

	n := model.DaysBetween(s.StartDate, last) + 1
	out := make([]int, n)
	for i := range out {
		out[i] = byDay[model.FormatDate(s.StartDate.AddDate(0, 0, i))]
	}
	return out
}
