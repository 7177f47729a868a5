package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderwallet/wanderwallet/internal/budget"
	"github.com/wanderwallet/wanderwallet/internal/model"
	"github.com/wanderwallet/wanderwallet/internal/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
	theme.SetActive("flexoki-dark")
}

func day(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleTracker(t *testing.T, today string, ledger ...model.Expense) *budget.Tracker {
	t.Helper()
	tr, err := budget.New(model.TripSeed{
		Name:        "Italy",
		StartDate:   day("2025-08-01"),
		EndDate:     day("2025-08-10"),
		TotalBudget: 1000,
	}, ledger, budget.WithClock(func() time.Time { return day(today) }))
	require.NoError(t, err)
	return tr
}

func TestDailySpend(t *testing.T) {
	tr := sampleTracker(t, "2025-08-04",
		model.Expense{Date: day("2025-08-01"), Amount: 80},
		model.Expense{Date: day("2025-08-03"), Amount: 150},
	)

	assert.Equal(t, []int{80, 0, 150, 0}, DailySpend(tr.Summary(), tr.Expenses()))
}

func TestDailySpend_BeforeStartAndAfterEnd(t *testing.T) {
	before := sampleTracker(t, "2025-07-20")
	assert.Nil(t, DailySpend(before.Summary(), before.Expenses()))

	after := sampleTracker(t, "2025-09-01")
	assert.Len(t, DailySpend(after.Summary(), after.Expenses()), 10)
}

func TestDashboard_View(t *testing.T) {
	tr := sampleTracker(t, "2025-08-03",
		model.Expense{Date: day("2025-08-01"), Amount: 200},
		model.Expense{Date: day("2025-08-02"), Amount: 250},
	)
	d := NewDashboard(tr.Summary(), tr.Expenses(), "€")

	m, cmd := d.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "Italy")
	assert.Contains(t, view, "2025-08-01 - 2025-08-10 (10 days)")
	assert.Contains(t, view, "450 €")
	assert.Contains(t, view, "550 €")
	assert.Contains(t, view, "Over budget, try to slow down spending!")
	assert.Contains(t, view, "2025-08-02")
	assert.Contains(t, view, "as of 2025-08-03")
}

func TestDashboard_EmptyLedger(t *testing.T) {
	tr := sampleTracker(t, "2025-07-20")
	view := NewDashboard(tr.Summary(), tr.Expenses(), "€").View()
	assert.Contains(t, view, "No expenses tracked yet.")
}

func TestDashboard_QuitKeys(t *testing.T) {
	tr := sampleTracker(t, "2025-08-03")
	d := NewDashboard(tr.Summary(), tr.Expenses(), "€")

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := d.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd(), key.String())
	}
}

func TestLedgerHeight(t *testing.T) {
	assert.Equal(t, 2, ledgerHeight(0, 0))
	assert.Equal(t, 6, ledgerHeight(5, 0))
	assert.Equal(t, 3, ledgerHeight(50, 10))
	assert.Equal(t, 22, ledgerHeight(50, 40))
}
