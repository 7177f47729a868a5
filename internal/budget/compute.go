package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wanderwallet/wanderwallet/internal/model"
)

// Compute derives all metrics for a trip as of today. Divisions round to the
// nearest integer with ties to even.
func Compute(seed model.TripSeed, ledger []model.Expense, today time.Time) model.Metrics {
	var m model.Metrics

	start := model.DateOf(seed.StartDate)
	end := model.DateOf(seed.EndDate)
	today = model.DateOf(today)

	// Both endpoints count as trip days.
	m.Duration = model.DaysBetween(start, end) + 1
	m.DailyBudget = roundDiv(seed.TotalBudget, m.Duration)

	for _, e := range ledger {
		m.TotalSpent += e.Amount
	}
	m.RemainingBudget = seed.TotalBudget - m.TotalSpent

	m.DaysLeft = DaysLeft(start, end, today)
	m.DaysSpent = m.Duration - m.DaysLeft
	if m.DaysSpent != 0 {
		m.AvgDailySpent = roundDiv(m.TotalSpent, m.DaysSpent)
	}

	switch {
	case m.AvgDailySpent > m.DailyBudget:
		m.Status = model.StatusOver
	case m.AvgDailySpent < m.DailyBudget:
		m.Status = model.StatusUnder
	default:
		m.Status = model.StatusOn
	}

	return m
}

// DaysLeft returns the days remaining in the trip as of today.
// Before or on the start date the full duration remains; after the end date
// none do. On the end date itself the result is 0, so that day counts as
// spent. Treating the end date as outside the trip would instead report the
// full duration there and drop averages back to zero on the last day.
func DaysLeft(start, end, today time.Time) int {
	switch {
	case today.After(start) && !today.After(end):
		return model.DaysBetween(today, end)
	case today.After(end):
		return 0
	default:
		return model.DaysBetween(start, end) + 1
	}
}

func roundDiv(num, den int) int {
	q := decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den)))
	return int(q.RoundBank(0).IntPart())
}
