package model

// TripRow is the raw, string-typed trip record exchanged with persistence.
// Column order follows the stored sheet layout (see TripColumns).
type TripRow struct {
	TripID          string
	TripName        string
	StartDate       string
	EndDate         string
	TotalBudget     string
	Duration        string
	DaysLeft        string
	TotalSpent      string
	RemainingBudget string
	DailyBudget     string
	AvgDailySpent   string
	BudgetStatus    string
}

// TripColumns is the header row of the trip record.
var TripColumns = []string{
	"trip_id", "trip_name", "start_date", "end_date", "total_budget",
	"duration", "days_left", "total_spent", "remaining_budget",
	"daily_budget", "avg_daily_spent", "budget_status",
}

// Values returns the row's cells in TripColumns order.
func (r TripRow) Values() []string {
	return []string{
		r.TripID, r.TripName, r.StartDate, r.EndDate, r.TotalBudget,
		r.Duration, r.DaysLeft, r.TotalSpent, r.RemainingBudget,
		r.DailyBudget, r.AvgDailySpent, r.BudgetStatus,
	}
}

// TripRowFromValues builds a row from cells in TripColumns order. Missing
// trailing cells are left empty.
func TripRowFromValues(v []string) TripRow {
	cell := func(i int) string {
		if i < len(v) {
			return v[i]
		}
		return ""
	}
	return TripRow{
		TripID:          cell(0),
		TripName:        cell(1),
		StartDate:       cell(2),
		EndDate:         cell(3),
		TotalBudget:     cell(4),
		Duration:        cell(5),
		DaysLeft:        cell(6),
		TotalSpent:      cell(7),
		RemainingBudget: cell(8),
		DailyBudget:     cell(9),
		AvgDailySpent:   cell(10),
		BudgetStatus:    cell(11),
	}
}

// ExpenseRow is one raw ledger row: a date and an amount, both as stored text.
type ExpenseRow struct {
	Date   string
	Amount string
}

// ExpenseColumns is the header row of the expense ledger.
var ExpenseColumns = []string{"date", "amount"}
