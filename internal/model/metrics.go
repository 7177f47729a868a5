package model

import "time"

// BudgetStatus classifies spending pace against the daily budget.
type BudgetStatus string

// Budget status values.
const (
	StatusOver  BudgetStatus = "over"
	StatusUnder BudgetStatus = "under"
	StatusOn    BudgetStatus = "on"
)

// Message returns the human-readable explanation shown next to the status.
func (s BudgetStatus) Message() string {
	switch s {
	case StatusOver:
		return "Over budget, try to slow down spending!"
	case StatusUnder:
		return "Under budget, great job managing your expenses!"
	default:
		return "On track, keep spending balanced."
	}
}

// Metrics holds the values derived from a trip and its ledger.
// They are recomputed after every mutation and never edited directly.
type Metrics struct {
	Duration        int
	DailyBudget     int
	TotalSpent      int
	RemainingBudget int
	DaysLeft        int
	DaysSpent       int
	AvgDailySpent   int
	Status          BudgetStatus
}

// Summary is a read-only snapshot of a trip's base and derived fields.
type Summary struct {
	TripID      string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	TotalBudget int
	Metrics

	StatusMessage string
	ExpenseCount  int
	ComputedFor   time.Time // the "today" the metrics were computed against
}

// BudgetUsed returns the fraction of the total budget spent, clamped to [0, 1].
func (s Summary) BudgetUsed() float64 {
	if s.TotalBudget <= 0 {
		return 0
	}
	pct := float64(s.TotalSpent) / float64(s.TotalBudget)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
