// Package model defines domain types for wanderwallet trips and expenses.
package model

import "time"

// DateLayout is the only accepted textual date form.
const DateLayout = "2006-01-02"

// TripSeed holds the validated base fields a trip is built from.
type TripSeed struct {
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	TotalBudget int
}

// Expense is one ledger entry: the amount spent on a single calendar day.
type Expense struct {
	Date   time.Time
	Amount int
}

// DateOf truncates t to its calendar date, expressed as UTC midnight so that
// dates compare and subtract without timezone drift.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// FormatDate renders a date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
