// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/wanderwallet/wanderwallet/internal/model"
)

// FormatMoney formats a whole-unit amount with thousands separators and the
// currency symbol, e.g. 1234 -> "1,234 €".
func FormatMoney(amount int, symbol string) string {
	s := humanize.Comma(int64(amount))
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// FormatDays formats a day count, e.g. 1 -> "1 day", 7 -> "7 days".
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatDateRange formats a trip's dates with its inclusive duration.
// e.g. "2025-08-01 - 2025-08-10 (10 days)"
func FormatDateRange(start, end time.Time, duration int) string {
	return fmt.Sprintf("%s - %s (%s)", model.FormatDate(start), model.FormatDate(end), FormatDays(duration))
}

// FormatDayOfWeek returns a 3-letter day abbreviation.
func FormatDayOfWeek(d time.Weekday) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if d >= 0 && int(d) < len(days) {
		return days[d]
	}
	return "???"
}
