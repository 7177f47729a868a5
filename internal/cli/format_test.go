package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount int
		symbol string
		want   string
	}{
		{0, "€", "0 €"},
		{90, "€", "90 €"},
		{2500, "€", "2,500 €"},
		{1234567, "CHF", "1,234,567 CHF"},
		{-100, "€", "-100 €"},
		{42, "", "42"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.amount, tt.symbol); got != tt.want {
			t.Errorf("FormatMoney(%d, %q) = %q, want %q", tt.amount, tt.symbol, got, tt.want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1 day" {
		t.Errorf("FormatDays(1) = %q, want %q", got, "1 day")
	}
	if got := FormatDays(0); got != "0 days" {
		t.Errorf("FormatDays(0) = %q, want %q", got, "0 days")
	}
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	want := "2025-08-01 - 2025-08-10 (10 days)"
	if got := FormatDateRange(start, end, 10); got != want {
		t.Errorf("FormatDateRange = %q, want %q", got, want)
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(time.Friday); got != "Fri" {
		t.Errorf("FormatDayOfWeek(Friday) = %q, want Fri", got)
	}
	if got := FormatDayOfWeek(time.Weekday(9)); got != "???" {
		t.Errorf("FormatDayOfWeek(9) = %q, want ???", got)
	}
}
