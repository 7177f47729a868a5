package validate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestTripName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "Italy Summer 2025", nil},
		{"single char", "x", nil},
		{"exactly thirty", strings.Repeat("a", 30), nil},
		{"unicode letters", "Málaga Ostern", nil},
		{"empty", "", ErrRange},
		{"too long", strings.Repeat("a", 31), ErrRange},
		{"punctuation", "Rome!", ErrFormat},
		{"dash", "Road-trip", ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TripName(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTripName_CountsCharactersNotBytes(t *testing.T) {
	_, err := TripName(strings.Repeat("ü", 30))
	assert.NoError(t, err)
}

func TestTripDates(t *testing.T) {
	today := mustDate(t, "2025-07-15")

	tests := []struct {
		name       string
		input      []string
		wantErr    error
		wantReason string
	}{
		{"bad month", []string{"2025-13-01", "2025-08-15"}, ErrFormat, "YYYY-MM-DD"},
		{"end before start", []string{"2025-08-15", "2025-08-01"}, ErrRange, "at least one day before"},
		{"end in past", []string{"2025-08-01", "2020-01-01"}, ErrRange, "in the future"},
		{"end equals start", []string{"2025-08-01", "2025-08-01"}, ErrRange, "at least one day before"},
		{"end is today", []string{"2025-07-10", "2025-07-15"}, ErrRange, "in the future"},
		{"one date", []string{"2025-08-01"}, ErrFormat, "exactly two dates"},
		{"three dates", []string{"2025-08-01", "2025-08-02", "2025-08-03"}, ErrFormat, "exactly two dates"},
		{"trailing chars", []string{"2025-08-01x", "2025-08-15"}, ErrFormat, "YYYY-MM-DD"},
		{"extra digit", []string{"2025-08-011", "2025-08-15"}, ErrFormat, "YYYY-MM-DD"},
		{"short month", []string{"2025-8-01", "2025-08-15"}, ErrFormat, "YYYY-MM-DD"},
		{"slashes", []string{"2025/08/01", "2025/08/15"}, ErrFormat, "YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := TripDates(tt.input, today)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantReason)
		})
	}
}

func TestTripDates_Valid(t *testing.T) {
	today := mustDate(t, "2025-07-15")

	start, end, err := TripDates([]string{"2025-08-01", "2025-08-15"}, today)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2025-08-01"), start)
	assert.Equal(t, mustDate(t, "2025-08-15"), end)

	// A trip that already started is fine as long as it ends in the future.
	_, _, err = TripDates([]string{"2025-07-01", "2025-07-16"}, today)
	assert.NoError(t, err)
}

func TestTripDates_FormatReportedBeforeRange(t *testing.T) {
	today := mustDate(t, "2025-07-15")

	// Second date is malformed and first is after it would be; format wins.
	_, _, err := TripDates([]string{"2025-08-15", "2025-08-0"}, today)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestSplitDates(t *testing.T) {
	assert.Equal(t, []string{"2025-08-01", "2025-08-15"}, SplitDates("2025-08-01, 2025-08-15"))
	assert.Equal(t, []string{"2025-08-01"}, SplitDates(" 2025-08-01 "))
}

func TestAmounts(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{"12", 12, nil},
		{" 2500 ", 2500, nil},
		{"-5", 0, ErrRange},
		{"0", 0, ErrRange},
		{"12.5", 0, ErrFormat},
		{"twelve", 0, ErrFormat},
		{"", 0, ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			for name, fn := range map[string]func(string) (int, error){
				"budget":  BudgetAmount,
				"expense": ExpenseAmount,
			} {
				got, err := fn(tt.input)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr, name)
					continue
				}
				require.NoError(t, err, name)
				assert.Equal(t, tt.want, got, name)
			}
		})
	}
}

func TestExpenseDate(t *testing.T) {
	start := mustDate(t, "2025-08-01")
	end := mustDate(t, "2025-08-10")
	today := mustDate(t, "2025-08-05")

	tests := []struct {
		name       string
		input      string
		wantErr    error
		wantReason string
	}{
		{"first day", "2025-08-01", nil, ""},
		{"today", "2025-08-05", nil, ""},
		{"malformed", "01.08.2025", ErrFormat, "YYYY-MM-DD"},
		{"before trip", "2025-07-31", ErrRange, "within your travel period 2025-08-01 - 2025-08-10"},
		{"after trip", "2025-08-11", ErrRange, "within your travel period"},
		{"future within trip", "2025-08-06", ErrRange, "cannot be a future date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpenseDate(tt.input, start, end, today)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, mustDate(t, tt.input), got)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantReason)
		})
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"No", false, false},
		{"y", false, true},
		{"", false, true},
		{"yes please", false, true},
	}

	for _, tt := range tests {
		got, err := YesNo(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrFormat, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestError_ExposesFieldAndReason(t *testing.T) {
	_, err := ExpenseAmount("-5")

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "amount", verr.Field)
	assert.Equal(t, "your amount must be greater than zero, you provided -5", verr.Reason)
}

func TestFunc(t *testing.T) {
	check := Func(ExpenseAmount)
	assert.NoError(t, check("3"))
	assert.ErrorIs(t, check("3.5"), ErrFormat)
}
