// Package validate checks raw user input before it may change trip state.
//
// Every numeric and date field passes the same two gates in order: first it
// must parse (ErrFormat), then it must satisfy its semantic bounds (ErrRange).
// Rejections are returned as *Error values carrying a specific reason.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/wanderwallet/wanderwallet/internal/model"
)

// MaxTripNameLen is the longest accepted trip name, in characters.
const MaxTripNameLen = 30

var (
	// ErrFormat classifies input that cannot be parsed into the expected type.
	ErrFormat = errors.New("invalid format")
	// ErrRange classifies input that parses but violates a semantic bound.
	ErrRange = errors.New("out of range")
)

// Error is a rejected input. Reason is suitable for showing to the user.
type Error struct {
	Field  string
	Kind   error // ErrFormat or ErrRange
	Reason string
}

func (e *Error) Error() string { return e.Reason }

// Unwrap lets errors.Is match the Kind sentinel.
func (e *Error) Unwrap() error { return e.Kind }

func formatErr(field, format string, args ...any) *Error {
	return &Error{Field: field, Kind: ErrFormat, Reason: fmt.Sprintf(format, args...)}
}

func rangeErr(field, format string, args ...any) *Error {
	return &Error{Field: field, Kind: ErrRange, Reason: fmt.Sprintf(format, args...)}
}

// TripName accepts 1-30 letters, digits and spaces.
func TripName(s string) (string, error) {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > MaxTripNameLen {
		return "", rangeErr("trip_name",
			"min. 1 and not more than %d characters allowed, you provided %d", MaxTripNameLen, n)
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' {
			return "", formatErr("trip_name",
				"only letters, digits and spaces are allowed, found %q", r)
		}
	}
	return s, nil
}

// TripDates accepts exactly two dates, start then end, where end is strictly
// after today and after start. A past end date is reported before ordering.
func TripDates(raw []string, today time.Time) (start, end time.Time, err error) {
	if len(raw) != 2 {
		return time.Time{}, time.Time{}, formatErr("trip_dates",
			"exactly two dates are expected, you provided %d", len(raw))
	}
	if start, err = ParseDate(raw[0]); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = ParseDate(raw[1]); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(model.DateOf(today)) {
		return time.Time{}, time.Time{}, rangeErr("trip_dates",
			"your trip end date needs to be in the future")
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, rangeErr("trip_dates",
			"your start date needs to be at least one day before your end date")
	}
	return start, end, nil
}

// SplitDates splits "start,end" input into trimmed parts.
func SplitDates(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// BudgetAmount accepts a positive whole number.
func BudgetAmount(s string) (int, error) {
	return positiveInt("budget", s)
}

// ExpenseAmount accepts a positive whole number.
func ExpenseAmount(s string) (int, error) {
	return positiveInt("amount", s)
}

// ExpenseDate accepts a date within [tripStart, tripEnd] that is not after today.
func ExpenseDate(s string, tripStart, tripEnd, today time.Time) (time.Time, error) {
	d, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if d.Before(model.DateOf(tripStart)) || d.After(model.DateOf(tripEnd)) {
		return time.Time{}, rangeErr("expense_date",
			"your expense date needs to be within your travel period %s - %s",
			model.FormatDate(tripStart), model.FormatDate(tripEnd))
	}
	if d.After(model.DateOf(today)) {
		return time.Time{}, rangeErr("expense_date", "your expense date cannot be a future date")
	}
	return d, nil
}

// YesNo accepts "yes" or "no" in any letter case.
func YesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, formatErr("yes_no", "'yes' or 'no' expected, you provided '%s'", strings.ToLower(s))
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	// time.Parse already rejects trailing text; the length check also rejects
	// single-digit months and days.
	if len(s) != len(model.DateLayout) {
		return time.Time{}, formatErr("date", "'%s'. Dates must be YYYY-MM-DD", s)
	}
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, formatErr("date", "'%s'. Dates must be YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseInt parses a whole number, tolerating surrounding whitespace.
func ParseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, formatErr(field, "your %s is not a whole number", field)
	}
	return n, nil
}

func positiveInt(field, s string) (int, error) {
	n, err := ParseInt(field, s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, rangeErr(field, "your %s must be greater than zero, you provided %d", field, n)
	}
	return n, nil
}

// Func adapts a parsing validator into a plain error check, the shape
// form libraries expect.
func Func[T any](fn func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := fn(s)
		return err
	}
}
