// Package budget computes trip budget metrics over an expense ledger.
package budget

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/wanderwallet/wanderwallet/internal/model"
)

// ErrPrecondition is returned when a Tracker is built or mutated with data
// that never went through validation, e.g. a corrupt persisted record.
var ErrPrecondition = errors.New("precondition violated")

// Tracker owns one trip and its ledger and keeps derived metrics current.
// It is not safe for concurrent use.
type Tracker struct {
	id      string
	seed    model.TripSeed
	ledger  []model.Expense
	metrics model.Metrics
	now     func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the source of "today". Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithID tags the tracker with the persisted trip identifier.
func WithID(id string) Option {
	return func(t *Tracker) { t.id = id }
}

// New builds a tracker from a validated seed and an existing ledger.
// The ledger is copied and sorted; duplicate dates, non-positive amounts and
// dates outside the trip are rejected with ErrPrecondition.
func New(seed model.TripSeed, ledger []model.Expense, opts ...Option) (*Tracker, error) {
	seed.StartDate = model.DateOf(seed.StartDate)
	seed.EndDate = model.DateOf(seed.EndDate)

	if !seed.EndDate.After(seed.StartDate) {
		return nil, fmt.Errorf("%w: end date %s is not after start date %s",
			ErrPrecondition, model.FormatDate(seed.EndDate), model.FormatDate(seed.StartDate))
	}
	if seed.TotalBudget <= 0 {
		return nil, fmt.Errorf("%w: total budget %d is not positive", ErrPrecondition, seed.TotalBudget)
	}

	t := &Tracker{seed: seed, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}

	seen := make(map[time.Time]struct{}, len(ledger))
	t.ledger = make([]model.Expense, 0, len(ledger))
	for _, e := range ledger {
		e.Date = model.DateOf(e.Date)
		if err := t.checkExpense(e); err != nil {
			return nil, err
		}
		if _, dup := seen[e.Date]; dup {
			return nil, fmt.Errorf("%w: duplicate expense date %s", ErrPrecondition, model.FormatDate(e.Date))
		}
		seen[e.Date] = struct{}{}
		t.ledger = append(t.ledger, e)
	}
	t.sortLedger()
	t.Recompute()

	return t, nil
}

func (t *Tracker) checkExpense(e model.Expense) error {
	if e.Amount <= 0 {
		return fmt.Errorf("%w: expense amount %d on %s is not positive",
			ErrPrecondition, e.Amount, model.FormatDate(e.Date))
	}
	if e.Date.Before(t.seed.StartDate) || e.Date.After(t.seed.EndDate) {
		return fmt.Errorf("%w: expense date %s is outside the trip",
			ErrPrecondition, model.FormatDate(e.Date))
	}
	return nil
}

func (t *Tracker) sortLedger() {
	sort.Slice(t.ledger, func(i, j int) bool {
		return t.ledger[i].Date.Before(t.ledger[j].Date)
	})
}

// Today returns the tracker's current calendar date.
func (t *Tracker) Today() time.Time {
	return model.DateOf(t.now())
}

// Recompute refreshes every derived metric from the base fields and ledger.
func (t *Tracker) Recompute() {
	t.metrics = Compute(t.seed, t.ledger, t.Today())
}

// UpsertExpense sets the amount for date, replacing any amount already
// recorded for that day, and recomputes metrics. It reports whether an
// existing entry was replaced.
func (t *Tracker) UpsertExpense(date time.Time, amount int) (updated bool, err error) {
	e := model.Expense{Date: model.DateOf(date), Amount: amount}
	if err := t.checkExpense(e); err != nil {
		return false, err
	}

	if i, ok := t.index(e.Date); ok {
		t.ledger[i].Amount = amount
		updated = true
	} else {
		t.ledger = append(t.ledger, e)
	}
	t.sortLedger()
	t.Recompute()

	return updated, nil
}

// RemoveExpense drops the entry for date and recomputes metrics. It reports
// whether an entry existed.
func (t *Tracker) RemoveExpense(date time.Time) bool {
	i, ok := t.index(date)
	if !ok {
		return false
	}
	t.ledger = append(t.ledger[:i], t.ledger[i+1:]...)
	t.Recompute()
	return true
}

func (t *Tracker) index(date time.Time) (int, bool) {
	date = model.DateOf(date)
	for i, e := range t.ledger {
		if e.Date.Equal(date) {
			return i, true
		}
	}
	return 0, false
}

// Amount returns the amount recorded for date, if any.
func (t *Tracker) Amount(date time.Time) (int, bool) {
	if i, ok := t.index(date); ok {
		return t.ledger[i].Amount, true
	}
	return 0, false
}

// HasStarted reports whether today is on or after the first trip day.
func (t *Tracker) HasStarted(today time.Time) bool {
	return !model.DateOf(today).Before(t.seed.StartDate)
}

// HasEnded reports whether today is after the last trip day.
func (t *Tracker) HasEnded(today time.Time) bool {
	return model.DateOf(today).After(t.seed.EndDate)
}

// ID returns the persisted trip identifier, empty if none was set.
func (t *Tracker) ID() string { return t.id }

// Seed returns the trip's base fields.
func (t *Tracker) Seed() model.TripSeed { return t.seed }

// Metrics returns the derived metrics as of the last recompute.
func (t *Tracker) Metrics() model.Metrics { return t.metrics }

// Expenses returns a copy of the ledger in ascending date order.
func (t *Tracker) Expenses() []model.Expense {
	out := make([]model.Expense, len(t.ledger))
	copy(out, t.ledger)
	return out
}

// Summary returns a snapshot of all base and derived fields.
func (t *Tracker) Summary() model.Summary {
	return model.Summary{
		TripID:        t.id,
		Name:          t.seed.Name,
		StartDate:     t.seed.StartDate,
		EndDate:       t.seed.EndDate,
		TotalBudget:   t.seed.TotalBudget,
		Metrics:       t.metrics,
		StatusMessage: t.metrics.Status.Message(),
		ExpenseCount:  len(t.ledger),
		ComputedFor:   t.Today(),
	}
}

// Row renders the trip, including derived fields, as a raw persistence row.
func (t *Tracker) Row() model.TripRow {
	m := t.metrics
	return model.TripRow{
		TripID:          t.id,
		TripName:        t.seed.Name,
		StartDate:       model.FormatDate(t.seed.StartDate),
		EndDate:         model.FormatDate(t.seed.EndDate),
		TotalBudget:     itoa(t.seed.TotalBudget),
		Duration:        itoa(m.Duration),
		DaysLeft:        itoa(m.DaysLeft),
		TotalSpent:      itoa(m.TotalSpent),
		RemainingBudget: itoa(m.RemainingBudget),
		DailyBudget:     itoa(m.DailyBudget),
		AvgDailySpent:   itoa(m.AvgDailySpent),
		BudgetStatus:    string(m.Status),
	}
}

// ExpenseRows renders the ledger as raw persistence rows, ascending by date.
func (t *Tracker) ExpenseRows() []model.ExpenseRow {
	rows := make([]model.ExpenseRow, 0, len(t.ledger))
	for _, e := range t.ledger {
		rows = append(rows, model.ExpenseRow{Date: model.FormatDate(e.Date), Amount: itoa(e.Amount)})
	}
	return rows
}

func itoa(n int) string { return strconv.Itoa(n) }
