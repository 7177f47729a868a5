// Package session ties the budget tracker to its durable store for one run.
//
// A Session is created at program start and passed explicitly to whatever
// drives it. Every mutation is applied to the tracker first and then written
// through to the store as a full replace.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wanderwallet/wanderwallet/internal/budget"
	"github.com/wanderwallet/wanderwallet/internal/model"
	"github.com/wanderwallet/wanderwallet/internal/validate"
)

// ErrNoTrip is returned by operations that need an active trip.
var ErrNoTrip = errors.New("no active trip")

// Store is the persistence collaborator. Failures are returned unchanged
// apart from added context; retry policy belongs to the caller.
type Store interface {
	LoadTripRecord(ctx context.Context) (model.TripRow, bool, error)
	LoadExpenseLedger(ctx context.Context) ([]model.ExpenseRow, error)
	SaveTripRecord(ctx context.Context, row model.TripRow) error
	SaveExpenseLedger(ctx context.Context, rows []model.ExpenseRow) error
	ClearTripRecord(ctx context.Context) error
	ClearExpenseLedger(ctx context.Context) error
}

// Session owns the active trip, if any, for the duration of one run.
type Session struct {
	store   Store
	tracker *budget.Tracker
	now     func() time.Time
	log     logrus.FieldLogger
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the logger for persistence diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// Open loads the stored trip and ledger. A stored trip that cannot be parsed
// or violates trip invariants yields an error wrapping budget.ErrPrecondition.
func Open(ctx context.Context, store Store, opts ...Option) (*Session, error) {
	s := &Session{store: store, now: time.Now, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	row, ok, err := store.LoadTripRecord(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading trip record: %w", err)
	}
	if !ok {
		s.log.Debug("no stored trip")
		return s, nil
	}

	rows, err := store.LoadExpenseLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading expense ledger: %w", err)
	}

	seed, err := parseTripRow(row)
	if err != nil {
		return nil, err
	}
	ledger, err := parseExpenseRows(rows)
	if err != nil {
		return nil, err
	}

	t, err := budget.New(seed, ledger, budget.WithClock(s.now), budget.WithID(row.TripID))
	if err != nil {
		return nil, fmt.Errorf("stored trip: %w", err)
	}
	s.tracker = t
	s.log.WithFields(logrus.Fields{"trip_id": row.TripID, "expenses": len(ledger)}).Debug("trip loaded")

	return s, nil
}

// HasTrip reports whether a trip is active.
func (s *Session) HasTrip() bool { return s.tracker != nil }

// Tracker returns the active trip's tracker, or nil.
func (s *Session) Tracker() *budget.Tracker { return s.tracker }

// Today returns the session's current calendar date.
func (s *Session) Today() time.Time { return model.DateOf(s.now()) }

// StartTrip creates a trip from seed and persists it with an empty ledger.
// It fails if a trip is already active; call Discard first.
func (s *Session) StartTrip(ctx context.Context, seed model.TripSeed) error {
	if s.tracker != nil {
		return errors.New("a trip is already active")
	}

	id := uuid.NewString()
	t, err := budget.New(seed, nil, budget.WithClock(s.now), budget.WithID(id))
	if err != nil {
		return err
	}

	if err := s.store.SaveTripRecord(ctx, t.Row()); err != nil {
		return fmt.Errorf("saving trip record: %w", err)
	}
	if err := s.store.SaveExpenseLedger(ctx, nil); err != nil {
		return fmt.Errorf("saving expense ledger: %w", err)
	}

	s.tracker = t
	s.log.WithFields(logrus.Fields{"trip_id": id, "name": seed.Name}).Info("trip started")
	return nil
}

// ExistingAmount returns the amount already recorded for date.
func (s *Session) ExistingAmount(date time.Time) (int, bool) {
	if s.tracker == nil {
		return 0, false
	}
	return s.tracker.Amount(date)
}

// AddExpense records amount for date, replacing any earlier amount for that
// day, then persists the refreshed trip row and the full ledger. If saving
// fails the in-memory ledger is rolled back to its previous state.
func (s *Session) AddExpense(ctx context.Context, date time.Time, amount int) (updated bool, err error) {
	if s.tracker == nil {
		return false, ErrNoTrip
	}

	prev, had := s.tracker.Amount(date)
	updated, err = s.tracker.UpsertExpense(date, amount)
	if err != nil {
		return false, err
	}
	if err := s.Save(ctx); err != nil {
		if had {
			_, _ = s.tracker.UpsertExpense(date, prev)
		} else {
			s.tracker.RemoveExpense(date)
		}
		return false, err
	}

	s.log.WithFields(logrus.Fields{
		"trip_id": s.tracker.ID(),
		"date":    model.FormatDate(date),
		"amount":  amount,
		"updated": updated,
	}).Info("expense recorded")
	return updated, nil
}

// Save recomputes derived fields and writes the trip and ledger.
func (s *Session) Save(ctx context.Context) error {
	if s.tracker == nil {
		return ErrNoTrip
	}
	s.tracker.Recompute()

	if err := s.store.SaveTripRecord(ctx, s.tracker.Row()); err != nil {
		return fmt.Errorf("saving trip record: %w", err)
	}
	if err := s.store.SaveExpenseLedger(ctx, s.tracker.ExpenseRows()); err != nil {
		return fmt.Errorf("saving expense ledger: %w", err)
	}
	return nil
}

// Discard clears the stored trip and ledger and drops the active trip.
func (s *Session) Discard(ctx context.Context) error {
	if err := s.store.ClearTripRecord(ctx); err != nil {
		return fmt.Errorf("clearing trip record: %w", err)
	}
	if err := s.store.ClearExpenseLedger(ctx); err != nil {
		return fmt.Errorf("clearing expense ledger: %w", err)
	}

	if s.tracker != nil {
		s.log.WithField("trip_id", s.tracker.ID()).Info("trip discarded")
	}
	s.tracker = nil
	return nil
}

func parseTripRow(row model.TripRow) (model.TripSeed, error) {
	var seed model.TripSeed
	var err error

	if seed.Name, err = validate.TripName(row.TripName); err != nil {
		return seed, corrupt("trip_name", err)
	}
	if seed.StartDate, err = validate.ParseDate(row.StartDate); err != nil {
		return seed, corrupt("start_date", err)
	}
	if seed.EndDate, err = validate.ParseDate(row.EndDate); err != nil {
		return seed, corrupt("end_date", err)
	}
	if seed.TotalBudget, err = validate.BudgetAmount(row.TotalBudget); err != nil {
		return seed, corrupt("total_budget", err)
	}
	return seed, nil
}

func parseExpenseRows(rows []model.ExpenseRow) ([]model.Expense, error) {
	ledger := make([]model.Expense, 0, len(rows))
	for _, r := range rows {
		d, err := validate.ParseDate(r.Date)
		if err != nil {
			return nil, corrupt("expense date", err)
		}
		amount, err := validate.ExpenseAmount(r.Amount)
		if err != nil {
			return nil, corrupt("expense amount for "+r.Date, err)
		}
		ledger = append(ledger, model.Expense{Date: d, Amount: amount})
	}
	return ledger, nil
}

func corrupt(field string, err error) error {
	return fmt.Errorf("stored %s: %w: %v", field, budget.ErrPrecondition, err)
}
