// Package store provides SQLite-backed persistence for the trip record and
// its expense ledger. Values are kept as text; parsing is the caller's job.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wanderwallet/wanderwallet/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store reads and replaces the persisted trip and ledger.
type Store struct {
	db  *sql.DB
	log logrus.FieldLogger
}

// Open opens or creates the database at the given path.
func Open(dbPath string, log logrus.FieldLogger) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One local user, one writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithField("path", dbPath).Debug("store opened")

	return &Store{db: db, log: log}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

var (
	tripSelectSQL = "SELECT " + strings.Join(model.TripColumns, ", ") + " FROM trip_info LIMIT 1"
	tripInsertSQL = insertSQL("trip_info", model.TripColumns)

	expenseSelectSQL = "SELECT " + strings.Join(model.ExpenseColumns, ", ") + " FROM expenses ORDER BY date"
	expenseInsertSQL = insertSQL("expenses", model.ExpenseColumns)
)

func insertSQL(table string, columns []string) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + marks + ")"
}

// LoadTripRecord returns the stored trip row. ok is false when no trip exists.
func (s *Store) LoadTripRecord(ctx context.Context) (row model.TripRow, ok bool, err error) {
	// Derived columns may be NULL in rows written by other tools.
	cells := make([]sql.NullString, len(model.TripColumns))
	dest := make([]any, len(cells))
	for i := range cells {
		dest[i] = &cells[i]
	}

	err = s.db.QueryRowContext(ctx, tripSelectSQL).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TripRow{}, false, nil
	}
	if err != nil {
		return model.TripRow{}, false, fmt.Errorf("reading trip_info: %w", err)
	}

	values := make([]string, len(cells))
	for i, c := range cells {
		values[i] = c.String
	}
	return model.TripRowFromValues(values), true, nil
}

// LoadExpenseLedger returns all expense rows in ascending date order.
func (s *Store) LoadExpenseLedger(ctx context.Context) ([]model.ExpenseRow, error) {
	rows, err := s.db.QueryContext(ctx, expenseSelectSQL)
	if err != nil {
		return nil, fmt.Errorf("reading expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.ExpenseRow
	for rows.Next() {
		var r model.ExpenseRow
		if err := rows.Scan(&r.Date, &r.Amount); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveTripRecord replaces the stored trip with row.
func (s *Store) SaveTripRecord(ctx context.Context, row model.TripRow) error {
	values := row.Values()
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	return s.replace(ctx, "trip_info", func(tx *sql.Tx) (int, error) {
		_, err := tx.ExecContext(ctx, tripInsertSQL, args...)
		return 1, err
	})
}

// SaveExpenseLedger replaces the whole stored ledger with rows.
func (s *Store) SaveExpenseLedger(ctx context.Context, rows []model.ExpenseRow) error {
	return s.replace(ctx, "expenses", func(tx *sql.Tx) (int, error) {
		stmt, err := tx.PrepareContext(ctx, expenseInsertSQL)
		if err != nil {
			return 0, err
		}
		defer func() { _ = stmt.Close() }()

		for _, r := range rows {
			if _, err := stmt.ExecContext(ctx, r.Date, r.Amount); err != nil {
				return 0, fmt.Errorf("inserting expense %s: %w", r.Date, err)
			}
		}
		return len(rows), nil
	})
}

// ClearTripRecord removes the stored trip.
func (s *Store) ClearTripRecord(ctx context.Context) error {
	return s.replace(ctx, "trip_info", nil)
}

// ClearExpenseLedger removes all stored expenses.
func (s *Store) ClearExpenseLedger(ctx context.Context) error {
	return s.replace(ctx, "expenses", nil)
}

// replace empties table and, if fill is non-nil, refills it, all in one
// transaction. table is always one of the constant names above.
func (s *Store) replace(ctx context.Context, table string, fill func(*sql.Tx) (int, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", table, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil { //nolint:gosec // table is a constant
		return fmt.Errorf("clearing %s: %w", table, err)
	}

	n := 0
	if fill != nil {
		if n, err = fill(tx); err != nil {
			return fmt.Errorf("writing %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", table, err)
	}
	s.log.WithFields(logrus.Fields{"table": table, "rows": n}).Debug("table replaced")
	return nil
}
