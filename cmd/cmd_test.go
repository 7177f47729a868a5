package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderwallet/wanderwallet/internal/session"
	"github.com/wanderwallet/wanderwallet/internal/validate"
)

// run executes the command tree with args against db, pinned to today.
func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--db", db, "--today", "2025-08-03", "--quiet"))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("WANDERWALLET_CURRENCY_SYMBOL", "€")
	t.Setenv("WANDERWALLET_LOG_LEVEL", "error")
	t.Cleanup(func() { flagNewForce, flagResetYes = false, false })
	return filepath.Join(dir, "trip.db")
}

func TestTripLifecycle(t *testing.T) {
	db := isolate(t)

	out, err := run(t, db, "new", "--name", "Italy", "--start", "2025-08-01", "--end", "2025-08-15", "--budget", "1500")
	require.NoError(t, err)
	assert.Contains(t, out, "Italy")

	out, err = run(t, db, "add", "2025-08-02", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Added new expense for 2025-08-02: 100 €")

	out, err = run(t, db, "add", "2025-08-02", "1200")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated expense for 2025-08-02: 1,200 €")

	out, err = run(t, db, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Expenses")
	assert.Contains(t, out, "1,200 €")
	assert.Contains(t, out, "Over budget, try to slow down spending!")

	out, err = run(t, db, "expenses")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-08-02")
	assert.Contains(t, out, "Sat")

	_, err = run(t, db, "new", "--name", "Spain", "--start", "2025-09-01", "--end", "2025-09-05", "--budget", "500")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err = run(t, db, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted trip 'Italy'.")

	out, err = run(t, db, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No trip found.")
}

func TestAddRejectsInvalidInput(t *testing.T) {
	db := isolate(t)

	_, err := run(t, db, "add", "2025-08-02", "10")
	require.ErrorIs(t, err, session.ErrNoTrip)

	_, err = run(t, db, "new", "--name", "Italy", "--start", "2025-08-01", "--end", "2025-08-15", "--budget", "1500")
	require.NoError(t, err)

	_, err = run(t, db, "add", "2025-08-02", "12.5")
	require.ErrorIs(t, err, validate.ErrFormat)

	_, err = run(t, db, "add", "2025-08-09", "10")
	require.ErrorIs(t, err, validate.ErrRange)
}

func TestNewForceReplacesTrip(t *testing.T) {
	db := isolate(t)

	_, err := run(t, db, "new", "--name", "Italy", "--start", "2025-08-01", "--end", "2025-08-15", "--budget", "1500")
	require.NoError(t, err)

	out, err := run(t, db, "new", "--force", "--name", "Spain", "--start", "2025-09-01", "--end", "2025-09-05", "--budget", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted the previous trip 'Italy'.")
	assert.Contains(t, out, "Spain")
}

func TestNewRejectsInvalidFlags(t *testing.T) {
	db := isolate(t)

	_, err := run(t, db, "new", "--name", "Italy", "--start", "2025-08-01", "--end", "2020-01-01", "--budget", "1500")
	require.ErrorIs(t, err, validate.ErrRange)

	_, err = run(t, db, "new", "--name", "It@ly", "--start", "2025-08-01", "--end", "2025-08-15", "--budget", "1500")
	require.ErrorIs(t, err, validate.ErrFormat)
}

func TestNewForceKeepsTripWhenReplacementInvalid(t *testing.T) {
	db := isolate(t)

	_, err := run(t, db, "new", "--name", "Italy", "--start", "2025-08-01", "--end", "2025-08-15", "--budget", "1500")
	require.NoError(t, err)
	_, err = run(t, db, "add", "2025-08-02", "100")
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		kind error
	}{
		{"bad budget", []string{"--name", "Spain", "--start", "2025-09-01", "--end", "2025-09-05", "--budget", "abc"}, validate.ErrFormat},
		{"bad name", []string{"--name", "Sp@in", "--start", "2025-09-01", "--end", "2025-09-05", "--budget", "500"}, validate.ErrFormat},
		{"past end", []string{"--name", "Spain", "--start", "2025-07-01", "--end", "2025-07-05", "--budget", "500"}, validate.ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, db, append([]string{"new", "--force"}, tt.args...)...)
			require.ErrorIs(t, err, tt.kind)
			assert.NotContains(t, out, "Deleted the previous trip")

			out, err = run(t, db, "summary")
			require.NoError(t, err)
			assert.Contains(t, out, "Italy")

			out, err = run(t, db, "expenses")
			require.NoError(t, err)
			assert.Contains(t, out, "2025-08-02")
		})
	}
}
