package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wanderwallet/wanderwallet/internal/config"
)

// isolate points XDG dirs at a temp dir, clears overrides and runs the test
// from an empty working directory so no stray .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{"DB_PATH", "CURRENCY_SYMBOL", "ACCESSIBLE", "THEME", "LOG_LEVEL"} {
		t.Setenv(config.EnvPrefix+k, "")
		require.NoError(t, os.Unsetenv(config.EnvPrefix+k))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// TestLoad_defaults verifies that a missing config file yields defaults.
func TestLoad_defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "€", cfg.General.CurrencySymbol)
	require.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
	require.Equal(t, "warn", cfg.Log.Level)
	require.False(t, config.Exists())
	require.Equal(t, filepath.Join(dir, "data", "wanderwallet", "wanderwallet.db"), cfg.DBPath())
}

// TestSaveLoad verifies that a saved config is read back.
func TestSaveLoad(t *testing.T) {
	isolate(t)

	cfg := config.DefaultConfig()
	cfg.General.CurrencySymbol = "CHF"
	cfg.General.DBPath = "/tmp/trips.db"
	cfg.Appearance.Theme = "tokyo-night"
	require.NoError(t, config.Save(cfg))
	require.True(t, config.Exists())

	got, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, cfg, got)
	require.Equal(t, "/tmp/trips.db", got.DBPath())
}

// TestLoad_envOverrides verifies that environment variables beat the file.
func TestLoad_envOverrides(t *testing.T) {
	isolate(t)
	require.NoError(t, config.Save(config.DefaultConfig()))

	t.Setenv("WANDERWALLET_THEME", "terminal")
	t.Setenv("WANDERWALLET_ACCESSIBLE", "true")
	t.Setenv("WANDERWALLET_LOG_LEVEL", "debug")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "terminal", cfg.Appearance.Theme)
	require.True(t, cfg.General.Accessible)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "€", cfg.General.CurrencySymbol)
}

// TestLoad_dotEnv verifies that a .env file in the working directory is applied.
func TestLoad_dotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WANDERWALLET_CURRENCY_SYMBOL=GBP\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("WANDERWALLET_CURRENCY_SYMBOL") })

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "GBP", cfg.General.CurrencySymbol)
}

// TestLoad_badFile verifies that a malformed config file is reported.
func TestLoad_badFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(config.Dir(), 0o755))
	require.NoError(t, os.WriteFile(config.Path(), []byte("[general\n"), 0o600))

	_, err := config.Load()

	require.ErrorContains(t, err, "parsing config")
}
