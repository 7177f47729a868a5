package cmd

import (
	"fmt"

	"github.com/wanderwallet/wanderwallet/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintf(out, "  Environment prefix: %s\n", config.EnvPrefix)
	fmt.Fprintln(out)

	dbPath := cfg.DBPath()
	if flagDB != "" {
		dbPath = flagDB + " (from --db)"
	}

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Database:        %s\n", dbPath)
	fmt.Fprintf(out, "    Currency symbol: %s\n", cfg.General.CurrencySymbol)
	fmt.Fprintf(out, "    Accessible:      %v\n", cfg.General.Accessible)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	fmt.Fprintf(out, "    Level: %s\n", cfg.Log.Level)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `wanderwallet setup` to change these.")
	return nil
}
