package cmd

import (
	"fmt"

	"github.com/wanderwallet/wanderwallet/internal/config"
	"github.com/wanderwallet/wanderwallet/internal/prompt"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure currency, theme and storage",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to WanderWallet!")
	fmt.Fprintln(out)

	updated := cfg
	if err := (prompt.Huh{Accessible: cfg.General.Accessible}).Settings(&updated); err != nil {
		return err
	}

	if err := config.Save(updated); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cfg = updated

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.Path())
	fmt.Fprintln(out, "  Run `wanderwallet setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}
