package cmd

import (
	"fmt"

	"github.com/wanderwallet/wanderwallet/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"status"},
	Short:   "Show the budget summary of the current trip",
	Args:    cobra.NoArgs,
	RunE:    runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	sess, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	out := cmd.OutOrStdout()
	t := sess.Tracker()
	if t == nil {
		fmt.Fprintln(out, "\n  No trip found.")
		fmt.Fprintln(out, "  Run `wanderwallet new` to set one up.")
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("TRIP SUMMARY  "+t.Seed().Name))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderSummary(t.Summary(), cfg.General.CurrencySymbol))
	return nil
}
