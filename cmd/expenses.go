package cmd

import (
	"fmt"

	"github.com/wanderwallet/wanderwallet/internal/cli"

	"github.com/spf13/cobra"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List the expenses of the current trip",
	Args:  cobra.NoArgs,
	RunE:  runExpenses,
}

func init() {
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(cmd *cobra.Command, _ []string) error {
	sess, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	t, err := requireTrip(sess)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("EXPENSES  "+t.Seed().Name))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderExpenses(t.Expenses(), cfg.General.CurrencySymbol))
	return nil
}
