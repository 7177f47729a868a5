package cmd

import (
	"fmt"

	"github.com/wanderwallet/wanderwallet/internal/cli"
	"github.com/wanderwallet/wanderwallet/internal/model"
	"github.com/wanderwallet/wanderwallet/internal/validate"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add DATE AMOUNT",
	Short: "Record the amount spent on a day",
	Long: "Record the amount spent on a day of the current trip. An existing amount\n" +
		"for that day is replaced.",
	Example: "  wanderwallet add 2025-08-02 85",
	Args:    cobra.ExactArgs(2),
	RunE:    runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sess, closeDB, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	t, err := requireTrip(sess)
	if err != nil {
		return err
	}
	seed := t.Seed()
	today := sess.Today()
	if t.HasEnded(today) {
		return fmt.Errorf("trip '%s' ended on %s; no more expenses can be added",
			seed.Name, model.FormatDate(seed.EndDate))
	}

	date, err := validate.ExpenseDate(args[0], seed.StartDate, seed.EndDate, today)
	if err != nil {
		return err
	}
	amount, err := validate.ExpenseAmount(args[1])
	if err != nil {
		return err
	}

	updated, err := sess.AddExpense(ctx, date, amount)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	verb := "Added new"
	if updated {
		verb = "Updated"
	}
	fmt.Fprintf(out, "%s expense for %s: %s\n\n", verb, model.FormatDate(date),
		cli.FormatMoney(amount, cfg.General.CurrencySymbol))
	fmt.Fprint(out, cli.RenderSummary(t.Summary(), cfg.General.CurrencySymbol))
	return nil
}
