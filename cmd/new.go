package cmd

import (
	"fmt"

	"github.com/wanderwallet/wanderwallet/internal/wizard"

	"github.com/spf13/cobra"
)

var (
	flagNewName   string
	flagNewStart  string
	flagNewEnd    string
	flagNewBudget string
	flagNewForce  bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Set up a new trip",
	Long:  "Set up a new trip. Values not given as flags are asked for interactively.",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagNewName, "name", "", "Trip name (1-30 letters, digits, spaces)")
	newCmd.Flags().StringVar(&flagNewStart, "start", "", "Start date (YYYY-MM-DD)")
	newCmd.Flags().StringVar(&flagNewEnd, "end", "", "End date (YYYY-MM-DD), must be in the future")
	newCmd.Flags().StringVar(&flagNewBudget, "budget", "", "Total budget in whole units")
	newCmd.Flags().BoolVar(&flagNewForce, "force", false, "Replace the current trip")
	newCmd.MarkFlagsRequiredTogether("start", "end")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	sess, closeDB, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	old := sess.Tracker()
	if old != nil && !flagNewForce {
		return fmt.Errorf("trip '%s' already exists; use --force to replace it", old.Seed().Name)
	}

	answers := wizard.TripAnswers{Name: flagNewName, Budget: flagNewBudget}
	if flagNewStart != "" {
		answers.Dates = flagNewStart + "," + flagNewEnd
	}

	// The old trip stays until the replacement is known to be valid.
	flow := newFlow(sess, cmd.OutOrStdout())
	seed, err := flow.CollectTrip(answers)
	if err != nil {
		return err
	}

	if old != nil {
		if err := sess.Discard(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted the previous trip '%s'.\n", old.Seed().Name)
	}
	return flow.StartTrip(ctx, seed)
}
