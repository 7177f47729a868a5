package cmd

import (
	"fmt"

	"github.com/wanderwallet/wanderwallet/internal/wizard"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the current trip and its expenses",
	Long: "Delete the current trip and its expenses. Works on the raw tables, so it\n" +
		"also clears a trip whose stored data can no longer be read.",
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	row, ok, err := st.LoadTripRecord(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No trip to reset.")
		return nil
	}

	if !flagResetYes {
		yes, err := newFlow(nil, out).AskYesNo(wizard.Question{
			Title: fmt.Sprintf("Delete trip '%s' and all its expenses?", row.TripName),
		})
		if err != nil {
			return err
		}
		if !yes {
			fmt.Fprintln(out, "Okay, nothing was deleted.")
			return nil
		}
	}

	if err := st.ClearTripRecord(ctx); err != nil {
		return err
	}
	if err := st.ClearExpenseLedger(ctx); err != nil {
		return err
	}
	log.WithField("trip_id", row.TripID).Info("trip reset")
	fmt.Fprintf(out, "Deleted trip '%s'.\n", row.TripName)
	return nil
}
