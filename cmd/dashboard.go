package cmd

import (
	"fmt"

	"github.com/wanderwallet/wanderwallet/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"tui"},
	Short:   "Open the interactive trip dashboard",
	Args:    cobra.NoArgs,
	RunE:    runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	sess, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	t, err := requireTrip(sess)
	if err != nil {
		return err
	}

	// Without this, lipgloss may pick the Ascii profile and drop all colors.
	lipgloss.SetColorProfile(termenv.TrueColor)

	d := tui.NewDashboard(t.Summary(), t.Expenses(), cfg.General.CurrencySymbol)
	p := tea.NewProgram(d, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
