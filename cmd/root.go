// Package cmd implements the wanderwallet CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/wanderwallet/wanderwallet/internal/budget"
	"github.com/wanderwallet/wanderwallet/internal/config"
	"github.com/wanderwallet/wanderwallet/internal/prompt"
	"github.com/wanderwallet/wanderwallet/internal/session"
	"github.com/wanderwallet/wanderwallet/internal/store"
	"github.com/wanderwallet/wanderwallet/internal/tui/theme"
	"github.com/wanderwallet/wanderwallet/internal/validate"
	"github.com/wanderwallet/wanderwallet/internal/wizard"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDB      string
	flagQuiet   bool
	flagVerbose bool
	flagToday   string
)

var (
	cfg   = config.DefaultConfig()
	log   = logrus.New()
	clock = time.Now
)

var rootCmd = &cobra.Command{
	Use:               "wanderwallet",
	Short:             "Travel budget tracker",
	Long:              "Track daily travel expenses against a trip budget and see how you are doing.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	RunE:              runWizard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, wizard.ErrAborted) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if errors.Is(err, budget.ErrPrecondition) {
		fmt.Fprintln(os.Stderr, "  The stored trip looks damaged. Run `wanderwallet reset` to start over.")
	}
	stop()
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Pretend today is this date (YYYY-MM-DD)")
	_ = rootCmd.PersistentFlags().MarkHidden("today")
}

// prepare loads config, sets up logging and the theme, and fixes the clock.
func prepare(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
	}
	if flagVerbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	theme.SetActive(cfg.Appearance.Theme)

	if flagToday != "" {
		today, err := validate.ParseDate(flagToday)
		if err != nil {
			return fmt.Errorf("--today: %w", err)
		}
		clock = func() time.Time { return today }
	}
	return nil
}

// openSession opens the configured database and loads the stored trip.
// The returned func closes the database.
func openSession(ctx context.Context) (*session.Session, func(), error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.Open(ctx, st, session.WithClock(clock), session.WithLogger(log))
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return sess, func() { _ = st.Close() }, nil
}

// openStore opens the database named by --db or the config.
func openStore() (*store.Store, error) {
	path := cfg.DBPath()
	if flagDB != "" {
		path = flagDB
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading trip data from %s\n", path)
	}
	return store.Open(path, log)
}

func newFlow(sess *session.Session, out io.Writer) *wizard.Flow {
	return &wizard.Flow{
		Session:  sess,
		Prompt:   prompt.Huh{Accessible: cfg.General.Accessible},
		Out:      out,
		Currency: cfg.General.CurrencySymbol,
	}
}

func runWizard(cmd *cobra.Command, _ []string) error {
	sess, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	return newFlow(sess, cmd.OutOrStdout()).Run(cmd.Context())
}

// requireTrip returns the active trip or an error pointing at how to create one.
func requireTrip(sess *session.Session) (*budget.Tracker, error) {
	t := sess.Tracker()
	if t == nil {
		return nil, fmt.Errorf("%w; run `wanderwallet new` to set one up", session.ErrNoTrip)
	}
	return t, nil
}
