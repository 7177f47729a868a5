// Package wizard runs the interactive trip flow: set up or resume a trip,
// then record expenses day by day.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/wanderwallet/wanderwallet/internal/cli"
	"github.com/wanderwallet/wanderwallet/internal/model"
	"github.com/wanderwallet/wanderwallet/internal/session"
	"github.com/wanderwallet/wanderwallet/internal/validate"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

// Question is one free-text prompt. Validate, if set, is the acceptance check.
type Question struct {
	Title       string
	Description string
	Placeholder string
	Validate    func(string) error
}

// Prompter asks a question and returns the raw answer.
type Prompter interface {
	Input(q Question) (string, error)
}

// Flow drives one interactive run against a session.
type Flow struct {
	Session  *session.Session
	Prompt   Prompter
	Out      io.Writer
	Currency string
}

// TripAnswers holds raw answers for a new trip. Empty fields are prompted for.
type TripAnswers struct {
	Name   string
	Dates  string // "start,end"
	Budget string
}

// Run executes the full interactive flow.
func (f *Flow) Run(ctx context.Context) error {
	f.println("Welcome to WanderWallet, your personal travel expense tracker!")
	f.println()

	if f.Session.HasTrip() {
		t := f.Session.Tracker()
		f.printf("Seems like you have been working on your trip '%s' already.\n\n", t.Seed().Name)
		f.printSummary()

		if err := f.OfferExpenseList(); err != nil {
			return err
		}

		keep, err := f.AskYesNo(Question{
			Title: "Do you want to continue working on this trip?",
			Description: "If 'yes', you can add new expenses in the next step.\n" +
				"If 'no', the current trip is deleted and you can set up a new one.",
		})
		if err != nil {
			return err
		}
		if !keep {
			if err := f.Session.Discard(ctx); err != nil {
				return err
			}
			f.println("Deleted the previous trip.")
			f.println()
		}
	}

	if !f.Session.HasTrip() {
		f.println("No trip found. Let's set up a new trip.")
		f.println()
		if err := f.NewTrip(ctx, TripAnswers{}); err != nil {
			return err
		}
	}

	t := f.Session.Tracker()
	today := f.Session.Today()

	if !t.HasStarted(today) {
		f.println("Thank you for setting up your trip with WanderWallet!")
		f.println("Your trip hasn't started yet.")
		f.println("Return once your trip starts and you want to start tracking expenses!")
		return nil
	}
	if t.HasEnded(today) {
		f.println("Your trip is over, so no more expenses can be added.")
		f.println("Start a new trip next time, or run `wanderwallet reset`.")
		return f.OfferExpenseList()
	}

	f.println("Great! Your trip has already started! Let's add some expenses.")
	for {
		if err := f.AddExpense(ctx); err != nil {
			return err
		}
		f.printSummary()

		more, err := f.AskYesNo(Question{Title: "Do you want to add another expense?"})
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if err := f.OfferExpenseList(); err != nil {
		return err
	}
	f.println()
	f.println("Thank you for using WanderWallet!")
	f.println("Come back to add more expenses to your trip or set up a new one!")
	return nil
}

// NewTrip collects the trip name, dates and budget, starts the trip and
// prints its summary. Preset answers are validated instead of prompted.
func (f *Flow) NewTrip(ctx context.Context, preset TripAnswers) error {
	seed, err := f.CollectTrip(preset)
	if err != nil {
		return err
	}
	return f.StartTrip(ctx, seed)
}

// CollectTrip validates preset answers and prompts for the missing ones. It
// neither reads nor changes the stored trip.
func (f *Flow) CollectTrip(preset TripAnswers) (model.TripSeed, error) {
	today := f.Session.Today()

	name, err := answer(f, preset.Name, Question{
		Title:       "Please enter a name for your new trip (1-30 characters).",
		Placeholder: "Italy Summer 2025",
	}, validate.TripName)
	if err != nil {
		return model.TripSeed{}, err
	}

	type span struct{ start, end time.Time }
	dates, err := answer(f, preset.Dates, Question{
		Title: "When are you taking your trip?",
		Description: "Enter the start and end date separated by a comma, start date first.\n" +
			"Format YYYY-MM-DD. The end date must be in the future.",
		Placeholder: "2025-08-01,2025-08-15",
	}, func(s string) (span, error) {
		start, end, err := validate.TripDates(validate.SplitDates(s), today)
		return span{start, end}, err
	})
	if err != nil {
		return model.TripSeed{}, err
	}

	total, err := answer(f, preset.Budget, Question{
		Title:       "What is the total budget for your trip?",
		Description: "Whole numbers only, no cents or decimal points.",
		Placeholder: "2500",
	}, validate.BudgetAmount)
	if err != nil {
		return model.TripSeed{}, err
	}

	return model.TripSeed{Name: name, StartDate: dates.start, EndDate: dates.end, TotalBudget: total}, nil
}

// StartTrip starts a trip from seed and prints its summary.
func (f *Flow) StartTrip(ctx context.Context, seed model.TripSeed) error {
	if err := f.Session.StartTrip(ctx, seed); err != nil {
		return err
	}
	f.printSummary()
	return nil
}

// AddExpense asks for one expense date and amount and records it. If the
// date already has an amount the user confirms the replacement first.
func (f *Flow) AddExpense(ctx context.Context) error {
	t := f.Session.Tracker()
	if t == nil {
		return session.ErrNoTrip
	}
	seed := t.Seed()
	today := f.Session.Today()

	date, err := answer(f, "", Question{
		Title:       "Please enter the date for which you want to add an expense.",
		Description: "Format YYYY-MM-DD. The expense date cannot be a future date.",
		Placeholder: model.FormatDate(today),
	}, func(s string) (time.Time, error) {
		return validate.ExpenseDate(s, seed.StartDate, seed.EndDate, today)
	})
	if err != nil {
		return err
	}
	day := model.FormatDate(date)

	if old, ok := f.Session.ExistingAmount(date); ok {
		f.printf("You already submitted an expense of %s for %s.\n", cli.FormatMoney(old, f.Currency), day)
		update, err := f.AskYesNo(Question{Title: "Do you want to update it?"})
		if err != nil {
			return err
		}
		if !update {
			f.println("Okay, we will keep the old expense for this date.")
			return nil
		}
	}

	amount, err := answer(f, "", Question{
		Title:       fmt.Sprintf("How much did you spend on %s?", day),
		Description: "Whole numbers only, no cents or decimal points.",
		Placeholder: "24",
	}, validate.ExpenseAmount)
	if err != nil {
		return err
	}

	updated, err := f.Session.AddExpense(ctx, date, amount)
	if err != nil {
		return err
	}
	if updated {
		f.printf("Updated expense for %s.\n\n", day)
	} else {
		f.printf("Added new expense for %s.\n\n", day)
	}
	return nil
}

// OfferExpenseList asks whether to show the ledger and shows it on "yes".
func (f *Flow) OfferExpenseList() error {
	show, err := f.AskYesNo(Question{Title: "Do you want to see a list of all currently tracked expenses?"})
	if err != nil {
		return err
	}
	if !show {
		f.println("Okay, let's move on.")
		return nil
	}
	f.println("Here is a list of your current expenses:")
	f.println()
	_, err = io.WriteString(f.Out, cli.RenderExpenses(f.Session.Tracker().Expenses(), f.Currency))
	return err
}

// AskYesNo asks a yes/no question until it gets a valid answer.
func (f *Flow) AskYesNo(q Question) (bool, error) {
	q.Placeholder = "yes/no"
	return answer(f, "", q, validate.YesNo)
}

func (f *Flow) printSummary() {
	f.println("Here is a summary of your current trip information:")
	_, _ = io.WriteString(f.Out, cli.RenderSummary(f.Session.Tracker().Summary(), f.Currency))
	f.println()
}

func (f *Flow) println(a ...any) { _, _ = fmt.Fprintln(f.Out, a...) }

func (f *Flow) printf(format string, a ...any) { _, _ = fmt.Fprintf(f.Out, format, a...) }

// answer returns the parsed value of preset if non-empty, failing on invalid
// input. Otherwise it prompts until parse accepts the answer, reporting each
// rejection reason.
func answer[T any](f *Flow, preset string, q Question, parse func(string) (T, error)) (T, error) {
	if preset != "" {
		return parse(preset)
	}

	q.Validate = validate.Func(parse)
	for {
		raw, err := f.Prompt.Input(q)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(raw)
		if err == nil {
			return v, nil
		}
		f.printf("Invalid data: %s, please try again.\n", err)
	}
}
