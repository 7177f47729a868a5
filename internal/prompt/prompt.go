// Package prompt provides terminal prompts backed by huh forms.
package prompt

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/wanderwallet/wanderwallet/internal/config"
	"github.com/wanderwallet/wanderwallet/internal/tui/theme"
	"github.com/wanderwallet/wanderwallet/internal/wizard"
)

// Huh asks wizard questions one form at a time. Accessible mode replaces the
// interactive widgets with plain line prompts, which also works over pipes.
type Huh struct {
	Accessible bool
}

var _ wizard.Prompter = Huh{}

// Input runs a single-field form. The question's validator runs inline, so
// the returned answer has already been accepted.
func (h Huh) Input(q wizard.Question) (string, error) {
	var v string
	field := huh.NewInput().
		Title(q.Title).
		Placeholder(q.Placeholder).
		Value(&v)
	if q.Description != "" {
		field = field.Description(q.Description)
	}
	if q.Validate != nil {
		field = field.Validate(q.Validate)
	}

	if err := h.run(huh.NewGroup(field)); err != nil {
		return "", err
	}
	return v, nil
}

// Settings edits the user-facing parts of cfg in place.
func (h Huh) Settings(cfg *config.Config) error {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	dbPath := cfg.General.DBPath
	form := huh.NewGroup(
		huh.NewInput().
			Title("Currency symbol").
			Description("Shown after every amount, e.g. 2,500 €.").
			Value(&cfg.General.CurrencySymbol).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("currency symbol cannot be empty")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Color theme").
			Options(themes...).
			Value(&cfg.Appearance.Theme),
		huh.NewInput().
			Title("Database path").
			Description("Leave empty to use " + config.DataDir() + "/wanderwallet.db").
			Value(&dbPath),
		huh.NewConfirm().
			Title("Use accessible prompts?").
			Description("Plain line-by-line prompts, friendlier to screen readers.").
			Affirmative("Yes").
			Negative("No").
			Value(&cfg.General.Accessible),
	)

	if err := h.run(form); err != nil {
		return err
	}
	cfg.General.CurrencySymbol = strings.TrimSpace(cfg.General.CurrencySymbol)
	cfg.General.DBPath = strings.TrimSpace(dbPath)
	return nil
}

func (h Huh) run(groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(h.Accessible).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return wizard.ErrAborted
	}
	return err
}
