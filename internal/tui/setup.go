package tui

import (
	"github.com/theirongolddev/spendboard/internal/cli"
	"github.com/theirongolddev/spendboard/internal/config"
	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues is bound to the first-run form fields.
type setupValues struct {
	theme          string
	locale         string
	legendExpanded bool
}

func setupValuesFrom(cfg config.Config) setupValues {
	return setupValues{
		theme:          cfg.Appearance.Theme,
		locale:         cfg.General.Locale,
		legendExpanded: cfg.Dashboard.LegendExpanded,
	}
}

// newSetupForm builds the first-run wizard shown when no config file exists.
func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to spendboard").
				Description("A few choices and you're in. Run `spendboard setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewInput().
				Title("Number format locale").
				Description("BCP 47 tag used for grouping, e.g. en-US or de-DE").
				Placeholder("en-US").
				Validate(validateLocale).
				Value(&vals.locale),
			huh.NewConfirm().
				Title("Start with the category legend expanded?").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.legendExpanded),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

// validateLocale accepts an empty tag (default) or any parseable BCP 47 tag.
func validateLocale(s string) error {
	if s == "" {
		return nil
	}
	_, err := cli.ParseLocale(s)
	return err
}

// saveSetupConfig applies the wizard answers to the running app and writes
// them to the config file.
func (a *App) saveSetupConfig() error {
	cfg := a.cfg
	vals := a.setupVals
	if vals == nil {
		return nil
	}
	if vals.theme != "" {
		cfg.Appearance.Theme = vals.theme
	}
	cfg.General.Locale = vals.locale
	if cfg.General.Locale == "" {
		cfg.General.Locale = config.DefaultConfig().General.Locale
	}
	cfg.Dashboard.LegendExpanded = vals.legendExpanded

	if _, err := cli.ParseLocale(cfg.General.Locale); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	theme.SetActive(cfg.Appearance.Theme)
	a.help = newHelp()
	_ = cli.SetLocale(cfg.General.Locale)
	a.legendExpanded = cfg.Dashboard.LegendExpanded
	a.cfg = cfg
	return nil
}
