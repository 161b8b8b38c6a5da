package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/spendboard/internal/cli"
	"github.com/theirongolddev/spendboard/internal/config"
	"github.com/theirongolddev/spendboard/internal/tui/components"
	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	settingsFieldTheme = iota
	settingsFieldLocale
	settingsFieldCurrency
	settingsFieldLegend
	settingsFieldNotice
	settingsFieldDataFile
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldLocale:
		ti.Placeholder = "en-US"
		ti.SetValue(a.cfg.General.Locale)
	case settingsFieldCurrency:
		ti.Placeholder = "USD"
		ti.SetValue(a.cfg.General.Currency)
	case settingsFieldLegend:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.cfg.Dashboard.LegendExpanded))
	case settingsFieldNotice:
		ti.Placeholder = "2200 (milliseconds)"
		ti.SetValue(strconv.Itoa(a.cfg.Dashboard.NoticeMS))
	case settingsFieldDataFile:
		ti.Placeholder = "path to a TOML dataset (empty for built-in)"
		ti.SetValue(a.cfg.General.DataFile)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates the edited field and writes the config file. The
// running app only picks up the change once the write has succeeded.
func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	var apply func()
	switch a.settings.cursor {
	case settingsFieldTheme:
		if _, ok := theme.Lookup(val); !ok {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		cfg.Appearance.Theme = val
		apply = func() {
			theme.SetActive(val)
			a.help = newHelp()
		}
	case settingsFieldLocale:
		if val != "" {
			if _, err := cli.ParseLocale(val); err != nil {
				a.settings.saveErr = err
				return
			}
		}
		cfg.General.Locale = val
		apply = func() { _ = cli.SetLocale(val) }
	case settingsFieldCurrency:
		code, err := cli.ParseCurrency(val)
		if err != nil {
			a.settings.saveErr = err
			return
		}
		cfg.General.Currency = code
		apply = func() {
			_ = cli.SetCurrency(code)
			// Axis tick prefixes carry the symbol.
			a.ctrl.Recompute()
		}
	case settingsFieldLegend:
		b, err := strconv.ParseBool(val)
		if err != nil {
			a.settings.saveErr = fmt.Errorf("legend: want true or false, got %q", val)
			return
		}
		cfg.Dashboard.LegendExpanded = b
		apply = func() { a.legendExpanded = b }
	case settingsFieldNotice:
		ms, err := strconv.Atoi(val)
		if err != nil || ms <= 0 {
			a.settings.saveErr = fmt.Errorf("notice: want a positive number of milliseconds, got %q", val)
			return
		}
		cfg.Dashboard.NoticeMS = ms
	case settingsFieldDataFile:
		cfg.General.DataFile = val
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr != nil {
		a.log.Warn("saving settings", zap.Error(a.settings.saveErr))
		return
	}
	a.cfg = cfg
	if apply != nil {
		apply()
	}
	a.syncTrends()
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Success).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	dataFile := cfg.General.DataFile
	if dataFile == "" {
		dataFile = "(built-in sample)"
	}

	fields := []struct {
		label string
		value string
	}{
		{"Theme", cfg.Appearance.Theme},
		{"Locale", cfg.General.Locale},
		{"Currency", cfg.General.Currency},
		{"Legend Expanded", strconv.FormatBool(cfg.Dashboard.LegendExpanded)},
		{"Notice Duration", fmt.Sprintf("%dms", cfg.Dashboard.NoticeMS)},
		{"Data File", dataFile},
	}

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Not saved: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))
	formBody.WriteString("\n")
	formBody.WriteString(dimStyle.Render("Data file and notice duration apply on next launch."))

	ds := a.ctrl.Dataset()
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Dataset:      ") + valueStyle.Render(a.source) + "\n")
	infoBody.WriteString(labelStyle.Render("Months:       ") +
		valueStyle.Render(fmt.Sprintf("%s … %s (%d)", ds.Months[0], ds.CurrentMonth(), len(ds.Months))) + "\n")
	infoBody.WriteString(labelStyle.Render("Categories:   ") + valueStyle.Render(strconv.Itoa(len(ds.Categories))) + "\n")
	infoBody.WriteString(labelStyle.Render("Export dir:   ") + valueStyle.Render(a.exportDir) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
