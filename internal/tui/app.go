// Package tui provides the interactive Bubble Tea dashboard for spendboard.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/spendboard/internal/config"
	"github.com/theirongolddev/spendboard/internal/dashboard"
	"github.com/theirongolddev/spendboard/internal/selection"
	"github.com/theirongolddev/spendboard/internal/tui/components"
	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// noticeExpiredMsg asks the app to clear the notice with the given
// generation. It is ignored if a newer notice has replaced it.
type noticeExpiredMsg struct {
	gen uint64
}

// Options configures the dashboard app.
type Options struct {
	Config    config.Config
	NeedSetup bool   // show the first-run form before the dashboard
	Source    string // dataset description for the header
	ExportDir string // where the export key writes PNGs
	Logger    *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	ctrl *dashboard.Controller
	cfg  config.Config
	log  *zap.Logger

	source    string
	exportDir string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Legend state is local to the view; the controller only knows selection.
	legendExpanded bool
	legendCursor   int

	trends   viewport.Model
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues // shared by every copy of App; the form writes through it
	needSetup bool

	keys keyMap
	help help.Model

	spinner   spinner.Model
	exporting bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	headerHeight     = 2
	statusHeight     = 1
	minContentHeight = 5 // minimum content area height
)

// Tab indexes, matching components.Tabs.
const (
	tabOverview = iota
	tabTrends
	tabSettings
)

// NewApp creates a new TUI app model around a dashboard controller.
func NewApp(ctrl *dashboard.Controller, opts Options) App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	a := App{
		ctrl:           ctrl,
		cfg:            opts.Config,
		log:            log,
		source:         opts.Source,
		exportDir:      exportDir,
		legendExpanded: opts.Config.Dashboard.LegendExpanded,
		trends:         vp,
		needSetup:      opts.NeedSetup,
		keys:           defaultKeyMap(),
		help:           newHelp(),
		spinner:        sp,
	}
	if a.needSetup {
		vals := setupValuesFrom(opts.Config)
		a.setupVals = &vals
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		a.syncTrends()
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

		switch a.activeTab {
		case tabOverview:
			if model, cmd, ok := a.updateOverviewKeys(msg); ok {
				return model, cmd
			}
		case tabTrends:
			if key.Matches(msg, a.keys.Up, a.keys.Down) || msg.String() == "pgup" || msg.String() == "pgdown" {
				var cmd tea.Cmd
				a.trends, cmd = a.trends.Update(msg)
				return a, cmd
			}
		case tabSettings:
			switch {
			case key.Matches(msg, a.keys.Down):
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case key.Matches(msg, a.keys.Up):
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case msg.String() == "enter":
				return a.settingsStartEdit()
			}
		}

		if key.Matches(msg, a.keys.Export) && !a.exporting {
			a.exporting = true
			return a, tea.Batch(a.spinner.Tick, exportChartsCmd(a.ctrl.View().Charts, a.exportDir))
		}

		switch {
		case key.Matches(msg, a.keys.Overview):
			a.activeTab = tabOverview
		case key.Matches(msg, a.keys.Trends):
			a.activeTab = tabTrends
		case key.Matches(msg, a.keys.Settings):
			a.activeTab = tabSettings
		case key.Matches(msg, a.keys.PrevTab):
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case key.Matches(msg, a.keys.NextTab):
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil

	case noticeExpiredMsg:
		a.ctrl.ClearNotice(msg.gen)
		return a, nil

	case exportDoneMsg:
		a.exporting = false
		if msg.err != nil {
			a.log.Warn("export failed", zap.String("dir", msg.dir), zap.Error(msg.err))
			return a, a.postNotice(fmt.Sprintf("Export failed: %s", msg.err))
		}
		a.log.Info("export written", zap.String("dir", msg.dir), zap.Strings("files", msg.files))
		return a, a.postNotice(fmt.Sprintf("Saved %d charts to %s", len(msg.files), msg.dir))

	case spinner.TickMsg:
		if a.exporting {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if a.activeTab == tabTrends {
			var cmd tea.Cmd
			a.trends, cmd = a.trends.Update(msg)
			return a, cmd
		}
		if a.activeTab == tabOverview && a.legendExpanded {
			if msg.Button == tea.MouseButtonWheelUp {
				a.moveLegendCursor(-1)
			} else {
				a.moveLegendCursor(1)
			}
		}
		return a, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.activeTab = tab
			}
			return a, nil
		}
		if a.activeTab == tabOverview {
			row, onTitle := a.legendHit(msg.X, msg.Y)
			switch {
			case onTitle:
				a.legendExpanded = !a.legendExpanded
			case row >= 0:
				a.legendCursor = row
				return a.toggleAtCursor()
			}
		}
		return a, nil
	}
	return a, nil
}

// toggleAtCursor toggles the category under the legend cursor. A toggle the
// selection guard refuses schedules the notice to clear after its TTL.
func (a App) toggleAtCursor() (tea.Model, tea.Cmd) {
	cats := a.ctrl.Dataset().Categories
	if a.legendCursor < 0 || a.legendCursor >= len(cats) {
		return a, nil
	}
	err := a.ctrl.Toggle(cats[a.legendCursor])
	if errors.Is(err, selection.ErrMinSelection) {
		return a, a.noticeClearCmd()
	}
	a.syncTrends()
	return a, nil
}

// postNotice shows text in the status bar and schedules its removal.
func (a App) postNotice(text string) tea.Cmd {
	a.ctrl.PostNotice(text)
	return a.noticeClearCmd()
}

func (a App) noticeClearCmd() tea.Cmd {
	gen := a.ctrl.View().NoticeGen
	return tea.Tick(a.ctrl.NoticeTTL(), func(time.Time) tea.Msg {
		return noticeExpiredMsg{gen: gen}
	})
}

func (a *App) moveLegendCursor(delta int) {
	n := len(a.ctrl.Dataset().Categories)
	a.legendCursor = min(max(a.legendCursor+delta, 0), n-1)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := a.saveSetupConfig(); err != nil {
			a.log.Warn("saving setup config", zap.Error(err))
		}
		a.needSetup = false
		a.setupForm = nil
		a.syncTrends()
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) contentHeight() int {
	h := a.height - headerHeight - statusHeight
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  spendboard needs at least %d columns.\n  Current width: %d\n",
		a.width,
		minTerminalWidth,
		a.width,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Click a legend row to toggle it, or its title to show/hide."))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderHeader() string {
	t := theme.Active
	snap := a.ctrl.View()

	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	info := pillStyle.Render(" ") +
		accentStyle.Render(snap.KPIMonth) +
		pillStyle.Render(" │ ") +
		accentStyle.Render(fmt.Sprintf("%d of %d", snap.Selected, len(snap.Legend))) +
		pillStyle.Render(" categories")
	if a.source != "" {
		info += pillStyle.Render(" │ ") + pillStyle.Render(a.source)
	}

	rowStyle := lipgloss.NewStyle().Background(t.Surface).Width(a.width)
	return components.RenderTabBar(a.activeTab, a.width) + "\n" + rowStyle.Render(info)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader()

	snap := a.ctrl.View()
	status := components.StatusInfo{
		Notice: snap.Notice,
		Month:  snap.KPIMonth,
		Legend: "collapsed",
	}
	if a.legendExpanded {
		status.Legend = "expanded"
	}
	if a.exporting {
		status.Busy = a.spinner.View() + " exporting"
	}
	statusBar := components.RenderStatusBar(w, status)

	contentH := a.contentHeight()

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabTrends:
		content = a.trends.View()
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

// contentOffsetX is the left margin added when the terminal is wider than
// the content column.
func (a App) contentOffsetX() int {
	cw := a.contentWidth()
	if a.width <= cw {
		return 0
	}
	return (a.width - cw) / 2
}
