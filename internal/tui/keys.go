package tui

import (
	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// keyMap holds every global and tab-level binding. The help overlay is
// generated from it, so a binding added here is documented automatically.
type keyMap struct {
	Overview key.Binding
	Trends   key.Binding
	Settings key.Binding
	PrevTab  key.Binding
	NextTab  key.Binding

	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Legend key.Binding

	Export key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Overview: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overview")),
		Trends:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trends")),
		Settings: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "settings")),
		PrevTab:  key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "previous tab")),
		NextTab:  key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next tab")),

		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "move up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "move down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle category")),
		Legend: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "show/hide legend")),

		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export PNG charts")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Legend, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Overview, k.Trends, k.Settings, k.PrevTab, k.NextTab},
		{k.Up, k.Down, k.Toggle, k.Legend},
		{k.Export, k.Help, k.Quit},
	}
}

func newHelp() help.Model {
	t := theme.Active
	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(t.KeyHint).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	sepStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	h.Styles = help.Styles{
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		Ellipsis:       sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
	h.FullSeparator = "    "
	return h
}
