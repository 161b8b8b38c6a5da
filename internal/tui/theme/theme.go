// Package theme defines the color themes of the spendboard dashboard.
//
// Category colors come from the dataset, not the theme; a theme only colors
// the chrome around them.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Off half of a legend switch
	SurfaceBright lipgloss.Color // Selected row, switch track
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // First KPI card, help overlay
	TextDim       lipgloss.Color // Hints, disabled
	TextMuted     lipgloss.Color // Labels, metadata
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color // Active tab, cursor
	AccentBright  lipgloss.Color // Totals, emphasis
	KeyHint       lipgloss.Color // Key names in help
	SwitchOn      lipgloss.Color // Legend switch in the on state
	Success       lipgloss.Color // "Saved!" confirmations
	Warning       lipgloss.Color // Guard notice, validation errors
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	KeyHint:       lipgloss.Color("#24837B"),
	SwitchOn:      lipgloss.Color("#879A39"),
	Success:       lipgloss.Color("#A3B859"),
	Warning:       lipgloss.Color("#DA702C"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceHover:  lipgloss.Color("#45475A"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Accent:        lipgloss.Color("#89B4FA"),
	AccentBright:  lipgloss.Color("#B4D0FB"),
	KeyHint:       lipgloss.Color("#94E2D5"),
	SwitchOn:      lipgloss.Color("#A6E3A1"),
	Success:       lipgloss.Color("#C6F6C1"),
	Warning:       lipgloss.Color("#FAB387"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceHover:  lipgloss.Color("#343A52"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	KeyHint:       lipgloss.Color("#7DCFFF"),
	SwitchOn:      lipgloss.Color("#9ECE6A"),
	Success:       lipgloss.Color("#B9E87A"),
	Warning:       lipgloss.Color("#FF9E64"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	KeyHint:       lipgloss.Color("6"),
	SwitchOn:      lipgloss.Color("2"),
	Success:       lipgloss.Color("10"),
	Warning:       lipgloss.Color("3"),
}

// All available themes, in menu order.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Lookup finds a theme by name.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Names lists the theme names in menu order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// SetActive sets the active theme by name. Unknown names select FlexokiDark.
func SetActive(name string) {
	t, ok := Lookup(name)
	if !ok {
		t = FlexokiDark
	}
	Active = t
}
