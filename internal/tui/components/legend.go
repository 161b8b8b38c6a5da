package components

import (
	"strings"

	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LegendItem is one toggleable category row.
type LegendItem struct {
	Label string
	Color lipgloss.Color
	On    bool
}

// Switch renders an on/off toggle.
func Switch(on bool) string {
	t := theme.Active
	if on {
		return lipgloss.NewStyle().Foreground(t.Background).Background(t.SwitchOn).Bold(true).Render(" ON ") +
			lipgloss.NewStyle().Foreground(t.TextDim).Background(t.SurfaceBright).Render("   ")
	}
	return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.SurfaceBright).Render("   ") +
		lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.SurfaceHover).Render(" OFF")
}

// SwitchWidth is the rendered width of Switch.
const SwitchWidth = 7

// Legend renders one row per item: cursor marker, color swatch, label padded
// to fill width, and the switch at the right edge. cursor < 0 hides the
// marker.
func Legend(items []LegendItem, cursor, width int) string {
	t := theme.Active

	rows := make([]string, 0, len(items))
	for i, it := range items {
		bg := t.Surface
		if i == cursor {
			bg = t.SurfaceBright
		}
		base := lipgloss.NewStyle().Background(bg)

		marker := base.Render("  ")
		if i == cursor {
			marker = lipgloss.NewStyle().Foreground(t.AccentBright).Background(bg).Render("▸ ")
		}

		swatchRune := "●"
		if !it.On {
			swatchRune = "○"
		}
		swatch := lipgloss.NewStyle().Foreground(it.Color).Background(bg).Render(swatchRune)

		labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
		if !it.On {
			labelStyle = labelStyle.Foreground(t.TextDim)
		}
		if i == cursor {
			labelStyle = labelStyle.Bold(true)
		}

		labelW := width - 2 - 1 - 1 - 1 - SwitchWidth
		if labelW < 4 {
			labelW = 4
		}
		label := truncLabel(it.Label, labelW)
		pad := labelW - lipgloss.Width(label)

		row := marker + swatch + base.Render(" ") + labelStyle.Render(label) +
			base.Render(strings.Repeat(" ", pad+1)) + Switch(it.On)
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}
