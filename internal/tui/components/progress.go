package components

import (
	"fmt"

	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Share is one slice of a share breakdown.
type Share struct {
	Label   string
	Amount  string
	Percent int
	Color   lipgloss.Color
}

// ShareBar renders a labeled bar filled to pct in the slice color, followed by
// the amount and percentage.
func ShareBar(s Share, labelW, amountW, barWidth int) string {
	t := theme.Active

	pct := float64(s.Percent) / 100
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(s.Color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceBright)

	swatch := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("●")
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return swatch +
		spaceStyle.Render(" ") +
		labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncLabel(s.Label, labelW))) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		amountStyle.Render(fmt.Sprintf("%*s", amountW, s.Amount)) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3d%%", s.Percent))
}

// ShareBars renders one ShareBar per slice, sized to fit width.
func ShareBars(shares []Share, width int) string {
	if len(shares) == 0 {
		return ""
	}

	labelW, amountW := 0, 0
	for _, s := range shares {
		labelW = max(labelW, lipgloss.Width(s.Label))
		amountW = max(amountW, lipgloss.Width(s.Amount))
	}
	labelW = min(labelW, 20)

	// swatch, spaces, and the "100%" column
	barW := width - labelW - amountW - 2 - 1 - 1 - 1 - 4
	if barW < 4 {
		barW = 4
	}

	out := ""
	for i, s := range shares {
		if i > 0 {
			out += "\n"
		}
		out += ShareBar(s, labelW, amountW, barW)
	}
	return out
}
