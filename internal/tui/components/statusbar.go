package components

import (
	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is the right-hand status and the transient notice shown in the
// bottom bar.
type StatusInfo struct {
	Notice string // warning text, shown in place of the key hints
	Legend string // "expanded" or "collapsed"
	Month  string
	Busy   string // spinner frame plus activity text, if any
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	noticeStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Warning).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var left string
	if info.Notice != "" {
		left = hintStyle.Render(" ") + noticeStyle.Render(" ⚠ "+info.Notice+" ")
	} else {
		left = hintStyle.Render(" ") +
			keyStyle.Render("[?]") + hintStyle.Render("help  ") +
			keyStyle.Render("[space]") + hintStyle.Render("toggle  ") +
			keyStyle.Render("[l]") + hintStyle.Render("legend  ") +
			keyStyle.Render("[q]") + hintStyle.Render("uit")
	}

	right := ""
	if info.Busy != "" {
		right += hintStyle.Render(info.Busy + "  ")
	}
	if info.Legend != "" {
		right += dimStyle.Render("legend: " + info.Legend + "  ")
	}
	if info.Month != "" {
		right += hintStyle.Render(info.Month + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	gap := lipgloss.NewStyle().Background(t.Surface).Width(padding).Render("")

	return style.Render(left + gap + right)
}
