package tui

import (
	"strings"

	"github.com/theirongolddev/spendboard/internal/cli"
	"github.com/theirongolddev/spendboard/internal/tui/components"
	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const lineChartHeight = 12

// syncTrends resizes the trends viewport and refreshes its content. It runs
// after every resize and every accepted toggle.
func (a *App) syncTrends() {
	if a.width == 0 {
		return
	}
	cw := a.contentWidth()
	a.trends.Width = cw
	a.trends.Height = a.contentHeight()
	a.trends.SetContent(a.renderTrendsTab(cw))
}

func (a App) renderTrendsTab(cw int) string {
	snap := a.ctrl.View()
	line := snap.Charts.Line

	r := components.ChartRenderer{Width: components.CardInnerWidth(cw), Height: lineChartHeight}
	chart, err := r.String(line)
	if err != nil {
		chart = err.Error()
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Monthly Trend · selected categories", chart, cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Month by Category", a.renderTrendTable(cw), cw))
	return b.String()
}

// renderTrendTable lists every month for the selected categories, with a
// sparkline and total per row. Narrow cards get abbreviated month headers.
func (a App) renderTrendTable(cw int) string {
	t := theme.Active
	ds := a.ctrl.Dataset()
	selected := a.ctrl.Selected()

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	catW, monthW := 22, 9
	sparkW := max(len(ds.Months), 5) + 2
	headers := ds.Months
	if catW+len(ds.Months)*monthW+sparkW > innerW {
		catW, monthW = 20, 8
		headers = make([]string, len(ds.Months))
		for i, m := range ds.Months {
			headers[i] = shortMonth(m)
		}
	}
	showSpark := catW+len(ds.Months)*monthW+sparkW <= innerW
	tableW := catW + len(ds.Months)*monthW
	if showSpark {
		tableW += sparkW
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(padRight("Category", catW)))
	for _, h := range headers {
		b.WriteString(headStyle.Render(padLeft(h, monthW)))
	}
	if showSpark {
		b.WriteString(space.Render("  "))
		b.WriteString(headStyle.Render(padRight("Trend", sparkW-2)))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).
		Render(strings.Repeat("─", min(innerW, tableW))))
	b.WriteString("\n")

	totals := make([]float64, len(ds.Months))
	for _, cat := range selected {
		color := lipgloss.Color(ds.ColorFor(cat))
		b.WriteString(lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render("● "))
		b.WriteString(cellStyle.Render(padRight(cat, catW-2)))
		for i := range ds.Months {
			v := ds.Value(cat, i)
			totals[i] += v
			b.WriteString(cellStyle.Render(padLeft(cli.FormatCurrency(v), monthW)))
		}
		if showSpark {
			b.WriteString(space.Render("  "))
			b.WriteString(components.Sparkline(ds.Series(cat), color))
		}
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render(padRight("Total", catW)))
	for _, v := range totals {
		b.WriteString(totalStyle.Render(padLeft(cli.FormatCurrency(v), monthW)))
	}
	if showSpark {
		b.WriteString(space.Render("  "))
		b.WriteString(components.Sparkline(totals, t.AccentBright))
	}

	return b.String()
}

// shortMonth turns "Aug 2025" into "Aug '25"; other labels pass through.
func shortMonth(m string) string {
	parts := strings.Fields(m)
	if len(parts) == 2 && len(parts[1]) == 4 {
		return parts[0] + " '" + parts[1][2:]
	}
	return m
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return truncStr(s, w)
}

func padLeft(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
