package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendboard/internal/cli"
	"github.com/theirongolddev/spendboard/internal/dashboard"
	"github.com/theirongolddev/spendboard/internal/tui/components"
	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const barChartHeight = 10

// overviewLayout is the column split of the legend and share cards. Mouse
// hit-testing uses the same numbers as rendering.
type overviewLayout struct {
	compact bool
	legendW int
	shareW  int
}

func (a App) overviewLayout(cw int) overviewLayout {
	if a.isCompactLayout() {
		return overviewLayout{compact: true, legendW: cw, shareW: cw}
	}
	legendW := cw * 2 / 5
	return overviewLayout{legendW: legendW, shareW: cw - legendW}
}

// updateOverviewKeys handles legend navigation. ok is false for keys the
// overview does not own.
func (a App) updateOverviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Legend):
		a.legendExpanded = !a.legendExpanded
		return a, nil, true
	case !a.legendExpanded:
		return a, nil, false
	case key.Matches(msg, a.keys.Down):
		a.moveLegendCursor(1)
		return a, nil, true
	case key.Matches(msg, a.keys.Up):
		a.moveLegendCursor(-1)
		return a, nil, true
	case key.Matches(msg, a.keys.Toggle):
		m, cmd := a.toggleAtCursor()
		return m, cmd, true
	}
	return a, nil, false
}

func (a App) renderKPIRow(cw int, snap dashboard.Snapshot) string {
	largest, largestVal := "", 0.0
	for _, row := range snap.Legend {
		if !row.On {
			continue
		}
		if v := a.ctrl.Dataset().Value(row.Category, len(a.ctrl.Dataset().Months)-1); v > largestVal || largest == "" {
			largest, largestVal = row.Category, v
		}
	}

	return components.MetricCardRow([]components.Metric{
		{Label: "Spent this month", Value: cli.FormatCurrency(snap.KPITotal), Detail: snap.KPIMonth},
		{Label: "Categories shown", Value: fmt.Sprintf("%d of %d", snap.Selected, len(snap.Legend)), Detail: "min 2"},
		{Label: "Largest", Value: largest, Detail: cli.FormatCurrency(largestVal)},
	}, cw)
}

func legendTitle(expanded bool) string {
	if expanded {
		return "Categories · Hide [l]"
	}
	return "Categories · Show [l]"
}

func (a App) renderLegendCard(width int, snap dashboard.Snapshot) string {
	t := theme.Active

	if !a.legendExpanded {
		dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		var swatches strings.Builder
		for _, row := range snap.Legend {
			r := "○"
			if row.On {
				r = "●"
			}
			swatches.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color)).Background(t.Surface).Render(r))
		}
		body := swatches.String() + dim.Render(fmt.Sprintf("  %d of %d on", snap.Selected, len(snap.Legend)))
		return components.ContentCard(legendTitle(false), body, width)
	}

	items := make([]components.LegendItem, len(snap.Legend))
	for i, row := range snap.Legend {
		items[i] = components.LegendItem{
			Label: row.Category,
			Color: lipgloss.Color(row.Color),
			On:    row.On,
		}
	}
	body := components.Legend(items, a.legendCursor, components.CardInnerWidth(width))
	return components.ContentCard(legendTitle(true), body, width)
}

func (a App) renderShareCard(width int, snap dashboard.Snapshot) string {
	r := components.ChartRenderer{Width: components.CardInnerWidth(width)}
	body, err := r.String(snap.Charts.Pie)
	if err != nil {
		body = err.Error()
	}
	return components.ContentCard(snap.Charts.Pie.Title, body, width)
}

func (a App) renderBarCard(width int, snap dashboard.Snapshot) string {
	r := components.ChartRenderer{Width: components.CardInnerWidth(width), Height: barChartHeight}
	body, err := r.String(snap.Charts.Bar)
	if err != nil {
		body = err.Error()
	}
	return components.ContentCard("Spending by Category · "+snap.KPIMonth, body, width)
}

func (a App) renderOverviewTab(cw int) string {
	snap := a.ctrl.View()
	layout := a.overviewLayout(cw)

	var b strings.Builder
	b.WriteString(a.renderKPIRow(cw, snap))
	b.WriteString("\n")

	legend := a.renderLegendCard(layout.legendW, snap)
	share := a.renderShareCard(layout.shareW, snap)
	if layout.compact {
		b.WriteString(legend)
		b.WriteString("\n")
		b.WriteString(share)
	} else {
		b.WriteString(components.CardRow([]string{legend, share}))
	}
	b.WriteString("\n")
	b.WriteString(a.renderBarCard(cw, snap))

	return b.String()
}

// legendHit maps a screen coordinate to a legend row index, or reports a hit
// on the legend card's title line. row is -1 when no row was hit.
func (a App) legendHit(x, y int) (row int, onTitle bool) {
	cw := a.contentWidth()
	layout := a.overviewLayout(cw)

	relX := x - a.contentOffsetX()
	if relX < 0 || relX >= layout.legendW {
		return -1, false
	}

	kpiH := lipgloss.Height(a.renderKPIRow(cw, a.ctrl.View()))
	// Card top border sits right below the KPI row; the title follows it.
	relY := y - headerHeight - kpiH
	if relY == 1 {
		return -1, true
	}
	if !a.legendExpanded {
		return -1, false
	}
	idx := relY - 2
	if idx < 0 || idx >= len(a.ctrl.Dataset().Categories) {
		return -1, false
	}
	return idx, false
}
