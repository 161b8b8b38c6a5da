package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Series is one line of a LineChart.
type Series struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// BarChart renders one vertical bar per value, each in its own color.
// Y-axis ticks carry prefix. Every label is shown in full; labels that would
// collide are moved to additional rows below the axis.
func BarChart(values []float64, labels []string, colors []lipgloss.Color, prefix string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	if height < 3 {
		height = 3
	}

	ceiling, tickStep, numIntervals := yScale(values, height)

	rowsPerTick := height / numIntervals
	if rowsPerTick < 1 {
		rowsPerTick = 1
	}
	chartH := rowsPerTick * numIntervals

	yLabelW := lipgloss.Width(prefix+formatChartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = prefix + formatChartLabel(tickStep*float64(i))
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)
	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := (chartW - (n-1)*gap) / n
	if barW > 8 {
		barW = 8
	}
	if barW < 1 {
		barW = 1
	}
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			barStyle := lipgloss.NewStyle().Foreground(colorAt(colors, i, t.Accent)).Background(t.Surface)
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, prefix+"0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) == n {
		positions := make([]int, n)
		for i := range positions {
			positions[i] = i * (barW + gap)
		}
		for _, line := range placeLabels(labels, positions, colors, chartW) {
			b.WriteString("\n")
			b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
			b.WriteString(line)
		}
	}

	return b.String()
}

// LineChart plots each series over the shared x labels with point markers
// and a legend row on top.
func LineChart(series []Series, labels []string, prefix string, width, height int) string {
	if len(series) == 0 || len(labels) == 0 {
		return ""
	}
	t := theme.Active
	if height < 4 {
		height = 4
	}

	var all []float64
	for _, s := range series {
		all = append(all, s.Values...)
	}
	ceiling, tickStep, numIntervals := yScale(all, height)

	yLabelW := lipgloss.Width(prefix+formatChartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	plotW := width - yLabelW - 1
	if plotW < len(labels) {
		plotW = len(labels)
	}

	rowFor := func(v float64) int {
		r := int(math.Round((1 - v/ceiling) * float64(height-1)))
		return min(max(r, 0), height-1)
	}
	colFor := func(i int) int {
		if len(labels) == 1 {
			return 0
		}
		return int(math.Round(float64(i) * float64(plotW-1) / float64(len(labels)-1)))
	}

	type cell struct {
		r     rune
		color lipgloss.Color
	}
	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, plotW)
	}

	for _, s := range series {
		for i := 0; i+1 < len(s.Values) && i+1 < len(labels); i++ {
			x0, x1 := colFor(i), colFor(i+1)
			for x := x0 + 1; x < x1; x++ {
				frac := float64(x-x0) / float64(x1-x0)
				v := s.Values[i] + frac*(s.Values[i+1]-s.Values[i])
				c := &grid[rowFor(v)][x]
				if c.r == 0 || c.r == '·' {
					*c = cell{r: '·', color: s.Color}
				}
			}
		}
	}
	for _, s := range series {
		for i, v := range s.Values {
			if i >= len(labels) {
				break
			}
			grid[rowFor(v)][colFor(i)] = cell{r: '●', color: s.Color}
		}
	}

	tickLabels := make(map[int]string)
	for i := 0; i <= numIntervals; i++ {
		v := tickStep * float64(i)
		tickLabels[rowFor(v)] = prefix + formatChartLabel(v)
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(seriesLegend(series, width))
	b.WriteString("\n")

	for row := 0; row < height; row++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))
		var run strings.Builder
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(blank.Render(run.String()))
				run.Reset()
			}
		}
		for _, c := range grid[row] {
			if c.r == 0 {
				run.WriteByte(' ')
				continue
			}
			flush()
			b.WriteString(lipgloss.NewStyle().Foreground(c.color).Background(t.Surface).Render(string(c.r)))
		}
		flush()
		b.WriteString("\n")
	}

	b.WriteString(blank.Render(strings.Repeat(" ", yLabelW)))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", plotW)))

	positions := make([]int, len(labels))
	for i := range labels {
		positions[i] = colFor(i)
	}
	for _, line := range placeLabels(labels, positions, nil, plotW+1) {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(line)
	}

	return b.String()
}

// seriesLegend renders "● name" entries, wrapping to width.
func seriesLegend(series []Series, width int) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var lines []string
	var line strings.Builder
	lineW := 0
	for _, s := range series {
		entryW := lipgloss.Width(s.Name) + 4
		if lineW > 0 && lineW+entryW > width {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
		line.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("●"))
		line.WriteString(blank.Render(" "))
		line.WriteString(nameStyle.Render(s.Name))
		line.WriteString(blank.Render("  "))
		lineW += entryW
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// placeLabels lays labels out at the given columns, one or more rows deep, so
// none overlap and none are dropped. A label that would run past width is
// shifted left; only labels wider than width are truncated.
func placeLabels(labels []string, positions []int, colors []lipgloss.Color, width int) []string {
	t := theme.Active
	blank := lipgloss.NewStyle().Background(t.Surface)

	type placed struct {
		pos  int
		text string
		idx  int
	}
	var rows [][]placed
	var rowEnd []int

	for i, lbl := range labels {
		lbl = truncLabel(lbl, width)
		pos := positions[i]
		if pos+lipgloss.Width(lbl) > width {
			pos = max(width-lipgloss.Width(lbl), 0)
		}
		end := pos + lipgloss.Width(lbl)

		r := 0
		for r < len(rows) && rowEnd[r] > pos {
			r++
		}
		if r == len(rows) {
			rows = append(rows, nil)
			rowEnd = append(rowEnd, 0)
		}
		rows[r] = append(rows[r], placed{pos: pos, text: lbl, idx: i})
		rowEnd[r] = end + 1
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		col := 0
		for _, p := range row {
			if p.pos > col {
				b.WriteString(blank.Render(strings.Repeat(" ", p.pos-col)))
			}
			style := lipgloss.NewStyle().Foreground(colorAt(colors, p.idx, t.TextDim)).Background(t.Surface)
			b.WriteString(style.Render(p.text))
			col = p.pos + lipgloss.Width(p.text)
		}
		out = append(out, b.String())
	}
	return out
}

func truncLabel(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

func colorAt(colors []lipgloss.Color, i int, fallback lipgloss.Color) lipgloss.Color {
	if i < len(colors) && colors[i] != "" {
		return colors[i]
	}
	return fallback
}

// yScale picks a tick step and a ceiling that is a whole number of steps
// above the largest value, with at most height/2 intervals.
func yScale(values []float64, height int) (ceiling, step float64, intervals int) {
	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step = chartTickStep(maxVal)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for int(math.Ceil(maxVal/step)) > maxIntervals {
		step *= 2
	}
	ceiling = math.Ceil(maxVal/step) * step
	intervals = int(math.Round(ceiling / step))
	if intervals < 1 {
		intervals = 1
	}
	return ceiling, step, intervals
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	case v == 0:
		return "0"
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
