package components

import (
	"fmt"
	"io"

	"github.com/theirongolddev/spendboard/internal/charts"
	"github.com/theirongolddev/spendboard/internal/cli"

	"github.com/charmbracelet/lipgloss"
)

// ChartRenderer draws chart configs as styled terminal text.
type ChartRenderer struct {
	Width  int
	Height int
}

var _ charts.Renderer = ChartRenderer{}

// Render implements charts.Renderer.
func (r ChartRenderer) Render(w io.Writer, cfg charts.Config) error {
	s, err := r.String(cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// String returns the rendered chart.
func (r ChartRenderer) String(cfg charts.Config) (string, error) {
	switch cfg.Type {
	case charts.Doughnut:
		return ShareBars(SharesFor(cfg), r.Width), nil
	case charts.Bar:
		if len(cfg.Datasets) == 0 {
			return "", nil
		}
		d := cfg.Datasets[0]
		return BarChart(d.Data, cfg.Labels, datasetColors(d), cfg.Options.Y.Ticks.Prefix, r.Width, r.Height), nil
	case charts.Line:
		series := make([]Series, 0, len(cfg.Datasets))
		for _, d := range cfg.Datasets {
			series = append(series, Series{
				Name:   d.Label,
				Values: d.Data,
				Color:  lipgloss.Color(d.Color(0)),
			})
		}
		return LineChart(series, cfg.Labels, cfg.Options.Y.Ticks.Prefix, r.Width, r.Height), nil
	default:
		return "", fmt.Errorf("unsupported chart type %q", cfg.Type)
	}
}

// SharesFor converts a doughnut config into share rows with formatted
// amounts and percentages of the displayed total.
func SharesFor(cfg charts.Config) []Share {
	if len(cfg.Datasets) == 0 {
		return nil
	}
	d := cfg.Datasets[0]
	shares := make([]Share, 0, len(d.Data))
	for i, v := range d.Data {
		label := ""
		if i < len(cfg.Labels) {
			label = cfg.Labels[i]
		}
		shares = append(shares, Share{
			Label:   label,
			Amount:  cli.FormatCurrency(v),
			Percent: charts.TooltipPercent(cfg, i),
			Color:   lipgloss.Color(d.Color(i)),
		})
	}
	return shares
}

func datasetColors(d charts.Dataset) []lipgloss.Color {
	out := make([]lipgloss.Color, len(d.Data))
	for i := range out {
		out[i] = lipgloss.Color(d.Color(i))
	}
	return out
}
