// Package png renders chart configs to PNG images with go-chart.
package png

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/spendboard/internal/charts"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned for a config with nothing to draw.
var ErrNoData = errors.New("chart has no data")

// noSpendingLabel marks the placeholder slice of an all-zero pie.
const noSpendingLabel = "No spending 0%"

// Renderer draws charts.Config values as PNG images.
type Renderer struct {
	Width  int
	Height int
}

// New returns a renderer with the given canvas size. Non-positive sizes fall
// back to 800x480.
func New(width, height int) *Renderer {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 480
	}
	return &Renderer{Width: width, Height: height}
}

var _ charts.Renderer = (*Renderer)(nil)

// Render implements charts.Renderer.
func (r *Renderer) Render(w io.Writer, cfg charts.Config) error {
	if len(cfg.Datasets) == 0 || len(cfg.Datasets[0].Data) == 0 {
		return fmt.Errorf("%s: %w", cfg.Type, ErrNoData)
	}

	switch cfg.Type {
	case charts.Doughnut:
		return r.renderPie(w, cfg)
	case charts.Bar:
		return r.renderBar(w, cfg)
	case charts.Line:
		return r.renderLine(w, cfg)
	default:
		return fmt.Errorf("unsupported chart type %q", cfg.Type)
	}
}

func (r *Renderer) renderPie(w io.Writer, cfg charts.Config) error {
	d := cfg.Datasets[0]
	values := make([]chart.Value, 0, len(d.Data))
	for i, v := range d.Data {
		label := ""
		if i < len(cfg.Labels) {
			label = cfg.Labels[i]
		}
		values = append(values, chart.Value{
			Value: v,
			Label: fmt.Sprintf("%s %d%%", label, charts.TooltipPercent(cfg, i)),
			Style: chart.Style{
				FillColor:   hexColor(d.Color(i)),
				StrokeColor: hexColor(cfg.Options.BorderColor),
				StrokeWidth: float64(cfg.Options.BorderWidth),
			},
		})
	}

	// go-chart refuses a pie with nothing to divide; show one neutral slice.
	if d.Sum() == 0 {
		values = []chart.Value{{
			Value: 1,
			Label: noSpendingLabel,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("BBBBBB"),
				StrokeColor: hexColor(cfg.Options.BorderColor),
				StrokeWidth: float64(cfg.Options.BorderWidth),
			},
		}}
	}

	pie := chart.PieChart{
		Title:  cfg.Title,
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering pie chart: %w", err)
	}
	return nil
}

func (r *Renderer) renderBar(w io.Writer, cfg charts.Config) error {
	d := cfg.Datasets[0]
	bars := make([]chart.Value, 0, len(d.Data))
	peak := 0.0
	for i, v := range d.Data {
		label := ""
		if i < len(cfg.Labels) {
			label = cfg.Labels[i]
		}
		if v > peak {
			peak = v
		}
		c := hexColor(d.Color(i))
		bars = append(bars, chart.Value{
			Value: v,
			Label: label,
			Style: chart.Style{
				FillColor:   c,
				StrokeColor: c,
				StrokeWidth: float64(cfg.Options.BorderWidth),
			},
		})
	}
	if peak == 0 {
		peak = 1
	}

	barW := 40
	if n := len(bars); n > 0 && r.Width/(2*n) < barW {
		barW = r.Width / (2 * n)
	}

	bc := chart.BarChart{
		Title:  cfg.Title,
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 80},
		},
		BarWidth: barW,
		Bars:     bars,
		XAxis: chart.Style{
			TextRotationDegrees: float64(cfg.Options.X.Ticks.MaxRotation),
		},
		YAxis: chart.YAxis{
			Range:          yRange(cfg.Options.Y, peak),
			ValueFormatter: tickFormatter(cfg.Options.Y),
		},
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering bar chart: %w", err)
	}
	return nil
}

func (r *Renderer) renderLine(w io.Writer, cfg charts.Config) error {
	xs := make([]float64, len(cfg.Labels))
	ticks := make([]chart.Tick, len(cfg.Labels))
	for i, l := range cfg.Labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: l}
	}

	peak := 0.0
	series := make([]chart.Series, 0, len(cfg.Datasets))
	for _, d := range cfg.Datasets {
		for _, v := range d.Data {
			if v > peak {
				peak = v
			}
		}
		c := hexColor(d.Color(0))
		st := chart.Style{
			StrokeColor: c,
			StrokeWidth: float64(cfg.Options.LineWidth),
			DotColor:    c,
			DotWidth:    float64(cfg.Options.PointRadius),
		}
		if cfg.Options.Fill {
			st.FillColor = c.WithAlpha(64)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    d.Label,
			XValues: xs[:len(d.Data)],
			YValues: d.Data,
			Style:   st,
		})
	}
	if peak == 0 {
		peak = 1
	}

	ch := chart.Chart{
		Title:  cfg.Title,
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Ticks: ticks, Range: xRange(len(cfg.Labels))},
		YAxis: chart.YAxis{
			Range:          yRange(cfg.Options.Y, peak),
			ValueFormatter: tickFormatter(cfg.Options.Y),
		},
		Series: series,
	}
	if cfg.Options.Legend != charts.Hidden {
		ch.Elements = []chart.Renderable{chart.LegendThin(&ch)}
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering line chart: %w", err)
	}
	return nil
}

// xRange pads a single-month axis, which go-chart cannot auto-range.
func xRange(n int) *chart.ContinuousRange {
	if n != 1 {
		return nil
	}
	return &chart.ContinuousRange{Min: -0.5, Max: 0.5}
}

func yRange(a charts.Axis, peak float64) *chart.ContinuousRange {
	if !a.BeginAtZero {
		return nil
	}
	return &chart.ContinuousRange{Min: 0, Max: peak * 1.1}
}

func tickFormatter(a charts.Axis) chart.ValueFormatter {
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return charts.TickLabel(a, f)
		}
		return fmt.Sprintf("%v", v)
	}
}

// hexColor converts "#RRGGBB" to a drawing color. Empty input yields the
// zero color, which go-chart treats as unset.
func hexColor(s string) drawing.Color {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return drawing.Color{}
	}
	return drawing.ColorFromHex(s)
}
