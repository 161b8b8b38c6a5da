// Package charts projects the dashboard state into chart configurations.
//
// A Config is the stable contract handed to a chart renderer: an ordered list
// of labels, an ordered list of datasets, and styling/interaction options.
// Configs are rebuilt from scratch on every selection change; nothing is
// patched in place.
package charts

import (
	"io"

	"github.com/theirongolddev/spendboard/internal/budget"
	"github.com/theirongolddev/spendboard/internal/cli"
)

// Type names a chart kind.
type Type string

// Supported chart kinds.
const (
	Doughnut Type = "doughnut"
	Bar      Type = "bar"
	Line     Type = "line"
)

// Position places a chart legend.
type Position string

// Legend positions.
const (
	Top    Position = "top"
	Bottom Position = "bottom"
	Hidden Position = ""
)

// Dataset is one series of a chart. Colors holds either one color per data
// point (pie, bar) or a single series color (line).
type Dataset struct {
	Label  string
	Data   []float64
	Colors []string
}

// Color returns the dataset color at i, falling back to the first color.
func (d Dataset) Color(i int) string {
	if i >= 0 && i < len(d.Colors) {
		return d.Colors[i]
	}
	if len(d.Colors) > 0 {
		return d.Colors[0]
	}
	return ""
}

// Ticks controls axis tick rendering.
type Ticks struct {
	Prefix      string
	AutoSkip    bool
	MinRotation int
	MaxRotation int
}

// Axis holds per-axis options.
type Axis struct {
	BeginAtZero bool
	Ticks       Ticks
}

// Options carries styling and interaction settings for a renderer.
type Options struct {
	Legend      Position
	PointStyle  bool // legend uses point markers instead of boxes
	Cutout      int  // doughnut hole, percent of radius
	BorderColor string
	BorderWidth int
	X, Y        Axis

	Fill        bool
	Tension     float64
	LineWidth   int
	PointRadius int
	HoverRadius int

	InteractionMode string
	Intersect       bool
}

// Config is the full input for one chart.
type Config struct {
	Type     Type
	Title    string
	Labels   []string
	Datasets []Dataset
	Options  Options
}

// Set holds the three dashboard charts.
type Set struct {
	Pie  Config
	Bar  Config
	Line Config
}

// Renderer draws a chart config to w.
type Renderer interface {
	Render(w io.Writer, cfg Config) error
}

// Selection is the read side of the category selection.
type Selection interface {
	Selected() []string
}

// Build rebuilds all three chart configs for the current selection.
func Build(ds *budget.Dataset, sel Selection) Set {
	selected := sel.Selected()
	return Set{
		Pie:  pieConfig(ds, selected),
		Bar:  barConfig(ds, selected),
		Line: lineConfig(ds, selected),
	}
}

// Pie returns the current-month doughnut chart for the selection.
func Pie(ds *budget.Dataset, sel Selection) Config {
	return pieConfig(ds, sel.Selected())
}

// BarChart returns the current-month bar chart for the selection.
func BarChart(ds *budget.Dataset, sel Selection) Config {
	return barConfig(ds, sel.Selected())
}

// LineChart returns the per-category trend chart for the selection.
func LineChart(ds *budget.Dataset, sel Selection) Config {
	return lineConfig(ds, sel.Selected())
}

func currentValues(ds *budget.Dataset, selected []string) ([]float64, []string) {
	totals := ds.CurrentTotals()
	data := make([]float64, len(selected))
	colors := make([]string, len(selected))
	for i, c := range selected {
		data[i] = totals[c]
		colors[i] = ds.ColorFor(c)
	}
	return data, colors
}

func pieConfig(ds *budget.Dataset, selected []string) Config {
	data, colors := currentValues(ds, selected)
	return Config{
		Type:   Doughnut,
		Title:  "Spending Share · " + ds.CurrentMonth(),
		Labels: append([]string(nil), selected...),
		Datasets: []Dataset{{
			Data:   data,
			Colors: colors,
		}},
		Options: Options{
			Legend:      Bottom,
			Cutout:      58,
			BorderColor: "#ffffff",
			BorderWidth: 2,
		},
	}
}

func barConfig(ds *budget.Dataset, selected []string) Config {
	data, colors := currentValues(ds, selected)
	return Config{
		Type:   Bar,
		Title:  "Current Month · " + ds.CurrentMonth(),
		Labels: append([]string(nil), selected...),
		Datasets: []Dataset{{
			Label:  "Current month",
			Data:   data,
			Colors: colors,
		}},
		Options: Options{
			Legend:      Hidden,
			BorderWidth: 1,
			X: Axis{Ticks: Ticks{
				AutoSkip:    false,
				MinRotation: 45,
				MaxRotation: 45,
			}},
			Y: Axis{BeginAtZero: true, Ticks: Ticks{Prefix: cli.CurrencySymbol()}},
		},
	}
}

func lineConfig(ds *budget.Dataset, selected []string) Config {
	sets := make([]Dataset, len(selected))
	for i, c := range selected {
		sets[i] = Dataset{
			Label:  c,
			Data:   ds.Series(c),
			Colors: []string{ds.ColorFor(c)},
		}
	}
	return Config{
		Type:     Line,
		Title:    "Monthly Trend",
		Labels:   append([]string(nil), ds.Months...),
		Datasets: sets,
		Options: Options{
			Legend:          Top,
			PointStyle:      true,
			Y:               Axis{BeginAtZero: true, Ticks: Ticks{Prefix: cli.CurrencySymbol()}},
			Fill:            false,
			Tension:         0.25,
			LineWidth:       3,
			PointRadius:     3,
			HoverRadius:     5,
			InteractionMode: "nearest",
			Intersect:       false,
		},
	}
}
