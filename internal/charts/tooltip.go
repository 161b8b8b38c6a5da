package charts

import (
	"strconv"

	"github.com/theirongolddev/spendboard/internal/budget"
	"github.com/theirongolddev/spendboard/internal/cli"
)

// Sum returns the total of a dataset's values.
func (d Dataset) Sum() float64 {
	var s float64
	for _, v := range d.Data {
		s += v
	}
	return s
}

// TooltipPercent returns slice i's share of the displayed total of the
// first dataset, rounded to a whole percent.
func TooltipPercent(cfg Config, i int) int {
	if len(cfg.Datasets) == 0 {
		return 0
	}
	d := cfg.Datasets[0]
	if i < 0 || i >= len(d.Data) {
		return 0
	}
	return budget.Percent(d.Data[i], d.Sum())
}

// Tooltip returns the hover text for point i of dataset di, in the form the
// chart type uses:
//
//	doughnut: " Rent: $1,000 (61%)"
//	bar:      " $1,000"
//	line:     " Rent: $1,000"
func Tooltip(cfg Config, di, i int) string {
	if di < 0 || di >= len(cfg.Datasets) {
		return ""
	}
	d := cfg.Datasets[di]
	if i < 0 || i >= len(d.Data) {
		return ""
	}
	v := d.Data[i]

	switch cfg.Type {
	case Doughnut:
		label := ""
		if i < len(cfg.Labels) {
			label = cfg.Labels[i]
		}
		return " " + label + ": " + cli.FormatCurrency(v) + " (" + cli.FormatPercent(TooltipPercent(cfg, i)) + ")"
	case Bar:
		return " " + cli.FormatCurrency(v)
	default:
		return " " + d.Label + ": " + cli.FormatCurrency(v)
	}
}

// TickLabel formats an axis value using the axis tick prefix.
func TickLabel(a Axis, v float64) string {
	return a.Ticks.Prefix + strconv.FormatFloat(v, 'f', -1, 64)
}
