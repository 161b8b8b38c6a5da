// Package budget holds the monthly spending dataset behind the dashboard:
// month labels, spending categories, and the per-category trend matrix.
package budget

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDataset is returned when a dataset breaks its shape invariants.
var ErrInvalidDataset = errors.New("invalid dataset")

// Palette is the fixed chart palette. Categories are assigned colors by
// index, wrapping when there are more categories than colors.
var Palette = []string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2", "#59A14F", "#EDC948", "#B07AA1",
}

// Dataset is an immutable table of monthly spend per category.
// Trend[c] has exactly one value per entry in Months.
type Dataset struct {
	Months     []string
	Categories []string
	Trend      map[string][]float64

	index map[string]int
}

// Default returns the built-in sample dataset.
func Default() *Dataset {
	ds, _ := New(
		[]string{"Aug 2025", "Sep 2025", "Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026"},
		[]string{
			"Rent",
			"Utilities",
			"Household/Groceries",
			"Dining Out",
			"Travel",
			"Subscriptions",
			"Miscellaneous",
		},
		map[string][]float64{
			"Rent":                {1000, 1000, 1000, 1000, 1000, 1000},
			"Utilities":           {135, 75, 60, 50, 45, 59},
			"Household/Groceries": {560, 430, 320, 220, 110, 105},
			"Dining Out":          {200, 350, 205, 305, 250, 220},
			"Travel":              {600, 300, 100, 400, 450, 200},
			"Subscriptions":       {10, 25, 25, 25, 25, 20},
			"Miscellaneous":       {200, 250, 105, 60, 75, 35},
		},
	)
	return ds
}

// New builds a dataset and validates it. The slices and map are copied.
func New(months, categories []string, trend map[string][]float64) (*Dataset, error) {
	ds := &Dataset{
		Months:     append([]string(nil), months...),
		Categories: append([]string(nil), categories...),
		Trend:      make(map[string][]float64, len(trend)),
		index:      make(map[string]int, len(categories)),
	}
	for c, vals := range trend {
		ds.Trend[c] = append([]float64(nil), vals...)
	}
	for i, c := range ds.Categories {
		if _, dup := ds.index[c]; !dup {
			ds.index[c] = i
		}
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Validate checks that every category has one value per month.
func (d *Dataset) Validate() error {
	if len(d.Months) == 0 {
		return fmt.Errorf("%w: no months", ErrInvalidDataset)
	}
	if len(d.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidDataset)
	}
	seen := make(map[string]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		if c == "" {
			return fmt.Errorf("%w: empty category name", ErrInvalidDataset)
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidDataset, c)
		}
		seen[c] = struct{}{}

		vals, ok := d.Trend[c]
		if !ok {
			return fmt.Errorf("%w: category %q has no trend", ErrInvalidDataset, c)
		}
		if len(vals) != len(d.Months) {
			return fmt.Errorf("%w: category %q has %d values, want %d",
				ErrInvalidDataset, c, len(vals), len(d.Months))
		}
	}
	return nil
}

// CurrentMonth returns the label of the last (current) month.
func (d *Dataset) CurrentMonth() string {
	if len(d.Months) == 0 {
		return ""
	}
	return d.Months[len(d.Months)-1]
}

// MonthIndex returns the position of a month label, or -1.
func (d *Dataset) MonthIndex(label string) int {
	for i, m := range d.Months {
		if m == label {
			return i
		}
	}
	return -1
}

// indexOf returns a category's position, or -1. Datasets built as struct
// literals have no index and fall back to a scan.
func (d *Dataset) indexOf(cat string) int {
	if d.index != nil {
		if i, ok := d.index[cat]; ok {
			return i
		}
		return -1
	}
	for i, c := range d.Categories {
		if c == cat {
			return i
		}
	}
	return -1
}

// Has reports whether cat is one of the dataset's categories.
func (d *Dataset) Has(cat string) bool {
	return d.indexOf(cat) >= 0
}

// ColorFor returns the palette color assigned to a category, or "" if the
// category is not part of the dataset.
func (d *Dataset) ColorFor(cat string) string {
	i := d.indexOf(cat)
	if i < 0 {
		return ""
	}
	return Palette[i%len(Palette)]
}

// Value returns the amount for a category at a month index, defaulting to 0.
func (d *Dataset) Value(cat string, monthIdx int) float64 {
	vals := d.Trend[cat]
	if monthIdx < 0 || monthIdx >= len(vals) {
		return 0
	}
	return vals[monthIdx]
}

// Series returns a copy of a category's full trend.
func (d *Dataset) Series(cat string) []float64 {
	return append([]float64(nil), d.Trend[cat]...)
}

// CurrentTotals maps every category to its value in the current month.
func (d *Dataset) CurrentTotals() map[string]float64 {
	idx := len(d.Months) - 1
	totals := make(map[string]float64, len(d.Categories))
	for _, c := range d.Categories {
		totals[c] = d.Value(c, idx)
	}
	return totals
}

// SelectedTotal sums the current-month totals of the given categories.
func (d *Dataset) SelectedTotal(selected []string) float64 {
	totals := d.CurrentTotals()
	var sum float64
	for _, c := range selected {
		sum += totals[c]
	}
	return sum
}

// Percent returns value as a rounded whole percentage of sum. A zero sum
// yields 0.
func Percent(value, sum float64) int {
	if sum == 0 {
		return 0
	}
	return int(math.Round(value / sum * 100))
}
