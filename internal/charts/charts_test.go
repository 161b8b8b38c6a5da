package charts

import (
	"slices"
	"testing"

	"github.com/theirongolddev/spendboard/internal/budget"
	"github.com/theirongolddev/spendboard/internal/selection"
)

func selectOnly(t *testing.T, ds *budget.Dataset, keep ...string) *selection.Set {
	t.Helper()
	sel := selection.New(ds.Categories)
	for _, c := range ds.Categories {
		if slices.Contains(keep, c) {
			continue
		}
		if err := sel.Toggle(c); err != nil {
			t.Fatalf("Toggle(%q): %v", c, err)
		}
	}
	return sel
}

func TestLineRentAndTravel(t *testing.T) {
	ds := budget.Default()
	sel := selectOnly(t, ds, "Rent", "Travel")

	line := LineChart(ds, sel)
	if line.Type != Line {
		t.Fatalf("Type = %q, want line", line.Type)
	}
	if len(line.Datasets) != 2 {
		t.Fatalf("series = %d, want 2", len(line.Datasets))
	}
	if !slices.Equal(line.Labels, ds.Months) {
		t.Fatalf("Labels = %v, want months", line.Labels)
	}
	for i, name := range []string{"Rent", "Travel"} {
		got := line.Datasets[i]
		if got.Label != name {
			t.Fatalf("series[%d].Label = %q, want %q", i, got.Label, name)
		}
		if len(got.Data) != 6 {
			t.Fatalf("series[%d] has %d points, want 6", i, len(got.Data))
		}
		if !slices.Equal(got.Data, ds.Trend[name]) {
			t.Fatalf("series[%d].Data = %v, want %v", i, got.Data, ds.Trend[name])
		}
		if got.Color(0) != ds.ColorFor(name) {
			t.Fatalf("series[%d] color = %q, want %q", i, got.Color(0), ds.ColorFor(name))
		}
	}
	if line.Options.Fill || line.Options.Tension != 0.25 || line.Options.PointRadius != 3 {
		t.Fatalf("line options = %+v", line.Options)
	}
}

func TestPieAndBarMatchSelection(t *testing.T) {
	ds := budget.Default()
	sel := selectOnly(t, ds, "Dining Out", "Rent", "Subscriptions")
	set := Build(ds, sel)

	wantLabels := []string{"Rent", "Dining Out", "Subscriptions"}
	wantData := []float64{1000, 220, 20}
	for _, cfg := range []Config{set.Pie, set.Bar} {
		if !slices.Equal(cfg.Labels, wantLabels) {
			t.Fatalf("%s labels = %v, want %v", cfg.Type, cfg.Labels, wantLabels)
		}
		if len(cfg.Datasets) != 1 {
			t.Fatalf("%s datasets = %d, want 1", cfg.Type, len(cfg.Datasets))
		}
		d := cfg.Datasets[0]
		if !slices.Equal(d.Data, wantData) {
			t.Fatalf("%s data = %v, want %v", cfg.Type, d.Data, wantData)
		}
		for i, c := range wantLabels {
			if d.Color(i) != ds.ColorFor(c) {
				t.Fatalf("%s color[%d] = %q, want %q", cfg.Type, i, d.Color(i), ds.ColorFor(c))
			}
		}
	}

	if set.Pie.Type != Doughnut || set.Pie.Options.Cutout != 58 {
		t.Fatalf("pie = %s cutout %d", set.Pie.Type, set.Pie.Options.Cutout)
	}
	x := set.Bar.Options.X.Ticks
	if x.AutoSkip || x.MinRotation != 45 || x.MaxRotation != 45 {
		t.Fatalf("bar x ticks = %+v", x)
	}
	if set.Bar.Options.Y.Ticks.Prefix != "$" {
		t.Fatalf("bar y prefix = %q", set.Bar.Options.Y.Ticks.Prefix)
	}
}

func TestBuildIsFreshEachTime(t *testing.T) {
	ds := budget.Default()
	sel := selection.New(ds.Categories)
	first := Build(ds, sel)

	if err := sel.Toggle("Travel"); err != nil {
		t.Fatal(err)
	}
	second := Build(ds, sel)

	if len(first.Pie.Labels) != 7 {
		t.Fatalf("earlier config mutated: %d labels", len(first.Pie.Labels))
	}
	if len(second.Pie.Labels) != 6 || len(second.Line.Datasets) != 6 {
		t.Fatalf("rebuilt config: pie %d labels, line %d series", len(second.Pie.Labels), len(second.Line.Datasets))
	}

	// Mutating a config must not reach the dataset.
	second.Line.Datasets[0].Data[0] = -1
	if ds.Trend["Rent"][0] != 1000 {
		t.Fatal("line data aliases the dataset")
	}
}

func TestTooltips(t *testing.T) {
	ds := budget.Default()
	set := Build(ds, selection.New(ds.Categories))

	if got := Tooltip(set.Pie, 0, 0); got != " Rent: $1,000 (61%)" {
		t.Errorf("pie tooltip = %q", got)
	}
	if got := Tooltip(set.Bar, 0, 0); got != " $1,000" {
		t.Errorf("bar tooltip = %q", got)
	}
	if got := Tooltip(set.Line, 4, 0); got != " Travel: $600" {
		t.Errorf("line tooltip = %q", got)
	}
	if got := Tooltip(set.Line, 99, 0); got != "" {
		t.Errorf("out-of-range tooltip = %q", got)
	}
}

func TestTooltipPercentUsesDisplayedTotal(t *testing.T) {
	ds := budget.Default()
	sel := selectOnly(t, ds, "Rent", "Travel")
	pie := Pie(ds, sel)

	// 1000 / 1200 and 200 / 1200.
	if got := TooltipPercent(pie, 0); got != 83 {
		t.Errorf("Rent pct = %d, want 83", got)
	}
	if got := TooltipPercent(pie, 1); got != 17 {
		t.Errorf("Travel pct = %d, want 17", got)
	}
}

func TestTooltipPercentZeroTotal(t *testing.T) {
	cfg := Config{Type: Doughnut, Labels: []string{"a", "b"}, Datasets: []Dataset{{Data: []float64{0, 0}}}}
	for i := range cfg.Labels {
		if got := TooltipPercent(cfg, i); got != 0 {
			t.Fatalf("pct[%d] = %d, want 0", i, got)
		}
	}
	if got := Tooltip(cfg, 0, 0); got != " a: $0 (0%)" {
		t.Fatalf("zero tooltip = %q", got)
	}
}

func TestTickLabel(t *testing.T) {
	a := Axis{Ticks: Ticks{Prefix: "$"}}
	if got := TickLabel(a, 250); got != "$250" {
		t.Fatalf("TickLabel = %q", got)
	}
	if got := TickLabel(Axis{}, 250); got != "250" {
		t.Fatalf("TickLabel no prefix = %q", got)
	}
}
