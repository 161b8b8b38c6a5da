package budget

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCurrentTotal(t *testing.T) {
	ds := Default()
	if ds.CurrentMonth() != "Jan 2026" {
		t.Fatalf("CurrentMonth = %q, want Jan 2026", ds.CurrentMonth())
	}
	got := ds.SelectedTotal(ds.Categories)
	if got != 1639 {
		t.Fatalf("SelectedTotal(all) = %.0f, want 1639", got)
	}
}

func TestCurrentTotalsMatchLastMonth(t *testing.T) {
	ds := Default()
	totals := ds.CurrentTotals()
	if len(totals) != len(ds.Categories) {
		t.Fatalf("CurrentTotals has %d entries, want %d", len(totals), len(ds.Categories))
	}

	var sumTotals, sumLast float64
	for _, c := range ds.Categories {
		sumTotals += totals[c]
		series := ds.Trend[c]
		sumLast += series[len(series)-1]
	}
	if sumTotals != sumLast {
		t.Fatalf("sum(CurrentTotals) = %.0f, want %.0f", sumTotals, sumLast)
	}
}

func TestColorForDeterministic(t *testing.T) {
	ds := Default()
	for i, c := range ds.Categories {
		first := ds.ColorFor(c)
		if first == "" {
			t.Fatalf("ColorFor(%q) empty", c)
		}
		if again := ds.ColorFor(c); again != first {
			t.Fatalf("ColorFor(%q) = %q then %q", c, first, again)
		}
		if want := Palette[i%len(Palette)]; first != want {
			t.Errorf("ColorFor(%q) = %q, want %q", c, first, want)
		}
	}
	if got := ds.ColorFor("Nope"); got != "" {
		t.Errorf("ColorFor(unknown) = %q, want empty", got)
	}
}

func TestColorForWrapsPalette(t *testing.T) {
	months := []string{"Jan"}
	var cats []string
	trend := map[string][]float64{}
	for i := 0; i < len(Palette)+2; i++ {
		c := string(rune('A' + i))
		cats = append(cats, c)
		trend[c] = []float64{1}
	}
	ds, err := New(months, cats, trend)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ds.ColorFor(cats[len(Palette)]) != Palette[0] {
		t.Errorf("color for index %d = %q, want %q", len(Palette), ds.ColorFor(cats[len(Palette)]), Palette[0])
	}
	if ds.ColorFor(cats[len(Palette)+1]) != Palette[1] {
		t.Errorf("color for index %d = %q, want %q", len(Palette)+1, ds.ColorFor(cats[len(Palette)+1]), Palette[1])
	}
}

func TestValueDefaultsToZero(t *testing.T) {
	ds := Default()
	tests := []struct {
		cat  string
		idx  int
		want float64
	}{
		{"Rent", 0, 1000},
		{"Travel", 5, 200},
		{"Travel", 6, 0},
		{"Travel", -1, 0},
		{"Unknown", 0, 0},
	}
	for _, tt := range tests {
		if got := ds.Value(tt.cat, tt.idx); got != tt.want {
			t.Errorf("Value(%q, %d) = %.0f, want %.0f", tt.cat, tt.idx, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		value, sum float64
		want       int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1000, 1639, 61},
		{1, 3, 33},
		{2, 3, 67},
		{50, 100, 50},
	}
	for _, tt := range tests {
		if got := Percent(tt.value, tt.sum); got != tt.want {
			t.Errorf("Percent(%.0f, %.0f) = %d, want %d", tt.value, tt.sum, got, tt.want)
		}
	}
}

func TestPercentSumsNearHundred(t *testing.T) {
	ds := Default()
	totals := ds.CurrentTotals()
	sum := ds.SelectedTotal(ds.Categories)

	pctSum := 0
	for _, c := range ds.Categories {
		pctSum += Percent(totals[c], sum)
	}
	// One rounding step per slice at most.
	if pctSum < 100-len(ds.Categories) || pctSum > 100+len(ds.Categories) {
		t.Fatalf("percent sum = %d, want ~100", pctSum)
	}
}

func TestValidateRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name   string
		months []string
		cats   []string
		trend  map[string][]float64
	}{
		{"no months", nil, []string{"A"}, map[string][]float64{"A": {}}},
		{"no categories", []string{"Jan"}, nil, nil},
		{"short series", []string{"Jan", "Feb"}, []string{"A"}, map[string][]float64{"A": {1}}},
		{"missing series", []string{"Jan"}, []string{"A", "B"}, map[string][]float64{"A": {1}}},
		{"duplicate", []string{"Jan"}, []string{"A", "A"}, map[string][]float64{"A": {1}}},
		{"empty name", []string{"Jan"}, []string{""}, map[string][]float64{"": {1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.months, tt.cats, tt.trend)
			if !errors.Is(err, ErrInvalidDataset) {
				t.Fatalf("New err = %v, want ErrInvalidDataset", err)
			}
		})
	}
}

func TestSeriesIsCopy(t *testing.T) {
	ds := Default()
	s := ds.Series("Rent")
	s[0] = -1
	if ds.Trend["Rent"][0] != 1000 {
		t.Fatal("Series returned a view into the dataset")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.toml")
	content := `months = ["Nov 2025", "Dec 2025"]

[[category]]
name = "Rent"
values = [900, 950]

[[category]]
name = "Food"
values = [300, 280.5]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	ds, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(ds.Categories) != 2 || ds.Categories[0] != "Rent" || ds.Categories[1] != "Food" {
		t.Fatalf("Categories = %v, want [Rent Food]", ds.Categories)
	}
	if ds.CurrentMonth() != "Dec 2025" {
		t.Fatalf("CurrentMonth = %q", ds.CurrentMonth())
	}
	if got := ds.SelectedTotal(ds.Categories); got != 1230.5 {
		t.Fatalf("total = %v, want 1230.5", got)
	}
	if ds.MonthIndex("Nov 2025") != 0 || ds.MonthIndex("Jan 2026") != -1 {
		t.Fatal("MonthIndex mismatch")
	}
}

func TestParseRejectsMismatchedLengths(t *testing.T) {
	_, err := Parse([]byte(`months = ["A", "B"]
[[category]]
name = "X"
values = [1]
`))
	if !errors.Is(err, ErrInvalidDataset) {
		t.Fatalf("Parse err = %v, want ErrInvalidDataset", err)
	}
}

func TestLiteralDatasetColors(t *testing.T) {
	ds := &Dataset{
		Months:     []string{"Jan", "Feb"},
		Categories: []string{"A", "B", "C"},
		Trend:      map[string][]float64{"A": {1, 2}, "B": {3, 4}, "C": {5, 6}},
	}
	if err := ds.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for i, c := range ds.Categories {
		if got := ds.ColorFor(c); got != Palette[i] {
			t.Errorf("ColorFor(%q) = %q, want %q", c, got, Palette[i])
		}
		if !ds.Has(c) {
			t.Errorf("Has(%q) = false", c)
		}
	}
	if ds.Has("D") || ds.ColorFor("D") != "" {
		t.Fatal("unknown category reported as present")
	}
}
