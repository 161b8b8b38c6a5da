package png

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/spendboard/internal/budget"
	"github.com/theirongolddev/spendboard/internal/charts"
	"github.com/theirongolddev/spendboard/internal/selection"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderAllCharts(t *testing.T) {
	ds := budget.Default()
	set := charts.Build(ds, selection.New(ds.Categories))
	r := New(640, 400)

	for _, cfg := range []charts.Config{set.Pie, set.Bar, set.Line} {
		var buf bytes.Buffer
		if err := r.Render(&buf, cfg); err != nil {
			t.Fatalf("Render(%s): %v", cfg.Type, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Fatalf("Render(%s) did not produce a PNG", cfg.Type)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	r := New(0, 0)
	if r.Width != 800 || r.Height != 480 {
		t.Fatalf("default size = %dx%d", r.Width, r.Height)
	}
	err := r.Render(&bytes.Buffer{}, charts.Config{Type: charts.Bar})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Render(empty) err = %v, want ErrNoData", err)
	}
}

func TestHexColor(t *testing.T) {
	c := hexColor("#4E79A7")
	if c.R != 0x4E || c.G != 0x79 || c.B != 0xA7 {
		t.Fatalf("hexColor = %+v", c)
	}
	if !hexColor("").IsZero() {
		t.Fatal("hexColor(\"\") should be zero")
	}
}

func TestExportSet(t *testing.T) {
	ds := budget.Default()
	set := charts.Build(ds, selection.New(ds.Categories))
	dir := filepath.Join(t.TempDir(), "out")

	files, err := New(320, 240).ExportSet(dir, set)
	if err != nil {
		t.Fatalf("ExportSet: %v", err)
	}
	want := []string{"pie.png", "bar.png", "line.png"}
	if len(files) != len(want) {
		t.Fatalf("files = %v", files)
	}
	for i, name := range want {
		if filepath.Base(files[i]) != name {
			t.Errorf("files[%d] = %s, want %s", i, files[i], name)
		}
		data, err := os.ReadFile(files[i])
		if err != nil {
			t.Fatalf("reading %s: %v", files[i], err)
		}
		if !bytes.HasPrefix(data, pngMagic) {
			t.Errorf("%s is not a PNG", name)
		}
	}
}

func mustDataset(t *testing.T, months []string, trend map[string][]float64) *budget.Dataset {
	t.Helper()
	cats := []string{"A", "B"}
	ds, err := budget.New(months, cats, trend)
	if err != nil {
		t.Fatalf("budget.New: %v", err)
	}
	return ds
}

func TestRenderEdgeDatasets(t *testing.T) {
	tests := []struct {
		name   string
		months []string
		trend  map[string][]float64
	}{
		{"zero current month", []string{"Dec", "Jan"}, map[string][]float64{"A": {5, 0}, "B": {7, 0}}},
		{"single month", []string{"Jan"}, map[string][]float64{"A": {5}, "B": {7}}},
		{"single zero month", []string{"Jan"}, map[string][]float64{"A": {0}, "B": {0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := mustDataset(t, tt.months, tt.trend)
			set := charts.Build(ds, selection.New(ds.Categories))
			r := New(320, 240)
			for _, cfg := range []charts.Config{set.Pie, set.Bar, set.Line} {
				var buf bytes.Buffer
				if err := r.Render(&buf, cfg); err != nil {
					t.Fatalf("Render(%s): %v", cfg.Type, err)
				}
				if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
					t.Fatalf("Render(%s) did not produce a PNG", cfg.Type)
				}
			}

			dir := t.TempDir()
			files, err := r.ExportSet(dir, set)
			if err != nil || len(files) != 3 {
				t.Fatalf("ExportSet = %v, %v", files, err)
			}
		})
	}
}

func TestExportSetFailureWritesNothing(t *testing.T) {
	ds := budget.Default()
	set := charts.Build(ds, selection.New(ds.Categories))
	set.Line = charts.Config{Type: charts.Line}
	dir := filepath.Join(t.TempDir(), "out")

	files, err := New(320, 240).ExportSet(dir, set)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("ExportSet err = %v, want ErrNoData", err)
	}
	if files != nil {
		t.Fatalf("files = %v, want none", files)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("export dir created despite failure: %v", err)
	}
}
