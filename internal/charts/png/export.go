package png

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/spendboard/internal/charts"
)

// ExportSet writes pie.png, bar.png, and line.png for set into dir, creating
// dir if needed. It returns the paths written, in that order. Every chart is
// rendered before any file is created, so a failure leaves nothing behind.
func (r *Renderer) ExportSet(dir string, set charts.Set) ([]string, error) {
	files := []struct {
		name string
		cfg  charts.Config
		buf  bytes.Buffer
	}{
		{name: "pie.png", cfg: set.Pie},
		{name: "bar.png", cfg: set.Bar},
		{name: "line.png", cfg: set.Line},
	}
	for i := range files {
		if err := r.Render(&files[i].buf, files[i].cfg); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", files[i].name, err)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}
	written := make([]string, 0, len(files))
	for i := range files {
		path := filepath.Join(dir, files[i].name)
		if err := os.WriteFile(path, files[i].buf.Bytes(), 0o644); err != nil { //nolint:gosec // path is built from the user's export dir
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
