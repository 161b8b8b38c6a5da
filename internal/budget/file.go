package budget

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileFormat is the on-disk TOML shape of a dataset:
//
//	months = ["Aug 2025", "Sep 2025"]
//
//	[[category]]
//	name   = "Rent"
//	values = [1000, 1000]
type fileFormat struct {
	Months     []string       `toml:"months"`
	Categories []fileCategory `toml:"category"`
}

type fileCategory struct {
	Name   string    `toml:"name"`
	Values []float64 `toml:"values"`
}

// LoadFile reads a dataset from a TOML file. Category order in the file is
// the display order.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the local user
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML dataset.
func Parse(data []byte) (*Dataset, error) {
	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	categories := make([]string, 0, len(f.Categories))
	trend := make(map[string][]float64, len(f.Categories))
	for _, c := range f.Categories {
		categories = append(categories, c.Name)
		trend[c.Name] = c.Values
	}
	return New(f.Months, categories, trend)
}
