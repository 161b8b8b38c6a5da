package tui

import (
	"github.com/theirongolddev/spendboard/internal/charts"
	"github.com/theirongolddev/spendboard/internal/charts/png"

	tea "github.com/charmbracelet/bubbletea"
)

// exportDoneMsg reports the result of a background PNG export.
type exportDoneMsg struct {
	dir   string
	files []string
	err   error
}

// exportChartsCmd renders the given chart set to PNG files off the update
// loop. The set is a snapshot, so later toggles do not affect it.
func exportChartsCmd(set charts.Set, dir string) tea.Cmd {
	return func() tea.Msg {
		files, err := png.New(0, 0).ExportSet(dir, set)
		return exportDoneMsg{dir: dir, files: files, err: err}
	}
}
