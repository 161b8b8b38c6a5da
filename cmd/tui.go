package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendboard/internal/config"
	"github.com/theirongolddev/spendboard/internal/tui"
	"github.com/theirongolddev/spendboard/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagExportDir string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.Flags().StringVar(&flagExportDir, "export-dir", "charts", "Directory for charts exported with [e]")
	tuiCmd.Flags().StringVar(&flagExportDir, "export-dir", "charts", "Directory for charts exported with [e]")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes.
	// Without this, lipgloss may default to Ascii profile (no colors).
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s.ctrl, tui.Options{
		Config:    s.cfg,
		NeedSetup: !config.Exists(),
		Source:    s.source,
		ExportDir: flagExportDir,
		Logger:    s.log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
