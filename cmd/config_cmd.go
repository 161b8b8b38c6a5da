// Package cmd implements the spendboard CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendboard/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	if cfg.General.DataFile != "" {
		fmt.Fprintf(out, "    Data file: %s\n", cfg.General.DataFile)
	} else {
		fmt.Fprintf(out, "    Data file: %s\n", builtinSource)
	}
	fmt.Fprintf(out, "    Locale:    %s\n", cfg.General.Locale)
	fmt.Fprintf(out, "    Currency:  %s\n", cfg.General.Currency)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Dashboard]")
	fmt.Fprintf(out, "    Legend expanded: %v\n", cfg.Dashboard.LegendExpanded)
	fmt.Fprintf(out, "    Notice duration: %s\n", cfg.Dashboard.NoticeTTL())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Logging]")
	fmt.Fprintf(out, "    Level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fmt.Fprintf(out, "    File:  %s\n", cfg.Logging.File)
	} else {
		fmt.Fprintf(out, "    File:  off (--debug writes %s)\n", config.LogPath())
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `spendboard setup` to reconfigure.")
	return nil
}
