package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/theirongolddev/spendboard/internal/cli"
	"github.com/theirongolddev/spendboard/internal/config"
	"github.com/theirongolddev/spendboard/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	prompt := func() string {
		fmt.Fprint(out, "     > ")
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	// Load existing config or defaults
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(out, cli.RenderWarning(fmt.Sprintf(
			"  Could not read %s (%v). Starting from defaults; saving will replace it.", config.Path(), err)))
		cfg = config.DefaultConfig()
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to spendboard!")
	fmt.Fprintln(out)

	// 1. Theme
	fmt.Fprintln(out, "  1. Color theme")
	for i, th := range theme.All {
		mark := ""
		if th.Name == cfg.Appearance.Theme {
			mark = " [current]"
		}
		fmt.Fprintf(out, "     (%d) %s%s\n", i+1, th.Name, mark)
	}
	if choice := prompt(); choice != "" {
		var n int
		if _, err := fmt.Sscanf(choice, "%d", &n); err == nil && n >= 1 && n <= len(theme.All) {
			cfg.Appearance.Theme = theme.All[n-1].Name
		} else {
			fmt.Fprintln(out, cli.RenderWarning("     Unknown choice, keeping "+cfg.Appearance.Theme))
		}
	}
	fmt.Fprintln(out)

	// 2. Locale
	fmt.Fprintln(out, "  2. Number format locale (BCP 47, e.g. en-US, de-DE)")
	fmt.Fprintf(out, "     Current: %s\n", cfg.General.Locale)
	if tag := prompt(); tag != "" {
		if _, err := cli.ParseLocale(tag); err != nil {
			fmt.Fprintln(out, cli.RenderWarning("     "+err.Error()+", keeping "+cfg.General.Locale))
		} else {
			cfg.General.Locale = tag
		}
	}
	fmt.Fprintln(out)

	// 3. Legend
	fmt.Fprintln(out, "  3. Start with the category legend expanded? (y/n)")
	switch strings.ToLower(prompt()) {
	case "y", "yes":
		cfg.Dashboard.LegendExpanded = true
	case "n", "no":
		cfg.Dashboard.LegendExpanded = false
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.ConfigPath())
	fmt.Fprintln(out, "  Run `spendboard setup` anytime to reconfigure.")
	fmt.Fprintln(out)

	return nil
}
