package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/spendboard/internal/charts"
	"github.com/theirongolddev/spendboard/internal/cli"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagOnly string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Current-month spending by category",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&flagOnly, "only", "", "Comma-separated categories to keep selected (at least two)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := applyOnly(cmd, s, flagOnly); err != nil {
		return err
	}

	snap := s.ctrl.View()
	pie := snap.Charts.Pie
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("SPENDING  "+snap.KPIMonth))
	fmt.Fprintln(out)

	var values []float64
	if len(pie.Datasets) > 0 {
		values = pie.Datasets[0].Data
	}
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}

	rows := make([][]string, 0, len(pie.Labels)+2)
	for i, label := range pie.Labels {
		color := lipgloss.Color(pie.Datasets[0].Color(i))
		rows = append(rows, []string{
			label,
			cli.FormatCurrency(values[i]),
			cli.FormatPercent(charts.TooltipPercent(pie, i)),
			shareBar(values[i], peak, color),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", cli.FormatCurrency(snap.KPITotal), "", ""},
	)

	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Amount", "Share", ""},
		Rows:    rows,
	}))

	if hidden := hiddenCategories(s); len(hidden) > 0 {
		fmt.Fprintln(out, cli.RenderMuted("  Hidden: "+strings.Join(hidden, ", ")))
	}
	return nil
}

// shareBar is padded to a fixed width so the table's right alignment keeps
// bars flush left.
func shareBar(v, peak float64, color lipgloss.Color) string {
	const barWidth = 20
	bar := cli.RenderHorizontalBar(v, peak, barWidth, color)
	return bar + strings.Repeat(" ", barWidth-lipgloss.Width(bar))
}

func hiddenCategories(s *session) []string {
	var hidden []string
	for _, cat := range s.ctrl.Dataset().Categories {
		if !s.ctrl.Has(cat) {
			hidden = append(hidden, cat)
		}
	}
	return hidden
}
