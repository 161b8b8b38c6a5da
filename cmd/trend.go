package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendboard/internal/cli"

	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Month-by-month spending for the selected categories",
	RunE:  runTrend,
}

func init() {
	trendCmd.Flags().StringVar(&flagOnly, "only", "", "Comma-separated categories to keep selected (at least two)")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := applyOnly(cmd, s, flagOnly); err != nil {
		return err
	}

	ds := s.ctrl.Dataset()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("MONTHLY TREND  %s … %s", ds.Months[0], ds.CurrentMonth())))
	fmt.Fprintln(out)

	headers := append([]string{"Category"}, ds.Months...)
	headers = append(headers, "Trend")

	totals := make([]float64, len(ds.Months))
	var rows [][]string
	for _, cat := range s.ctrl.Selected() {
		row := []string{cat}
		for i := range ds.Months {
			v := ds.Value(cat, i)
			totals[i] += v
			row = append(row, cli.FormatCurrency(v))
		}
		rows = append(rows, append(row, cli.RenderSparkline(ds.Series(cat))))
	}

	total := []string{"Total"}
	for _, v := range totals {
		total = append(total, cli.FormatCurrency(v))
	}
	rows = append(rows, []string{"---"}, append(total, cli.RenderSparkline(totals)))

	fmt.Fprint(out, cli.RenderTable(cli.Table{Headers: headers, Rows: rows}))
	return nil
}
