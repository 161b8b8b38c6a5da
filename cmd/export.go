package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/spendboard/internal/charts/png"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagOut    string
	flagWidth  int
	flagHeight int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dashboard charts as PNG images",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "charts", "Output directory")
	exportCmd.Flags().IntVar(&flagWidth, "width", 800, "Image width in pixels")
	exportCmd.Flags().IntVar(&flagHeight, "height", 480, "Image height in pixels")
	exportCmd.Flags().StringVar(&flagOnly, "only", "", "Comma-separated categories to keep selected (at least two)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := applyOnly(cmd, s, flagOnly); err != nil {
		return err
	}

	files, err := png.New(flagWidth, flagHeight).ExportSet(flagOut, s.ctrl.View().Charts)
	if err != nil {
		s.log.Warn("export failed", zap.String("dir", flagOut), zap.Error(err))
		return fmt.Errorf("exporting charts: %w", err)
	}
	s.log.Info("export written", zap.String("dir", flagOut), zap.Strings("files", files))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Saved %d charts to %s\n", len(files), flagOut)
	if !flagQuiet {
		for _, f := range files {
			fmt.Fprintf(out, "    %s\n", filepath.Base(f))
		}
	}
	return nil
}
