package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/spendboard/internal/budget"
	"github.com/theirongolddev/spendboard/internal/cli"
	"github.com/theirongolddev/spendboard/internal/config"
	"github.com/theirongolddev/spendboard/internal/dashboard"
	"github.com/theirongolddev/spendboard/internal/logging"
	"github.com/theirongolddev/spendboard/internal/selection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const builtinSource = "built-in sample"

var (
	flagData  string
	flagQuiet bool
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:          "spendboard",
	Short:        "Personal budgeting dashboard",
	Long:         "Explore monthly spending by category: toggle categories and watch the totals and charts follow.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "TOML dataset file (default: config data_file, then the built-in sample)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to "+config.LogPath())
}

// session is everything a command needs after startup: config, logger, and
// a dashboard controller over the loaded dataset.
type session struct {
	cfg    config.Config
	log    *zap.Logger
	ctrl   *dashboard.Controller
	source string
}

func (s *session) close() {
	_ = s.log.Sync()
}

// loadSession is the shared startup path used by all commands.
func loadSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logOpts := logging.Options{Level: cfg.Logging.Level, File: cfg.Logging.File}
	if flagDebug {
		logOpts.Level = "debug"
		if logOpts.File == "" {
			logOpts.File = config.LogPath()
		}
	}
	log, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded", zap.String("path", config.Path()), zap.Bool("exists", config.Exists()))

	if err := cli.SetLocale(cfg.General.Locale); err != nil {
		return nil, fmt.Errorf("config locale: %w", err)
	}
	if err := cli.SetCurrency(cfg.General.Currency); err != nil {
		return nil, fmt.Errorf("config currency: %w", err)
	}

	path := flagData
	if path == "" {
		path = cfg.General.DataFile
	}
	ds, source := budget.Default(), builtinSource
	if path != "" {
		ds, err = budget.LoadFile(path)
		if err != nil {
			log.Warn("dataset load failed", zap.String("path", path), zap.Error(err))
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		source = path
	}
	log.Info("dataset loaded",
		zap.String("source", source),
		zap.Int("categories", len(ds.Categories)),
		zap.Int("months", len(ds.Months)),
	)

	ctrl, err := dashboard.New(ds, dashboard.Options{
		NoticeTTL: cfg.Dashboard.NoticeTTL(),
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "  Loaded %s: %d categories, %s … %s\n",
			source, len(ds.Categories), ds.Months[0], ds.CurrentMonth())
	}

	return &session{cfg: cfg, log: log, ctrl: ctrl, source: source}, nil
}

// applyOnly narrows the selection to a comma-separated category list. The
// minimum-selection guard still holds; a refused toggle is reported as a
// warning and the command carries on with the selection it kept.
func applyOnly(cmd *cobra.Command, s *session, list string) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var cats []string
	for _, c := range strings.Split(list, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	err := s.ctrl.Only(cats)
	if errors.Is(err, selection.ErrMinSelection) {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.RenderWarning(err.Error()))
		return nil
	}
	return err
}
