package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultNoticeMS is how long a warning notice stays on screen.
const DefaultNoticeMS = 2200

// Config holds all spendboard configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Dashboard  DashboardConfig  `toml:"dashboard"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataFile string `toml:"data_file,omitempty"`
	Locale   string `toml:"locale"`
	Currency string `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DashboardConfig holds interactive dashboard preferences.
type DashboardConfig struct {
	LegendExpanded bool `toml:"legend_expanded"`
	NoticeMS       int  `toml:"notice_ms"`
}

// LoggingConfig controls the debug log written while the dashboard runs.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Locale:   "en-US",
			Currency: "USD",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Dashboard: DashboardConfig{
			LegendExpanded: true,
			NoticeMS:       DefaultNoticeMS,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// NoticeTTL returns the notice lifetime, falling back to the default for
// non-positive values.
func (d DashboardConfig) NoticeTTL() time.Duration {
	if d.NoticeMS <= 0 {
		return DefaultNoticeMS * time.Millisecond
	}
	return time.Duration(d.NoticeMS) * time.Millisecond
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendboard")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendboard")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Path is an alias for ConfigPath.
func Path() string {
	return ConfigPath()
}

// LogPath returns the debug log location used when no file is configured.
func LogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendboard", "spendboard.log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "spendboard", "spendboard.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
