package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for rce, stored in ~/.rce/config.yaml.
type Config struct {
	// DataDir is the directory scanned for entry files. A leading ~/ is
	// expanded to the home directory.
	DataDir string `yaml:"data_dir"`
	// Extension selects entry files by extension, without the dot.
	Extension string `yaml:"extension"`
	// HorizonDays is how far ahead `list` and `export` look.
	HorizonDays int `yaml:"horizon_days"`
	// NameStyle is "nickname" or "full".
	NameStyle string `yaml:"name_style"`
	// NoColor disables coloured output.
	NoColor bool `yaml:"no_color"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Workers bounds how many entry files are parsed concurrently.
	Workers int `yaml:"workers"`

	Watch WatchConfig `yaml:"watch"`
	ICS   ICSConfig   `yaml:"ics"`
}

// WatchConfig holds the `rce watch` settings.
type WatchConfig struct {
	// Schedule is a standard 5-field cron expression.
	Schedule string `yaml:"schedule"`
}

// ICSConfig holds iCalendar export settings.
type ICSConfig struct {
	CalendarName string `yaml:"calendar_name"`
	// Reminder is an ISO-8601 duration such as "-P1D". Empty disables alarms.
	Reminder string `yaml:"reminder"`
}

const (
	DefaultDataDir      = "~/.rce/data"
	DefaultExtension    = "rce"
	DefaultHorizonDays  = 30
	DefaultNameStyle    = "nickname"
	DefaultLogLevel     = "info"
	DefaultWorkers      = 4
	DefaultSchedule     = "0 8 * * *"
	DefaultCalendarName = "Recurring dates"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		DataDir:     DefaultDataDir,
		Extension:   DefaultExtension,
		HorizonDays: DefaultHorizonDays,
		NameStyle:   DefaultNameStyle,
		LogLevel:    DefaultLogLevel,
		Workers:     DefaultWorkers,
		Watch:       WatchConfig{Schedule: DefaultSchedule},
		ICS:         ICSConfig{CalendarName: DefaultCalendarName},
	}
}

// configTemplate is the annotated config written on first run.
const configTemplate = `# rce configuration - ~/.rce/config.yaml
#
# All settings are optional; the defaults below are used for anything left
# out. RCE_DATA_DIR and RCE_LOG_LEVEL override the matching keys.

# Directory scanned for entry files, and the extension they carry.
data_dir: ~/.rce/data
extension: rce

# Number of days ahead shown by "rce list" and "rce export".
horizon_days: 30

# How people are named in events:
#   nickname - nickname, else "first last", else first name
#   full     - "first last", else first name, else nickname
name_style: nickname

# Disable coloured output.
no_color: false

# debug, info, warn or error.
log_level: info

# Entry files parsed concurrently.
workers: 4

watch:
  # Cron expression for "rce watch" (minute hour day-of-month month day-of-week).
  schedule: "0 8 * * *"

ics:
  calendar_name: Recurring dates
  # ISO-8601 duration before each event for a reminder alarm, e.g. "-P1D".
  # Leave empty for no alarms.
  reminder: ""
`

// DefaultPath returns the path to ~/.rce/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".rce", "config.yaml"), nil
}

// Load reads the config at path (DefaultPath when empty), creating it with
// annotated defaults on first run. Environment overrides are applied last.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return finish(defaultConfig()), err
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return finish(defaultConfig()), nil
	}
	if err != nil {
		return finish(defaultConfig()), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return finish(defaultConfig()), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	cfg.Normalize()
	return finish(cfg), nil
}

// Normalize fills zero-value fields with built-in defaults so callers always
// get a usable Config even if the user only partially fills in the file.
func (c *Config) Normalize() {
	d := defaultConfig()
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.Extension == "" {
		c.Extension = d.Extension
	}
	c.Extension = strings.TrimPrefix(c.Extension, ".")
	if c.HorizonDays <= 0 {
		c.HorizonDays = d.HorizonDays
	}
	switch c.NameStyle {
	case "nickname", "full":
	default:
		c.NameStyle = d.NameStyle
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.Watch.Schedule == "" {
		c.Watch.Schedule = d.Watch.Schedule
	}
	if c.ICS.CalendarName == "" {
		c.ICS.CalendarName = d.ICS.CalendarName
	}
}

// finish applies environment overrides and expands the data directory.
func finish(cfg Config) Config {
	cfg.DataDir = getEnv("RCE_DATA_DIR", cfg.DataDir)
	cfg.LogLevel = getEnv("RCE_LOG_LEVEL", cfg.LogLevel)
	cfg.DataDir = ExpandHome(cfg.DataDir)
	return cfg
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
