package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/pawlog/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Storage backends accepted by storage_backend
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the application configuration
type Config struct {
	// StorageBackend selects where the activity log is kept (file, sqlite or memory)
	StorageBackend string `toml:"storage_backend"`
	// DataDir is the directory holding the activity log. Empty means the config directory.
	DataDir string `toml:"data_dir"`
	// Timezone decides what "today" means (IANA timezone name, e.g., "Europe/Oslo")
	Timezone string `toml:"timezone"`
	// ClockFormat is "24h" (14:05) or "12h" (02:05 PM) for entry times
	ClockFormat string `toml:"clock_format"`
	// Theme is the bubbletint theme used by the TUI
	Theme string `toml:"theme"`
	// LogLevel is the minimum level written to stderr (debug, info, warn, error)
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
// - storage_backend: "file"
// - timezone: "Local" (use system local timezone)
// - clock_format: "24h"
// - theme: "dracula"
// - log_level: "warn"
func DefaultConfig() Config {
	return Config{
		StorageBackend: BackendFile,
		DataDir:        "",
		Timezone:       "Local",
		ClockFormat:    "24h",
		Theme:          "dracula",
		LogLevel:       "warn",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	return osutil.AppFile(ConfigFile)
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if it exists and returns defaults otherwise.
// An existing but invalid file is still an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}
	return Load(path)
}

// Normalize lower-cases enumerated values and fills empty ones with defaults
func (c *Config) Normalize() {
	def := DefaultConfig()

	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	if c.StorageBackend == "" {
		c.StorageBackend = def.StorageBackend
	}
	c.ClockFormat = strings.ToLower(strings.TrimSpace(c.ClockFormat))
	if c.ClockFormat == "" {
		c.ClockFormat = def.ClockFormat
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	c.DataDir = strings.TrimSpace(c.DataDir)
}

// Validate checks that all values are usable
func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid storage_backend %q: must be %q, %q or %q", c.StorageBackend, BackendFile, BackendSQLite, BackendMemory)
	}

	if c.ClockFormat != "24h" && c.ClockFormat != "12h" {
		return fmt.Errorf("invalid clock_format %q: must be \"24h\" or \"12h\"", c.ClockFormat)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Location resolves the configured timezone
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ParseLogLevel converts a log_level value to a slog level
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", level)
}

// ResolveDataDir returns DataDir, or the config directory when DataDir is empty.
// The directory is created if it doesn't exist.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir == "" {
		return osutil.AppDir()
	}
	if err := osutil.Provider.MkdirAll(c.DataDir, 0755); err != nil {
		return "", err
	}
	return c.DataDir, nil
}

// GenerateSampleConfig returns a commented config file with default values
func GenerateSampleConfig() string {
	return `# pawlog configuration file

# Where the activity log is kept: "file", "sqlite" or "memory"
storage_backend = "file"

# Directory for the activity log (empty = next to this file)
data_dir = ""

# Timezone that decides which entries belong to "today"
# IANA timezone name (e.g., "Europe/Oslo") or "Local"
timezone = "Local"

# Entry time format: "24h" (14:05) or "12h" (02:05 PM)
clock_format = "24h"

# TUI theme (any bubbletint theme id, e.g., "dracula", "nord")
theme = "dracula"

# Minimum log level written to stderr: debug, info, warn, error
log_level = "warn"
`
}
