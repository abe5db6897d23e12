// ABOUTME: Drinks configuration management with backend selection.
// ABOUTME: JSON file at XDG config, DRINKS_* environment overrides, and the storage factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/harperreed/drinks/internal/kv"
	"github.com/harperreed/drinks/internal/storage"
)

// Backend names.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// CharmDBName is the Charm KV database the charm backend opens.
const CharmDBName = "drinks"

// Config stores drinks tool configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite",
	// "charm", or "memory".
	Backend string `json:"backend,omitempty" env:"DRINKS_BACKEND"`

	// DataDir is the root directory for data storage.
	// Badger keeps its files in DataDir/badger; SQLite uses DataDir/drinks.db.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/drinks.
	DataDir string `json:"data_dir,omitempty" env:"DRINKS_DATA_DIR"`

	// WeekStart is "sunday" (default) or "monday".
	WeekStart string `json:"week_start,omitempty" env:"DRINKS_WEEK_START"`

	// Timezone is an IANA zone name; empty means the system zone.
	Timezone string `json:"timezone,omitempty" env:"DRINKS_TIMEZONE"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty" env:"DRINKS_LOG_LEVEL"`

	// CharmHost overrides the charm server for the charm backend.
	CharmHost string `json:"charm_host,omitempty" env:"DRINKS_CHARM_HOST"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendBadger
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetWeekStart returns the first day of the week.
func (c *Config) GetWeekStart() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.WeekStart)) {
	case "", "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("unknown week_start: %q", c.WeekStart)
	}
}

// GetLocation loads the configured time zone, defaulting to time.Local.
func (c *Config) GetLocation() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// GetLogLevel parses the configured log level, defaulting to warn.
func (c *Config) GetLogLevel() (log.Level, error) {
	if c.LogLevel == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("parse log_level: %w", err)
	}
	return lvl, nil
}

// NewLogger builds the structured stderr logger at the configured level.
func (c *Config) NewLogger() *log.Logger {
	lvl, err := c.GetLogLevel()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		Prefix:          "drinks",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	if err != nil {
		logger.Warn("falling back to warn level", "err", err)
	}
	return logger
}

// DefaultDataDir returns the XDG data directory for drinks.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "drinks")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// BackendPath returns where the selected local backend keeps its data:
// a directory for badger, a file for sqlite. It is empty for charm and memory.
func (c *Config) BackendPath() string {
	switch c.GetBackend() {
	case BackendBadger:
		return filepath.Join(c.GetDataDir(), "badger")
	case BackendSQLite:
		return filepath.Join(c.GetDataDir(), "drinks.db")
	default:
		return ""
	}
}

// OpenKV opens the raw key/value backend selected by the config.
func (c *Config) OpenKV(logger *log.Logger) (kv.Store, error) {
	switch c.GetBackend() {
	case BackendBadger:
		return kv.OpenBadger(c.BackendPath(), logger)
	case BackendSQLite:
		return kv.OpenSQLite(c.BackendPath())
	case BackendCharm:
		return kv.OpenCharm(CharmDBName, c.CharmHost)
	case BackendMemory:
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage(logger *log.Logger) (*storage.Store, error) {
	backend, err := c.OpenKV(logger)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", c.GetBackend(), err)
	}
	return storage.New(backend, logger), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "drinks", "config.json")
}

// Load reads config from disk, then applies DRINKS_* environment overrides.
func Load() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(GetConfigPath())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays set DRINKS_* variables onto cfg. Unset variables leave
// the file values in place.
func ApplyEnv(cfg *Config) error {
	var overrides Config
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overrides.Backend != "" {
		cfg.Backend = overrides.Backend
	}
	if overrides.DataDir != "" {
		cfg.DataDir = overrides.DataDir
	}
	if overrides.WeekStart != "" {
		cfg.WeekStart = overrides.WeekStart
	}
	if overrides.Timezone != "" {
		cfg.Timezone = overrides.Timezone
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	if overrides.CharmHost != "" {
		cfg.CharmHost = overrides.CharmHost
	}
	return nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
