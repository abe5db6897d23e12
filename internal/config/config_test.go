// ABOUTME: Tests for drinks configuration management.
// ABOUTME: Covers load, save, env overrides, defaults, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, name := range []string{
		"DRINKS_BACKEND", "DRINKS_DATA_DIR", "DRINKS_WEEK_START",
		"DRINKS_TIMEZONE", "DRINKS_LOG_LEVEL", "DRINKS_CHARM_HOST",
	} {
		t.Setenv(name, "")
	}
	return dir
}

func TestGetBackend(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{"", BackendBadger},
		{"sqlite", BackendSQLite},
		{"SQLite", BackendSQLite},
		{"charm", BackendCharm},
		{"memory", BackendMemory},
	}
	for _, tt := range tests {
		cfg := &Config{Backend: tt.backend}
		if got := cfg.GetBackend(); got != tt.want {
			t.Errorf("GetBackend(%q) = %q, want %q", tt.backend, got, tt.want)
		}
	}
}

func TestGetDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := (&Config{}).GetDataDir(); got != "/tmp/xdg-data/drinks" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/xdg-data/drinks")
	}

	cfg := &Config{DataDir: "/tmp/drinks-test"}
	if got := cfg.GetDataDir(); got != "/tmp/drinks-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/drinks-test")
	}

	home, _ := os.UserHomeDir()
	cfg = &Config{DataDir: "~/drinks-data"}
	if got, want := cfg.GetDataDir(), filepath.Join(home, "drinks-data"); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/drinks", filepath.Join(home, "data/drinks")},
		{"data/drinks", "data/drinks"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetWeekStart(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"", time.Sunday, false},
		{"sunday", time.Sunday, false},
		{"Monday", time.Monday, false},
		{"mon", time.Monday, false},
		{"friday", time.Sunday, true},
	}
	for _, tt := range tests {
		got, err := (&Config{WeekStart: tt.in}).GetWeekStart()
		if (err != nil) != tt.wantErr {
			t.Errorf("GetWeekStart(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("GetWeekStart(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetLocation(t *testing.T) {
	loc, err := (&Config{}).GetLocation()
	if err != nil || loc != time.Local {
		t.Errorf("GetLocation() = (%v, %v), want Local", loc, err)
	}

	loc, err = (&Config{Timezone: "UTC"}).GetLocation()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("GetLocation(UTC) = (%v, %v)", loc, err)
	}

	if _, err := (&Config{Timezone: "Not/AZone"}).GetLocation(); err == nil {
		t.Error("expected error for unknown zone")
	}
}

func TestGetLogLevel(t *testing.T) {
	lvl, err := (&Config{}).GetLogLevel()
	if err != nil || lvl != log.WarnLevel {
		t.Errorf("GetLogLevel() = (%v, %v), want warn", lvl, err)
	}

	lvl, err = (&Config{LogLevel: "debug"}).GetLogLevel()
	if err != nil || lvl != log.DebugLevel {
		t.Errorf("GetLogLevel(debug) = (%v, %v), want debug", lvl, err)
	}

	if _, err := (&Config{LogLevel: "loud"}).GetLogLevel(); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	isolateConfig(t)

	cfg := &Config{
		Backend:   "sqlite",
		DataDir:   "/tmp/drinks-data",
		WeekStart: "monday",
		Timezone:  "UTC",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolateConfig(t)

	if err := (&Config{Backend: "sqlite", WeekStart: "monday"}).Save(); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DRINKS_BACKEND", "memory")
	t.Setenv("DRINKS_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Backend != "memory" {
		t.Errorf("Backend = %q, want memory", cfg.Backend)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.WeekStart != "monday" {
		t.Errorf("WeekStart = %q, want monday from file", cfg.WeekStart)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := isolateConfig(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "nonexistent"))

	if err := (&Config{Backend: "sqlite"}).Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "nonexistent", "drinks")); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := isolateConfig(t)

	configDir := filepath.Join(dir, "drinks")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	dir := isolateConfig(t)

	want := filepath.Join(dir, "drinks", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStorageBackends(t *testing.T) {
	for _, backend := range []string{"", BackendBadger, BackendSQLite, BackendMemory} {
		t.Run("backend="+backend, func(t *testing.T) {
			dir := t.TempDir()
			cfg := &Config{Backend: backend, DataDir: dir}

			repo, err := cfg.OpenStorage(nil)
			if err != nil {
				t.Fatalf("OpenStorage() failed: %v", err)
			}
			defer repo.Close()
		})
	}
}

func TestOpenStorageSQLiteCreatesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Backend: BackendSQLite, DataDir: dir}

	repo, err := cfg.OpenStorage(nil)
	if err != nil {
		t.Fatalf("OpenStorage() failed: %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(filepath.Join(dir, "drinks.db")); os.IsNotExist(err) {
		t.Error("Expected drinks.db to be created")
	}
}

func TestOpenStorageInvalidBackend(t *testing.T) {
	cfg := &Config{Backend: "invalid", DataDir: t.TempDir()}

	if _, err := cfg.OpenStorage(nil); err == nil {
		t.Error("Expected error for invalid backend")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}

func TestBackendPath(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{"badger", filepath.Join("/data", "badger")},
		{"sqlite", filepath.Join("/data", "drinks.db")},
		{"charm", ""},
		{"memory", ""},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := &Config{Backend: tt.backend, DataDir: "/data"}
			if got := cfg.BackendPath(); got != tt.want {
				t.Errorf("BackendPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
