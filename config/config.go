// Package config loads the tracker's settings from an optional config file,
// a .env file and VACATION_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/warp/leave-tracker/generic"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const (
	configFileName    = "vacation.yaml"
	defaultFilePath   = "vacation.json"
	defaultSQLitePath = "vacation.db"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig
	Ledger  LedgerConfig
	Log     LogConfig
}

// StorageConfig selects where the ledger lives.
type StorageConfig struct {
	Backend string // file, sqlite
	Path    string // ledger file or database path
}

// LedgerConfig holds values applied when a ledger is created.
type LedgerConfig struct {
	UnitHours int // hours per leave day, fixed at init
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stderr, stdout, or file path
}

// Load builds the configuration.
//
// Priority (highest to lowest):
// 1. Environment variables with VACATION_ prefix (e.g., VACATION_STORAGE_PATH),
//    including those set by a .env file in the working directory
// 2. vacation.yaml in the search paths (default: "." and $HOME/.config/vacation)
// 3. Built-in defaults
func Load(searchPaths ...string) (*Config, error) {
	// .env is optional; variables already in the environment win.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if len(searchPaths) == 0 {
		searchPaths = defaultSearchPaths()
	}
	// The ledger is vacation.json, so the config file is looked up by its
	// full name rather than through viper's extension search.
	if path, ok := findConfigFile(searchPaths); ok {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("VACATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Storage: StorageConfig{
			Backend: strings.ToLower(v.GetString("storage.backend")),
			Path:    v.GetString("storage.path"),
		},
		Ledger: LedgerConfig{
			UnitHours: v.GetInt("ledger.unit_hours"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultPath(cfg.Storage.Backend)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.path", "")
	v.SetDefault("ledger.unit_hours", generic.DefaultUnitHours)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
}

// findConfigFile returns the first vacation.yaml found in paths.
func findConfigFile(paths []string) (string, bool) {
	for _, dir := range paths {
		path := filepath.Join(dir, configFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func defaultSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "vacation"))
	}
	return paths
}

func defaultPath(backend string) string {
	if backend == BackendSQLite {
		return defaultSQLitePath
	}
	return defaultFilePath
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be file or sqlite", c.Storage.Backend))
	}
	if c.Storage.Path == "" {
		problems = append(problems, "storage path is required")
	}
	if c.Ledger.UnitHours <= 0 {
		problems = append(problems, fmt.Sprintf("invalid unit hours %d: must be positive", c.Ledger.UnitHours))
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be console or json", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}
