// Package config loads brickgame settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the full application configuration.
type Config struct {
	LogLevel       string        `yaml:"log_level" env:"BRICKGAME_LOG_LEVEL"`
	PollIntervalMS int           `yaml:"poll_interval_ms" env:"BRICKGAME_POLL_MS"`
	Seed           int64         `yaml:"seed" env:"BRICKGAME_SEED"`
	Storage        StorageConfig `yaml:"storage"`
	UI             UIConfig      `yaml:"ui"`
}

// StorageConfig selects the high-score backend.
type StorageConfig struct {
	Backend   string `yaml:"backend" env:"BRICKGAME_STORAGE"` // file, sqlite, redis, memory
	DataDir   string `yaml:"data_dir" env:"BRICKGAME_DATA_DIR"`
	DBPath    string `yaml:"db_path" env:"BRICKGAME_DB_PATH"`
	RedisAddr string `yaml:"redis_addr" env:"BRICKGAME_REDIS_ADDR"`
}

// UIConfig holds terminal frontend settings.
type UIConfig struct {
	ShowHelp bool   `yaml:"show_help" env:"BRICKGAME_SHOW_HELP"`
	LogFile  string `yaml:"log_file" env:"BRICKGAME_LOG_FILE"`
}

var backends = map[string]bool{
	"file":   true,
	"sqlite": true,
	"redis":  true,
	"memory": true,
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:       "info",
		PollIntervalMS: 20,
		Storage: StorageConfig{
			Backend:   "file",
			DataDir:   "~/.brickgame",
			DBPath:    "~/.brickgame/brickgame.db",
			RedisAddr: "localhost:6379",
		},
		UI: UIConfig{
			ShowHelp: true,
			LogFile:  "~/.brickgame/brickgame.log",
		},
	}
}

// PollInterval returns the frontend polling period.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// Validate checks values the loader cannot type-check.
func (c Config) Validate() error {
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("config: poll_interval_ms must be positive, got %d", c.PollIntervalMS)
	}
	if !backends[c.Storage.Backend] {
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}
