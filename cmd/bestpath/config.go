package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix of every environment variable read into Config.
const envPrefix = "BESTPATH"

// Config validation errors
var (
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
	ErrInvalidTimeout   = errors.New("timeout must not be negative")
)

// Config holds settings shared by every subcommand. Values come from the
// environment (optionally seeded from a .env file) and are overridden by
// explicitly set flags.
type Config struct {
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string        `envconfig:"LOG_FORMAT" default:"console"`
	MetricsFile string        `envconfig:"METRICS_FILE"`
	Trace       bool          `envconfig:"TRACE" default:"false"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"0s"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadConfig reads envFile into the process environment when it exists,
// then decodes BESTPATH_* variables. A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := DefaultConfig()
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	if cfg.Timeout < 0 {
		return ErrInvalidTimeout
	}
	return nil
}
