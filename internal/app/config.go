package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/corey/unitconv/internal/adapters/bbolt"
	"github.com/corey/unitconv/internal/domain/report"
	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied on top of the config file.
const (
	EnvPrecision    = "UNITCONV_PRECISION"
	EnvFormat       = "UNITCONV_FORMAT"
	EnvHistory      = "UNITCONV_HISTORY"
	EnvHistoryLimit = "UNITCONV_HISTORY_LIMIT"
	EnvLogLevel     = "UNITCONV_LOG_LEVEL"
)

// maxPrecision bounds fixed-decimal output; float64 carries ~17 significant digits.
const maxPrecision = 17

// Config holds user settings, read from config.yaml and the environment.
type Config struct {
	Precision    int               `yaml:"precision"`
	Format       string            `yaml:"format"`
	History      bool              `yaml:"history"`
	HistoryLimit int               `yaml:"history_limit"`
	LogLevel     string            `yaml:"log_level"`
	Aliases      map[string]string `yaml:"aliases,omitempty"`
}

// DefaultConfig returns the settings used when no file or override is present.
func DefaultConfig() Config {
	return Config{
		Precision:    -1,
		Format:       report.FormatText,
		History:      false,
		HistoryLimit: bbolt.DefaultLimit,
		LogLevel:     "warn",
	}
}

// LoadConfig reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPrecision); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q", EnvPrecision, v)
		}
		c.Precision = n
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvHistory); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q", EnvHistory, v)
		}
		c.History = b
	}
	if v := os.Getenv(EnvHistoryLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q", EnvHistoryLimit, v)
		}
		c.HistoryLimit = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Precision < -1 || c.Precision > maxPrecision {
		return fmt.Errorf("precision must be between -1 and %d, got %d", maxPrecision, c.Precision)
	}
	switch c.Format {
	case report.FormatText, report.FormatJSON:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", report.FormatText, report.FormatJSON, c.Format)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// Formatter returns the report formatter these settings describe.
func (c Config) Formatter() report.Formatter {
	return report.Formatter{Precision: c.Precision, Format: c.Format}
}

// Marshal renders the effective settings as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ErrConfigExists is returned by WriteConfig when the file is present and
// overwrite is false.
var ErrConfigExists = errors.New("config file already exists")

// WriteConfig atomically writes cfg to path as YAML, creating the directory.
func WriteConfig(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
