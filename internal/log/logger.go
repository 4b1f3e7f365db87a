// Package log provides the structured diagnostic logger.
//
// Conversion output owns stdout, so diagnostics go to stderr through a
// zerolog console writer. The level defaults to warn and can be raised with
// UNITCONV_LOG_LEVEL or the config file's log_level.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel is the environment variable consulted when Config.Level is empty.
const EnvLevel = "UNITCONV_LOG_LEVEL"

// DefaultLevel applies when neither Config.Level nor EnvLevel parse.
const DefaultLevel = zerolog.WarnLevel

// Config captures options for configuring the global logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	Output io.Writer // optional writer (defaults to os.Stderr)
	JSON   bool      // emit raw JSON lines instead of console formatting
}

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// ParseLevel resolves a level name, falling back to the environment and
// then to DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	if name != "" {
		if parsed, err := zerolog.ParseLevel(name); err == nil {
			return parsed
		}
	}
	if env := os.Getenv(EnvLevel); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			return parsed
		}
	}
	return DefaultLevel
}

// Configure replaces the base logger. Safe to call more than once; the CLI
// configures once with defaults and again after the config file is read.
func Configure(cfg Config) {
	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if !cfg.JSON {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen, NoColor: true}
	}

	l := zerolog.New(writer).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "unitconv").
		Logger()

	mu.Lock()
	base = l
	mu.Unlock()
}

// Base returns the configured base logger instance. Before Configure is
// called it discards everything.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
