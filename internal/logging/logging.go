// Package logging builds the zerolog logger used by the CLI and the MCP server
// and adapts it to the parser.Logger interface consumed by the library packages.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/erraggy/oaspublisher/parser"
)

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output (debug, info, warn, error, disabled)
	Level string

	// Format is the output format (console or json)
	Format string

	// Output is where to write logs. Default: os.Stderr
	Output io.Writer

	// NoColor disables color output in console mode
	NoColor bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Format:  "console",
		Output:  os.Stderr,
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// New creates a zerolog logger from cfg. Empty fields fall back to DefaultConfig.
func New(cfg Config) zerolog.Logger {
	defaults := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = defaults.Level
	}
	if cfg.Output == nil {
		cfg.Output = defaults.Output
	}

	writer := cfg.Output
	if !strings.EqualFold(cfg.Format, "json") {
		writer = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}

	return zerolog.New(writer).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog level. Unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none", "quiet":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Adapter implements parser.Logger on top of a zerolog logger. Attributes are
// slog-style alternating key/value pairs.
type Adapter struct {
	logger zerolog.Logger
}

// NewAdapter wraps logger.
func NewAdapter(logger zerolog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

// Debug implements parser.Logger.
func (a *Adapter) Debug(msg string, attrs ...any) { a.logger.Debug().Fields(attrs).Msg(msg) }

// Info implements parser.Logger.
func (a *Adapter) Info(msg string, attrs ...any) { a.logger.Info().Fields(attrs).Msg(msg) }

// Warn implements parser.Logger.
func (a *Adapter) Warn(msg string, attrs ...any) { a.logger.Warn().Fields(attrs).Msg(msg) }

// Error implements parser.Logger.
func (a *Adapter) Error(msg string, attrs ...any) { a.logger.Error().Fields(attrs).Msg(msg) }

// With implements parser.Logger.
func (a *Adapter) With(attrs ...any) parser.Logger {
	return &Adapter{logger: a.logger.With().Fields(attrs).Logger()}
}

var _ parser.Logger = (*Adapter)(nil)
