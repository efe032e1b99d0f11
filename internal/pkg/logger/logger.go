package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Format selects how log lines are rendered
type Format string

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = "json"
	// FormatText writes colored console lines for local development
	FormatText Format = "text"
)

// Config represents logger configuration
type Config struct {
	// Level is one of debug, info, warn, error or fatal. Anything else means info.
	Level string
	// Format defaults to JSON
	Format Format
	// Output is the output writer (defaults to os.Stdout)
	Output io.Writer
	// Service, when set, is stamped on every line
	Service string
}

var levels = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
	"fatal": zerolog.FatalLevel,
}

// defaultLogger backs the package-level helpers
var defaultLogger zerolog.Logger

// ParseLevel returns the level named by s, falling back to info
func ParseLevel(s string) zerolog.Level {
	if level, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return level
	}
	return zerolog.InfoLevel
}

// ParseFormat maps a config string onto a Format, falling back to JSON
func ParseFormat(s string) Format {
	if Format(strings.ToLower(strings.TrimSpace(s))) == FormatText {
		return FormatText
	}
	return FormatJSON
}

// New builds a logger from cfg without touching the package logger
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Format == FormatText {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	return ctx.Logger()
}

// Configure replaces the package logger and zerolog's global logger, returning the new one
func Configure(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	defaultLogger = New(cfg)
	log.Logger = defaultLogger
	return defaultLogger
}

// Get returns the configured logger
func Get() zerolog.Logger {
	return defaultLogger
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info logs an informational message
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// WithField returns a child logger carrying key=value
func WithField(key string, value interface{}) zerolog.Logger {
	return defaultLogger.With().Interface(key, value).Logger()
}

func init() {
	// console output until the config is loaded
	Configure(Config{Level: "info", Format: FormatText})
}
