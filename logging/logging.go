package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/cfgmap"
)

// Section is the container section holding logger options.
const Section = "log"

// Output formats accepted by LoggerConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string `config:"level"`
	Format string `config:"format"`
}

// ConfigFromMap reads the "level" and "format" options of the log section.
// Options missing from the section fall back to the default section of cfg.
func ConfigFromMap(cfg *cfgmap.Map) LoggerConfig {
	var out LoggerConfig

	if level, ok := cfg.GetOption(Section, "level").AsString(); ok {
		out.Level = level
	}

	if format, ok := cfg.GetOption(Section, "format").AsString(); ok {
		out.Format = format
	}

	return out
}

// NewLogger creates a new slog.Logger writing to w.
// The level defaults to INFO and the format to JSON when empty or unknown.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel converts a level name to a slog.Level, defaulting to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
