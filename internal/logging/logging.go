// Package logging configures the zerolog logger used by the CLI.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // console, json
}

// DefaultConfig logs informational messages in console format.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

// New builds a logger writing to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = w
			cw.NoColor = true
			cw.PartsExclude = []string{zerolog.TimestampFieldName}
		})
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
