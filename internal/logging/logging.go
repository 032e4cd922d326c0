// Package logging builds the zerolog logger shared by the client and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jask/thelist/internal/config"
)

// ParseLevel converts a config level string to a zerolog level. Unknown values mean info.
func ParseLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New returns a logger writing to w in the configured format.
func New(w io.Writer, cfg config.LogConfig) zerolog.Logger {
	out := w
	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}
	return zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// Open creates the log file named in cfg and returns a logger writing to it.
// The returned closer must be called on shutdown.
func Open(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" || ParseLevel(cfg.Level) == zerolog.Disabled {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, cfg), f, nil
}
