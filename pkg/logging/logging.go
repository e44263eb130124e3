// Package logging builds the service slog.Logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Level is a configured logging severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// Validate reports an unknown level.
func (l Level) Validate() error {
	if _, ok := levels[l]; !ok {
		return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", l)
	}
	return nil
}

// ToSlogLevel maps l onto slog. Unknown levels log at info.
func (l Level) ToSlogLevel() slog.Level {
	if lvl, ok := levels[l]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// Format selects the slog handler encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type handlerFunc func(io.Writer, *slog.HandlerOptions) slog.Handler

var handlers = map[Format]handlerFunc{
	FormatText: func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewTextHandler(w, opts)
	},
	FormatJSON: func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewJSONHandler(w, opts)
	},
}

// Validate reports an unknown format.
func (f Format) Validate() error {
	if _, ok := handlers[f]; !ok {
		return fmt.Errorf("unknown log format %q (want text or json)", f)
	}
	return nil
}

// New creates a logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a logger writing to w. An unknown format falls back
// to text.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	newHandler, ok := handlers[cfg.Format]
	if !ok {
		newHandler = handlers[FormatText]
	}

	return slog.New(newHandler(w, &slog.HandlerOptions{
		Level:     cfg.Level.ToSlogLevel(),
		AddSource: cfg.SourceEnabled(),
	}))
}
