package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a configured slog.Logger based on configuration. The
// sink is kept apart from the interactive screen, so callers pass a log
// file or stderr, never stdout.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
