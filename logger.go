package main

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a JSON slog.Logger writing to stdout. Source locations
// are attached at debug level.
func NewLogger(level slog.Leveler) *slog.Logger {
	return newLogger(os.Stdout, level)
}

func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level.Level() <= slog.LevelDebug,
	}
	return slog.New(slog.NewJSONHandler(w, opts)).With("app", "image-cropper")
}
