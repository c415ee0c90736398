package core

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. verbose lowers the level to
// debug; quiet raises it to errors only.
func NewLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
