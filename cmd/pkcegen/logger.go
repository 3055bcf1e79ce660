package main

import (
	"io"
	"log/slog"

	phuslog "github.com/phuslu/log"
)

// newLogger returns a JSON logger on w. Only warnings and errors are logged
// unless verbose is set, so a normal run leaves stderr empty.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(phuslog.SlogNewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
