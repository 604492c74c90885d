// Package logger constructs the application's slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds a slog logger writing to output (stderr when nil) in the given
// format ("json" or "text").
func New(level slog.Level, format string, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}
