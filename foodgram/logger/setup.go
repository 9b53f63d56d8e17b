package logger

import (
	"io"
	"log/slog"
	"strings"
)

const Prefix = "Foodgram"

// New builds the process logger for the given format: "pretty" (default),
// "json" or "text".
func New(out io.Writer, format string, level slog.Level, addSource bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, AddSource: addSource}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = NewHandler(out, Prefix, opts)
	}
	return slog.New(handler)
}
