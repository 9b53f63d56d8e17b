package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeHTTP   LogType = "HTTP"
	TypeDB     LogType = "DB"
	TypeSystem LogType = "SYS"
	TypeError  LogType = "ERR"
)

// CustomHandler renders records as a single colored line:
// [prefix] [time] [LEVEL] [TYPE] message key=value...
type CustomHandler struct {
	out    io.Writer
	mu     *sync.Mutex
	prefix string
	opts   *slog.HandlerOptions
	attrs  []slog.Attr
	groups []string
}

func NewHandler(out io.Writer, prefix string, opts *slog.HandlerOptions) *CustomHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: slog.LevelDebug}
	}
	return &CustomHandler{
		out:    out,
		mu:     &sync.Mutex{},
		prefix: prefix,
		opts:   opts,
		attrs:  make([]slog.Attr, 0),
		groups: make([]string, 0),
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &CustomHandler{
		out:    h.out,
		mu:     h.mu,
		prefix: h.prefix,
		opts:   h.opts,
		attrs:  merged,
		groups: h.groups,
	}
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	groups := make([]string, 0, len(h.groups)+1)
	groups = append(groups, h.groups...)
	return &CustomHandler{
		out:    h.out,
		mu:     h.mu,
		prefix: h.prefix,
		opts:   h.opts,
		attrs:  h.attrs,
		groups: append(groups, name),
	}
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	timestamp := r.Time.Format("15:04:05")
	if r.Time.IsZero() {
		timestamp = time.Now().Format("15:04:05")
	}

	levelColor, levelText := levelStyle(r.Level)
	logType := getLogType(h.attrs, &r)

	message := r.Message
	if r.Level >= slog.LevelError {
		if location := getErrorLocation(&r, h.opts.AddSource); location != "" {
			message = fmt.Sprintf("%s (%s)", message, location)
		}
		if details := getAttr(&r, "error"); details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}

	var sb strings.Builder
	for _, attr := range h.attrs {
		if !isInternalAttr(attr.Key) {
			fmt.Fprintf(&sb, " %s=%v", h.qualify(attr.Key), attr.Value)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		if !isInternalAttr(a.Key) && !(r.Level >= slog.LevelError && a.Key == "error") {
			fmt.Fprintf(&sb, " %s=%v", h.qualify(a.Key), a.Value)
		}
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[%s] [%s] [%s%s%s] [%s%s%s] %s%s%s\n",
		colorWhite,
		h.prefix,
		timestamp,
		levelColor,
		levelText,
		colorWhite,
		colorCyan,
		logType,
		colorWhite,
		message,
		sb.String(),
		colorReset,
	)
	return err
}

func (h *CustomHandler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

func getLogType(handlerAttrs []slog.Attr, r *slog.Record) LogType {
	raw := ""
	for _, a := range handlerAttrs {
		if a.Key == "type" {
			raw = a.Value.String()
		}
	}
	if v := getAttr(r, "type"); v != "" {
		raw = v
	}
	switch raw {
	case "http":
		return TypeHTTP
	case "db":
		return TypeDB
	case "error":
		return TypeError
	default:
		return TypeSystem
	}
}

func getAttr(r *slog.Record, key string) string {
	var value string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = fmt.Sprintf("%v", a.Value)
			return false
		}
		return true
	})
	return value
}

func isInternalAttr(key string) bool {
	switch key {
	case "type", "error_location":
		return true
	}
	return false
}

func getErrorLocation(r *slog.Record, addSource bool) string {
	if location := getAttr(r, "error_location"); location != "" {
		return location
	}
	if !addSource || r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
