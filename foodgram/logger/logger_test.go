package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCustomHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l *slog.Logger)
		contains []string
		absent   []string
	}{
		{
			name: "system info line",
			log: func(l *slog.Logger) {
				l.Info("server started", slog.String("type", "sys"), slog.String("addr", ":8080"))
			},
			contains: []string{"[Foodgram]", "INFO", "SYS", "server started", "addr=:8080"},
			absent:   []string{"type=sys"},
		},
		{
			name: "db type from handler attrs",
			log: func(l *slog.Logger) {
				l.With(slog.String("type", "db")).Warn("slow query", slog.Int("rows", 3))
			},
			contains: []string{"WARN", "[" + colorCyan + "DB", "rows=3"},
		},
		{
			name: "error details appended to message",
			log: func(l *slog.Logger) {
				l.Error("insert failed", slog.String("type", "error"), slog.Any("error", errors.New("boom")))
			},
			contains: []string{"ERROR", "ERR", "insert failed: boom"},
			absent:   []string{"error=boom"},
		},
		{
			name: "debug filtered by level",
			log: func(l *slog.Logger) {
				l.Debug("hidden")
			},
			absent: []string{"hidden"},
		},
		{
			name: "grouped attrs are qualified",
			log: func(l *slog.Logger) {
				l.WithGroup("req").Info("handled", slog.Int("status", 200))
			},
			contains: []string{"req.status=200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := slog.New(NewHandler(&buf, Prefix, &slog.HandlerOptions{Level: slog.LevelInfo}))
			tt.log(l)
			out := buf.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestNew_Format(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "json", slog.LevelInfo, false).Info("hello", slog.String("k", "v"))
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)

	buf.Reset()
	New(&buf, "pretty", slog.LevelInfo, false).Info("hello")
	assert.Contains(t, buf.String(), "[Foodgram]")
}

func TestGlobalHelpers(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	LogSystem("started", slog.String("addr", ":8080"))
	LogError("request failed", errors.New("boom"), slog.String("path", "/api"))
	LogQuery("SELECT 1", time.Millisecond, nil, slog.Int64("affected_rows", 1))
	LogQuery("SELECT 2", time.Millisecond, errors.New("gone"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"started","type":"sys","addr":":8080"`)
	assert.Contains(t, out, `"msg":"request failed","type":"error","error":"boom","path":"/api"`)
	assert.Contains(t, out, `"level":"DEBUG","msg":"Query executed","type":"db"`)
	assert.Contains(t, out, `"affected_rows":1`)
	assert.Contains(t, out, `"level":"ERROR","msg":"Query failed","type":"db"`)
	assert.Contains(t, out, `"error":"gone"`)
}
