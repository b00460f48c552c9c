package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestMultiHandler_RespectsEachHandlerLevel(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h)

	log.InfoContext(context.Background(), "cat created", "cat.id", 7)

	assert.Contains(t, debugBuf.String(), "cat created")
	assert.Contains(t, debugBuf.String(), "cat.id=7")
	assert.Empty(t, errorBuf.String())
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, nil))
	slog.New(h).With("user.id", 3).WithGroup("req").Info("login", "ok", true)

	assert.Contains(t, buf.String(), "user.id=3")
	assert.Contains(t, buf.String(), "req.ok=true")
}
