package generator

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}

	// None of these should panic or produce output.
	logger.Debug("debug", "key", "value")
	logger.Info("info", "key", "value")
	logger.Warn("warn", "key", "value")
	logger.Error("error", "key", "value")

	assert.Equal(t, NopLogger{}, logger.With("key", "value"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("debug message", "shader", "shader.vert")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", "exit_code", 2)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "shader=shader.vert")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "exit_code=2")
}

func TestSlogAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.With("output", "shader_vert.inl").Info("generated")

	assert.Contains(t, buf.String(), "output=shader_vert.inl")
	assert.Contains(t, buf.String(), "msg=generated")
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	assert.Equal(t, slog.Default(), adapter.logger)
}
