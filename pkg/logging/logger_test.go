package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		enable slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"warn level", "warn", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"default info", "", slog.LevelInfo},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level)
			if !logger.Enabled(ctx, tt.enable) {
				t.Fatalf("expected level %s to be enabled", tt.enable)
			}
		})
	}
}

func TestNewWithFormatText(t *testing.T) {
	logger := NewWithFormat("info", "text")
	if logger.Logger == nil {
		t.Fatal("expected initialized logger")
	}
	logger.Info("text handler works", "key", "value")
}

func TestDefaultLevel(t *testing.T) {
	logger := Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, slog.LevelInfo) {
		t.Error("Default() should enable info level")
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		t.Error("Default() should not enable debug level")
	}
}

func TestWithKeepsLevel(t *testing.T) {
	logger := New("warn").With("component", "test")
	ctx := context.Background()
	if !logger.Enabled(ctx, slog.LevelWarn) {
		t.Error("With() should preserve the configured level")
	}
	if logger.Enabled(ctx, slog.LevelInfo) {
		t.Error("With() should not lower the configured level")
	}
}
