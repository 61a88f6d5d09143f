package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("below-threshold messages were logged:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] warn message") || !strings.Contains(out, "[ERROR] error message") {
		t.Errorf("expected messages missing:\n%s", out)
	}
}

func TestFormatting(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info(ctx, "processed %d videos in %s", 3, "batch-1")

	if !strings.Contains(buf.String(), "[INFO] processed 3 videos in batch-1") {
		t.Errorf("formatted output = %q", buf.String())
	}
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter("nonsense", &buf)

	log.Debug(ctx, "hidden")
	log.Info(ctx, "visible")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug logged at default level")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Error("info not logged at default level")
	}
}
