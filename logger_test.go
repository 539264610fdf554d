package strata

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// TestLoggerDefaultSilent: the default logger discards everything without
// formatting.
func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

// TestSetLogger installs a real handler and restores silence with nil.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("flatten", "layers", 3)
	if !strings.Contains(buf.String(), "flatten") {
		t.Errorf("log output missing message: %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Info("should vanish")
	if buf.Len() != 0 {
		t.Errorf("nil logger still wrote output: %q", buf.String())
	}
}
