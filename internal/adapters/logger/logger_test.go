package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/stale/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("journal loaded")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level in output, got %q", out)
	}
	if !strings.Contains(out, "journal loaded") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(errors.New("bad journal"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level in output, got %q", out)
	}
	if !strings.Contains(out, "bad journal") {
		t.Errorf("expected error text in output, got %q", out)
	}
}
