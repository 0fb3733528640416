package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.trai.ch/picon/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	log, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("expected concrete *logger.Logger")
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Info("scanning input tree")
	log.Warn("cache unreadable")
	log.Error(zerr.New("render failed"))

	out := buf.String()

	if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "scanning input tree") {
		t.Errorf("info line missing: %s", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "cache unreadable") {
		t.Errorf("warn line missing: %s", out)
	}
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "render failed") {
		t.Errorf("error line missing: %s", out)
	}
}
