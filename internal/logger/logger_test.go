package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure_TextFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	if err := Configure(l, LogOptions{Verbose: true, DisableColor: true, Output: &buf}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	l.SetFormatter(&Formatter{DisableColor: true, HideLogTime: true})
	l.WithField("key", "schemes/Spec(ZZ)").Debug("category cache miss")
	if got := buf.String(); got != "[DEBUG] category cache miss key=schemes/Spec(ZZ)\n" {
		t.Fatalf("got %q", got)
	}
}

func TestConfigure_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	if err := Configure(l, LogOptions{Format: "json", Output: &buf}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Fatalf("got %q", buf.String())
	}
	if err := Configure(l, LogOptions{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
