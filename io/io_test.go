package argvio

import (
	"bytes"
	"strings"
	"testing"
)

func TestColorNever(t *testing.T) {
	var buf bytes.Buffer
	m := New().WithOut(&buf).Color(ColorNever)

	if m.ColorEnabled() {
		t.Fatal("ColorNever must disable colors")
	}
	if got := m.ErrorText("boom"); got != "boom" {
		t.Errorf("expected plain text, got %q", got)
	}
}

func TestColorAlways(t *testing.T) {
	var buf bytes.Buffer
	m := New().WithOut(&buf).Color(ColorAlways)

	if !m.ColorEnabled() {
		t.Fatal("ColorAlways must enable colors")
	}
	if got := m.ErrorText("boom"); !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", got)
	}
}

func TestColorAutoNonTTY(t *testing.T) {
	var buf bytes.Buffer
	m := New().WithOut(&buf)
	if m.ColorEnabled() {
		t.Error("buffers are not terminals; auto mode must disable colors")
	}
}

func TestWidth(t *testing.T) {
	var buf bytes.Buffer
	m := New().WithOut(&buf)
	if m.Width() != 80 {
		t.Errorf("non-terminal width should default to 80, got %d", m.Width())
	}
	if m.WithWidth(120).Width() != 120 {
		t.Error("width override not honored")
	}
}

func TestLoggerLevels(t *testing.T) {
	var out, errw bytes.Buffer
	m := New().WithOut(&out).WithErr(&errw).Color(ColorNever)
	log := NewLogger(m).WithLevel(LevelInfo).WithScope("parse")

	log.Debugf("hidden")
	log.Infof("token %q", "-v")
	log.Errorf("bad token")

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug message should be dropped at info level")
	}
	if !strings.Contains(out.String(), `[INFO] parse: token "-v"`) {
		t.Errorf("info output = %q", out.String())
	}
	if !strings.Contains(errw.String(), "[ERROR] parse: bad token") {
		t.Errorf("errors must go to the error stream, got %q", errw.String())
	}
}
