package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("dropped %d", 1)
	l.Info("dropped too")
	l.Warn("kept %s", "warning")
	l.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output contains filtered lines: %q", out)
	}
	if !strings.Contains(out, "[WARN] kept warning") {
		t.Errorf("output missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] kept error") {
		t.Errorf("output missing error line: %q", out)
	}
	if !strings.Contains(out, "typeguard") {
		t.Errorf("output missing prefix: %q", out)
	}
}

func TestLogger_Disable(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)
	l.Disable()

	l.Error("should not appear")

	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelNone)

	l.Info("before")
	l.SetLevel(LevelInfo)
	l.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("output contains line logged while silenced: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("output missing line after SetLevel: %q", out)
	}
}
