package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		want          zapcore.Level
		wantErr       bool
	}{
		{"debug", "console", zapcore.DebugLevel, false},
		{"INFO", "json", zapcore.InfoLevel, false},
		{"warn", "", zapcore.WarnLevel, false},
		{"error", "JSON", zapcore.ErrorLevel, false},
		{"loud", "console", 0, true},
		{"info", "xml", 0, true},
	}
	for _, tc := range tests {
		l, err := New(tc.level, tc.format)
		if (err != nil) != tc.wantErr {
			t.Errorf("New(%q, %q) error = %v, wantErr %v", tc.level, tc.format, err, tc.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if !l.Core().Enabled(tc.want) {
			t.Errorf("New(%q, %q): %s disabled", tc.level, tc.format, tc.want)
		}
		if tc.want > zapcore.DebugLevel && l.Core().Enabled(tc.want-1) {
			t.Errorf("New(%q, %q): %s enabled", tc.level, tc.format, tc.want-1)
		}
	}
}

func TestNop(t *testing.T) {
	if Nop().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Nop logger should discard everything")
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ks2maths.log")
	l, err := NewFile("info", FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	l.Info("practice finished")
	_ = l.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"practice finished"`) {
		t.Errorf("log file = %q", b)
	}
}
