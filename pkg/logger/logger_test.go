package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "production", "quiet", ""} {
		t.Run(mode, func(t *testing.T) {
			l, err := New(mode)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", mode, err)
			}
			if l.SugaredLogger == nil {
				t.Fatal("SugaredLogger is nil")
			}
		})
	}
}

// TestModeFor 非 verbose 模式只输出 warn 及以上
func TestModeFor(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
		wantInfo  bool
	}{
		{"详细模式", true, true, true},
		{"默认模式", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(ModeFor(tt.verbose))
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			core := l.SugaredLogger.Desugar().Core()
			if got := core.Enabled(zapcore.DebugLevel); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := core.Enabled(zapcore.InfoLevel); got != tt.wantInfo {
				t.Errorf("info enabled = %v, want %v", got, tt.wantInfo)
			}
			if !core.Enabled(zapcore.WarnLevel) {
				t.Error("warn should always be enabled")
			}
		})
	}
}

// TestOrNop nil 记录器可以安全使用
func TestOrNop(t *testing.T) {
	l := OrNop(nil)
	l.Info("[Test] message", "key", 1)
	l.With("session", "abc").Debug("[Test] child")

	existing := Nop()
	if OrNop(existing) != existing {
		t.Error("OrNop should return the given logger")
	}
}

// TestNew_FileOutput 指定输出路径时写入文件
func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizbattle.log")
	l, err := New("dev", path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Info("[Test] written to file", "key", 42)
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "[Test] written to file") {
		t.Errorf("log file missing message, got %q", data)
	}
}
