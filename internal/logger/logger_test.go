package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewFallsBackToWarn(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		l, err := New(mode, "not-a-level")
		if err != nil {
			t.Fatalf("New(%s): %v", mode, err)
		}
		core := l.SugaredLogger.Desugar().Core()
		if core.Enabled(zapcore.InfoLevel) || !core.Enabled(zapcore.WarnLevel) {
			t.Errorf("%s: expected warn level", mode)
		}
	}
}

func TestNewLevel(t *testing.T) {
	l, err := New("dev", "debug")
	if err != nil {
		t.Fatal(err)
	}
	if !l.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug not enabled")
	}
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("problem", 7)

	l.Info("marked solved", "date", "2024-01-01")
	l.Warn("slow")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["problem"] != int64(7) || ctx["date"] != "2024-01-01" {
		t.Errorf("context = %v", ctx)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("level = %s", entries[1].Level)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("dropped")
	l.Sync()
}
