package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	buf := &bytes.Buffer{}
	l := slog.New(slog.NewTextHandler(buf, nil))
	Set(l)

	if Default() != l {
		t.Fatalf("TestSet: Default() did not return the logger passed to Set()")
	}
	Default().Info("hello")
	if buf.Len() == 0 {
		t.Errorf("TestSet: nothing was written to the new logger")
	}

	Set(nil)
	if Default() == l || Default() == nil {
		t.Errorf("TestSet: Set(nil) did not restore a JSON logger")
	}
}

func TestLogLevel(t *testing.T) {
	old := LogLevel.Level()
	t.Cleanup(func() { LogLevel.Set(old) })

	LogLevel.Set(slog.LevelWarn)
	if Default().Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("TestLogLevel: Info enabled with LogLevel at Warn")
	}
	if !Default().Enabled(context.Background(), slog.LevelError) {
		t.Errorf("TestLogLevel: Error disabled with LogLevel at Warn")
	}
}
