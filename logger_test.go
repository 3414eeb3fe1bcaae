package shapes

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/shapes/canvas"
	"github.com/gogpu/shapes/recording"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLoggerSharedWithCanvas(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	SetLogger(custom)

	if Logger() != custom || canvas.Logger() != custom {
		t.Fatal("SetLogger did not reach the canvas logger")
	}

	if _, err := CreateCircle(recording.NewRecorder(10, 10), CircleOptions{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "shapes: draw") || !strings.Contains(out, "shape=circle") {
		t.Errorf("missing draw record, got: %s", out)
	}
}

func TestUnknownDrawTypeWarns(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	rec := recording.NewRecorder(10, 10)
	c, err := CreateCircle(rec, CircleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	rec.Reset()
	if _, err := c.Draw(CircleDrawOptions{DrawType: DrawType(42)}); err != nil {
		t.Fatalf("unknown draw type should not fail: %v", err)
	}

	if !strings.Contains(buf.String(), "unknown draw type") {
		t.Errorf("expected a warning, got: %s", buf.String())
	}
	for _, cmd := range rec.Commands() {
		switch cmd.(type) {
		case recording.FillCommand, recording.StrokeCommand:
			t.Errorf("unknown draw type painted: %v", cmd)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 50

	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
