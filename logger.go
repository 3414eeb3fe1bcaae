package shapes

import (
	"log/slog"

	"github.com/gogpu/shapes/canvas"
)

// SetLogger configures the logger for shapes and all its sub-packages.
// By default, shapes produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by shapes:
//   - [slog.LevelDebug]: one record per shape render and per paint
//   - [slog.LevelWarn]: non-fatal issues (unknown draw type, font fallback)
//
// Example:
//
//	shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	canvas.SetLogger(l)
}

// Logger returns the current logger used by shapes.
// The logger is stored in the canvas package so both share one
// configuration without an import cycle.
func Logger() *slog.Logger {
	return canvas.Logger()
}
