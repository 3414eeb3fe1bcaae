package recording

import (
	"image"
	"io"
)

// Backend is the interface that all playback targets must implement.
// Its drawing methods mirror the canvas state model: points are
// transformed when added, and the path survives Fill and Stroke until
// BeginPath.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Manage own state stack for Save/Restore
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	// This must be called before any drawing operations.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	End() error

	Save()
	Restore()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, startAngle, endAngle float64)
	ClosePath()

	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	SetFillStyle(color string) error
	SetStrokeStyle(color string) error
	SetLineWidth(width float64)

	Fill() error
	Stroke() error
}

// TextBackend is a Backend that can turn text into path outlines.
type TextBackend interface {
	Backend
	SetFont(family string, size float64) error
	TextPath(s string, x, y float64) error
}

// ImageBackend is a Backend that can composite images.
type ImageBackend interface {
	Backend
	DrawImage(img image.Image, x, y, width, height float64) error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
