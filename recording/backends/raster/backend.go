// Package raster provides a raster backend for the recording system.
// It renders recordings to pixel images using canvas.Context.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/shapes/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend(raster.WithBackground("white"))
//
//	// Playback recording
//	_ = rec.Playback(backend)
//
//	// Get output
//	_ = backend.SaveToFile("output.png")
//	img := backend.Image()
package raster

import (
	"image"
	"io"

	"github.com/gogpu/shapes/canvas"
	"github.com/gogpu/shapes/recording"
)

func init() {
	recording.Register(recording.DefaultBackend, func() recording.Backend {
		return NewBackend()
	}, ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".raw")
}

// Backend renders recordings to a pixel image using canvas.Context.
// Every drawing call goes straight to the embedded context, which is
// created by Begin.
type Backend struct {
	*canvas.Context

	fonts      *canvas.FontStore
	background string
	quality    float64
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.TextBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithFonts sets the font store used for text commands.
func WithFonts(fs *canvas.FontStore) Option {
	return func(b *Backend) {
		b.fonts = fs
	}
}

// WithBackground paints the buffer with a CSS color in Begin. The default
// is a transparent buffer.
func WithBackground(color string) Option {
	return func(b *Backend) {
		b.background = color
	}
}

// WithQuality sets the JPEG quality (0..1) used by SaveToFile.
func WithQuality(q float64) Option {
	return func(b *Backend) {
		b.quality = q
	}
}

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates a width x height buffer.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return canvas.ErrInvalidSize
	}
	var opts []canvas.Option
	if b.fonts != nil {
		opts = append(opts, canvas.WithFonts(b.fonts))
	}
	b.Context = canvas.NewContext(width, height, opts...)
	if b.background != "" {
		return b.Clear(b.background)
	}
	return nil
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	return nil
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.Context == nil {
		return 0, recording.ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.Encode(cw, canvas.MimePNG, 0)
	return cw.n, err
}

// SaveToFile saves the rendered content to a file in the format named by
// its extension.
func (b *Backend) SaveToFile(path string) error {
	if b.Context == nil {
		return recording.ErrNotStarted
	}
	return b.SaveFile(path, b.quality)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.Context == nil {
		return nil
	}
	return b.Context.Image()
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
