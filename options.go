package shapes

import "github.com/gogpu/shapes/canvas"

// DefaultSize is the width and height of a canvas created by New.
const DefaultSize = 1920

// Option configures a Shapes during creation.
//
// Example:
//
//	// Default 1920x1920 canvas
//	sh := shapes.New()
//
//	// Draw onto an existing canvas, resized to 800x600
//	sh := shapes.New(shapes.WithCanvas(dc), shapes.WithSize(800, 600))
type Option func(*options)

// options holds optional configuration for Shapes creation.
type options struct {
	width  int
	height int
	canvas *canvas.Context
	fonts  *canvas.FontStore
}

// WithSize sets the canvas dimensions. Non-positive values keep the
// default (or, with WithCanvas, the canvas's current size).
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithCanvas draws onto an existing canvas instead of allocating one.
func WithCanvas(c *canvas.Context) Option {
	return func(o *options) {
		o.canvas = c
	}
}

// WithFonts sets the font store used when a new canvas is allocated.
// It is ignored together with WithCanvas.
func WithFonts(fs *canvas.FontStore) Option {
	return func(o *options) {
		o.fonts = fs
	}
}
