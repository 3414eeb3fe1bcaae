package shapes

import "github.com/gogpu/shapes/canvas"

// Shapes binds the shape constructors to one raster canvas.
type Shapes struct {
	canvas *canvas.Context
}

// New creates a Shapes drawing onto a new DefaultSize canvas, or onto the
// canvas given with WithCanvas.
func New(opts ...Option) *Shapes {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := o.canvas
	if c == nil {
		w, h := DefaultSize, DefaultSize
		if o.width > 0 {
			w = o.width
		}
		if o.height > 0 {
			h = o.height
		}
		var copts []canvas.Option
		if o.fonts != nil {
			copts = append(copts, canvas.WithFonts(o.fonts))
		}
		c = canvas.NewContext(w, h, copts...)
	} else {
		w, h := c.Width(), c.Height()
		if o.width > 0 {
			w = o.width
		}
		if o.height > 0 {
			h = o.height
		}
		// Both dimensions are positive, so Resize cannot fail.
		_ = c.Resize(w, h)
	}
	return &Shapes{canvas: c}
}

// Canvas returns the underlying canvas.
func (s *Shapes) Canvas() *canvas.Context {
	return s.canvas
}

// Fonts returns the font store text shapes are resolved against.
func (s *Shapes) Fonts() *canvas.FontStore {
	return s.canvas.Fonts()
}

// CreateCircle draws a circle. See CreateCircle.
func (s *Shapes) CreateCircle(o CircleOptions) (Circle, error) {
	return CreateCircle(s.canvas, o)
}

// CreateRect draws a rectangle. See CreateRect.
func (s *Shapes) CreateRect(o RectOptions) (Rect, error) {
	return CreateRect(s.canvas, o)
}

// CreateLine draws a line. See CreateLine.
func (s *Shapes) CreateLine(o LineOptions) (Line, error) {
	return CreateLine(s.canvas, o)
}

// CreateRhombus draws a rhombus. See CreateRhombus.
func (s *Shapes) CreateRhombus(o RhombusOptions) (Rhombus, error) {
	return CreateRhombus(s.canvas, o)
}

// CreateStar draws a star. See CreateStar.
func (s *Shapes) CreateStar(o StarOptions) (Star, error) {
	return CreateStar(s.canvas, o)
}

// CreateTriangle draws a generic triangle. See CreateTriangle.
func (s *Shapes) CreateTriangle(o TriangleOptions) (Triangle, error) {
	return CreateTriangle(s.canvas, o)
}

// CreateEquiTriangle draws a centred triangle. See CreateEquiTriangle.
func (s *Shapes) CreateEquiTriangle(o EquiTriangleOptions) (EquiTriangle, error) {
	return CreateEquiTriangle(s.canvas, o)
}

// CreateText draws text. See CreateText.
func (s *Shapes) CreateText(o TextOptions) (Text, error) {
	return CreateText(s.canvas, o)
}

// CreateImage draws an image. See CreateImage.
func (s *Shapes) CreateImage(o ImageOptions) (Image, error) {
	return CreateImage(s.canvas, o)
}

// ToBuffer encodes the canvas. An empty mimeType means PNG; quality only
// applies to JPEG (0..1, 0 means the default).
func (s *Shapes) ToBuffer(mimeType string, quality float64) ([]byte, error) {
	if mimeType == "" {
		mimeType = canvas.MimePNG
	}
	return s.canvas.ToBuffer(mimeType, quality)
}

// Save writes the canvas to path, choosing the format from its extension.
func (s *Shapes) Save(path string, quality float64) error {
	return s.canvas.SaveFile(path, quality)
}
