package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"
)

// state is the part of a Context saved by Save and restored by Restore.
type state struct {
	matrix     Matrix
	fill       color.NRGBA
	stroke     color.NRGBA
	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
	font       *sfnt.Font
	fontSize   float64
}

// Context is a raster drawing context with the state model of an HTML
// canvas 2D context: a current path that survives Fill and Stroke until
// BeginPath, and a Save/Restore stack holding the transform and paint
// state.
//
// Points are transformed by the current matrix when they are added, so
// transforms applied after a path is built do not move it. Stroke widths
// are in device pixels and are not scaled by the matrix.
//
// A Context is not safe for concurrent use.
type Context struct {
	width  int
	height int
	img    *image.RGBA
	fonts  *FontStore
	ras    *vector.Rasterizer

	path  *Path
	state state
	stack []state
}

// NewContext creates a transparent width x height context.
//
//	dc := canvas.NewContext(800, 600)
//	dc.MoveTo(10, 10)
//	dc.LineTo(100, 10)
//	dc.LineTo(50, 80)
//	dc.ClosePath()
//	_ = dc.SetFillStyle("tomato")
//	_ = dc.Fill()
func NewContext(width, height int, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fonts := o.fonts
	if fonts == nil {
		fonts = NewFontStore()
	}
	c := &Context{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		fonts:  fonts,
		ras:    vector.NewRasterizer(width, height),
		path:   NewPath(),
		stack:  make([]state, 0, 8),
	}
	c.state = state{
		matrix:     Identity(),
		fill:       color.NRGBA{A: 255},
		stroke:     color.NRGBA{A: 255},
		lineWidth:  1,
		miterLimit: 10,
		font:       fonts.Default(),
		fontSize:   10,
	}
	return c
}

// NewContextForImage creates a context initialised with a copy of img.
func NewContextForImage(img image.Image, opts ...Option) *Context {
	b := img.Bounds()
	c := NewContext(b.Dx(), b.Dy(), opts...)
	draw.Draw(c.img, c.img.Bounds(), img, b.Min, draw.Src)
	return c
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// Image returns the pixel buffer. It is live: later drawing updates it.
func (c *Context) Image() *image.RGBA {
	return c.img
}

// Fonts returns the font store used by SetFont.
func (c *Context) Fonts() *FontStore {
	return c.fonts
}

// Resize reallocates a transparent pixel buffer of the new size and
// clears the path. The transform and Save stack are kept. Resizing to
// the current size is a no-op.
func (c *Context) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d (both must be > 0)", ErrInvalidSize, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	c.width = width
	c.height = height
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.ras.Reset(width, height)
	c.path.Clear()
	return nil
}

// Clear paints the whole buffer with col, ignoring the path and transform.
func (c *Context) Clear(col string) error {
	nc, err := ParseColor(col)
	if err != nil {
		return err
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(nc), image.Point{}, draw.Src)
	return nil
}

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path.Clear()
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(c.state.matrix.TransformPoint(Pt(x, y)))
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(c.state.matrix.TransformPoint(Pt(x, y)))
}

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	m := c.state.matrix
	c.path.QuadTo(m.TransformPoint(Pt(cx, cy)), m.TransformPoint(Pt(x, y)))
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	m := c.state.matrix
	c.path.CubicTo(m.TransformPoint(Pt(c1x, c1y)), m.TransformPoint(Pt(c2x, c2y)), m.TransformPoint(Pt(x, y)))
}

// Arc adds a clockwise arc of radius r around (x, y) from startAngle to
// endAngle (radians). A sweep of 2π or more draws a full circle. When the
// path has a current point a line joins it to the arc start.
func (c *Context) Arc(x, y, r, startAngle, endAngle float64) {
	const twoPi = 2 * math.Pi
	sweep := endAngle - startAngle
	if sweep >= twoPi {
		sweep = twoPi
	} else {
		sweep = math.Mod(sweep, twoPi)
		if sweep < 0 {
			sweep += twoPi
		}
	}

	devR := math.Abs(r) * c.state.matrix.ScaleFactor()
	n := int(math.Ceil(sweep * math.Sqrt(devR+1) * 1.5))
	n = max(1, min(n, 512))

	_, hasCurrent := c.path.CurrentPoint()
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		sin, cos := math.Sincos(a)
		px, py := x+r*cos, y+r*sin
		if i == 0 && !hasCurrent {
			c.MoveTo(px, py)
			continue
		}
		c.LineTo(px, py)
	}
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// Path returns a copy of the current path in device coordinates.
func (c *Context) Path() []Polygon {
	return c.path.Polygons()
}

// Save pushes the transform and paint state.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the state pushed by the matching Save. Without a matching
// Save it does nothing.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate applies a translation to the transformation matrix.
func (c *Context) Translate(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Translate(x, y))
}

// Rotate applies a rotation (angle in radians, clockwise on screen).
func (c *Context) Rotate(angle float64) {
	c.state.matrix = c.state.matrix.Multiply(Rotate(angle))
}

// Scale applies a scaling transformation.
func (c *Context) Scale(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Scale(x, y))
}

// Transform multiplies the current transformation matrix by m.
func (c *Context) Transform(m Matrix) {
	c.state.matrix = c.state.matrix.Multiply(m)
}

// SetTransform replaces the current transformation matrix.
func (c *Context) SetTransform(m Matrix) {
	c.state.matrix = m
}

// GetTransform returns the current transformation matrix.
func (c *Context) GetTransform() Matrix {
	return c.state.matrix
}

// SetFillStyle sets the fill color from a CSS color string.
func (c *Context) SetFillStyle(col string) error {
	nc, err := ParseColor(col)
	if err != nil {
		return err
	}
	c.state.fill = nc
	return nil
}

// SetStrokeStyle sets the stroke color from a CSS color string.
func (c *Context) SetStrokeStyle(col string) error {
	nc, err := ParseColor(col)
	if err != nil {
		return err
	}
	c.state.stroke = nc
	return nil
}

// FillStyle returns the current fill color.
func (c *Context) FillStyle() color.NRGBA {
	return c.state.fill
}

// StrokeStyle returns the current stroke color.
func (c *Context) StrokeStyle() color.NRGBA {
	return c.state.stroke
}

// SetLineWidth sets the stroke width in device pixels.
func (c *Context) SetLineWidth(width float64) {
	c.state.lineWidth = width
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 {
	return c.state.lineWidth
}

// SetLineCap sets the cap drawn at the ends of open subpaths.
func (c *Context) SetLineCap(lc LineCap) {
	c.state.lineCap = lc
}

// LineCap returns the current line cap.
func (c *Context) LineCap() LineCap {
	return c.state.lineCap
}

// SetLineJoin sets the join drawn between segments.
func (c *Context) SetLineJoin(lj LineJoin) {
	c.state.lineJoin = lj
}

// LineJoin returns the current line join.
func (c *Context) LineJoin() LineJoin {
	return c.state.lineJoin
}

// SetMiterLimit sets the largest ratio of miter length to line width
// drawn as a miter. Sharper joins are beveled.
func (c *Context) SetMiterLimit(limit float64) {
	c.state.miterLimit = limit
}

// Fill paints the interior of the current path using the nonzero rule.
// The path is kept.
func (c *Context) Fill() error {
	polys := c.path.Polygons()
	Logger().Debug("canvas: fill", "subpaths", len(polys), "color", c.state.fill)

	pieces := make([][]Point, 0, len(polys))
	for _, p := range polys {
		pieces = append(pieces, p.Points)
	}
	c.rasterize(pieces, c.state.fill)
	return nil
}

// Stroke paints the outline of the current path. The path is kept.
func (c *Context) Stroke() error {
	polys := c.path.Polygons()
	Logger().Debug("canvas: stroke", "subpaths", len(polys),
		"color", c.state.stroke, "width", c.state.lineWidth)

	c.rasterize(strokePolygons(polys, c.state), c.state.stroke)
	return nil
}

// rasterize composites col over the union of pieces.
func (c *Context) rasterize(pieces [][]Point, col color.NRGBA) {
	if col.A == 0 || c.width == 0 || c.height == 0 {
		return
	}
	c.ras.Reset(c.width, c.height)
	drawn := false
	for _, pts := range pieces {
		if len(pts) < 2 || !finite(pts) {
			continue
		}
		c.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			c.ras.LineTo(float32(p.X), float32(p.Y))
		}
		c.ras.ClosePath()
		drawn = true
	}
	if drawn {
		c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	}
}

func finite(pts []Point) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
