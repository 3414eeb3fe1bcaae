package shapes

import "image"

// Surface is the raster drawing context shapes are rendered onto.
//
// The method set mirrors a 2D canvas context: the path persists across
// Fill and Stroke until the next BeginPath, and Save/Restore bracket both
// the transform and the paint state. *canvas.Context and
// *recording.Recorder implement it.
//
// Shapes never validate color strings. Errors returned by the style
// setters and by Fill/Stroke are handed back to the caller unchanged.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a clockwise circular arc (angles in radians).
	Arc(x, y, r, startAngle, endAngle float64)
	ClosePath()

	Save()
	Restore()
	Translate(dx, dy float64)
	// Rotate rotates clockwise in screen coordinates (radians).
	Rotate(angle float64)
	Scale(sx, sy float64)

	SetFillStyle(color string) error
	SetStrokeStyle(color string) error
	SetLineWidth(width float64)
	Fill() error
	Stroke() error
}

// TextSurface is a Surface that can add text outlines to the current path.
type TextSurface interface {
	Surface
	SetFont(family string, size float64) error
	// TextPath appends the outline of s, with its baseline starting at
	// (x, y), to the current path.
	TextPath(s string, x, y float64) error
}

// ImageSurface is a Surface that can composite images.
type ImageSurface interface {
	Surface
	DrawImage(img image.Image, x, y, width, height float64) error
}

// Point is a 2D point in user space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// tracePolygon replaces the surface path with the closed polygon pts.
func tracePolygon(s Surface, pts []Point) {
	s.BeginPath()
	for i, p := range pts {
		if i == 0 {
			s.MoveTo(p.X, p.Y)
			continue
		}
		s.LineTo(p.X, p.Y)
	}
	s.ClosePath()
}
