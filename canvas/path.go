package canvas

import "math"

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polygon is one flattened subpath.
type Polygon struct {
	Points []Point
	Closed bool
}

// Path is a device-space path whose curves are flattened into polygons as
// they are added. Callers transform points before adding them.
type Path struct {
	polys []Polygon
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt Point) {
	p.polys = append(p.polys, Polygon{Points: []Point{pt}})
}

// LineTo adds a line to pt. Without a current point it acts as MoveTo.
func (p *Path) LineTo(pt Point) {
	cur := p.current()
	if cur == nil {
		p.MoveTo(pt)
		return
	}
	cur.Points = append(cur.Points, pt)
}

// QuadTo adds a quadratic Bezier curve from the current point.
func (p *Path) QuadTo(ctrl, pt Point) {
	p0, ok := p.CurrentPoint()
	if !ok {
		p.MoveTo(pt)
		return
	}
	n := segmentsFor(p0.dist(ctrl) + ctrl.dist(pt))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p.LineTo(Point{
			X: u*u*p0.X + 2*u*t*ctrl.X + t*t*pt.X,
			Y: u*u*p0.Y + 2*u*t*ctrl.Y + t*t*pt.Y,
		})
	}
}

// CubicTo adds a cubic Bezier curve from the current point.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p0, ok := p.CurrentPoint()
	if !ok {
		p.MoveTo(pt)
		return
	}
	n := segmentsFor(p0.dist(c1) + c1.dist(c2) + c2.dist(pt))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p.LineTo(Point{
			X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*pt.X,
			Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*pt.Y,
		})
	}
}

// Close closes the current subpath. A following LineTo starts a new
// subpath at the closed subpath's start point.
func (p *Path) Close() {
	cur := p.current()
	if cur == nil || cur.Closed {
		return
	}
	cur.Closed = true
	p.polys = append(p.polys, Polygon{Points: []Point{cur.Points[0]}})
}

// Clear removes all subpaths.
func (p *Path) Clear() {
	p.polys = p.polys[:0]
}

// CurrentPoint returns the last point added, if any.
func (p *Path) CurrentPoint() (Point, bool) {
	cur := p.current()
	if cur == nil {
		return Point{}, false
	}
	return cur.Points[len(cur.Points)-1], true
}

// Polygons returns the subpaths with at least two points. The returned
// slices are copies.
func (p *Path) Polygons() []Polygon {
	out := make([]Polygon, 0, len(p.polys))
	for _, poly := range p.polys {
		if len(poly.Points) < 2 {
			continue
		}
		pts := make([]Point, len(poly.Points))
		copy(pts, poly.Points)
		out = append(out, Polygon{Points: pts, Closed: poly.Closed})
	}
	return out
}

// IsEmpty reports whether the path has nothing to paint.
func (p *Path) IsEmpty() bool {
	for _, poly := range p.polys {
		if len(poly.Points) >= 2 {
			return false
		}
	}
	return true
}

func (p *Path) current() *Polygon {
	if len(p.polys) == 0 {
		return nil
	}
	return &p.polys[len(p.polys)-1]
}

func (p Point) dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// segmentsFor returns the flattening segment count for a curve whose
// control polygon is length long in device pixels.
func segmentsFor(length float64) int {
	n := int(math.Ceil(math.Sqrt(length) * 1.5))
	switch {
	case n < 2:
		return 2
	case n > 128:
		return 128
	}
	return n
}
