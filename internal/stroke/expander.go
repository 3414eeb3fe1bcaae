package stroke

import "math"

// Point is a 2D point.
type Point struct {
	X, Y float64
}

func (p Point) add(v Vec2) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }
func (p Point) sub(q Point) Vec2 { return Vec2{X: p.X - q.X, Y: p.Y - q.Y} }

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) neg() Vec2            { return Vec2{X: -v.X, Y: -v.Y} }
func (v Vec2) dot(w Vec2) float64   { return v.X*w.X + v.Y*w.Y }
func (v Vec2) cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }
func (v Vec2) length() float64      { return math.Hypot(v.X, v.Y) }
func (v Vec2) perp() Vec2           { return Vec2{X: -v.Y, Y: v.X} }

func (v Vec2) rotate(a float64) Vec2 {
	s, c := math.Sincos(a)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Cap is the shape of an open subpath's endpoints.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join is the shape of the corner between two segments.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Style describes a stroke. MiterLimit is the largest ratio of miter
// length to Width that is still drawn as a miter.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// DefaultStyle returns a 1px butt-capped, miter-joined style with a
// miter limit of 10.
func DefaultStyle() Style {
	return Style{Width: 1, Cap: CapButt, Join: JoinMiter, MiterLimit: 10}
}

// Subpath is a flattened subpath.
type Subpath struct {
	Points []Point
	Closed bool
}

// DefaultTolerance is the largest distance, in pixels, between a round
// cap or join and its polygon approximation.
const DefaultTolerance = 0.25

const maxArcSteps = 256

// Expander converts subpaths into stroke outlines. It is reusable but
// not safe for concurrent use.
type Expander struct {
	style     Style
	tolerance float64

	// turns flatter than this skip the join
	joinThresh float64

	forward  []Point
	backward []Point

	startPt   Point
	startTan  Vec2
	startNorm Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2

	out [][]Point
}

// NewExpander returns an expander for style.
func NewExpander(style Style) *Expander {
	return &Expander{style: style, tolerance: DefaultTolerance}
}

// SetTolerance sets the arc approximation tolerance. Non-positive values
// are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the outline contours of subpaths, to be filled with the
// nonzero rule. It returns nil for a width that is not positive and
// finite. Subpaths with fewer than two distinct points are skipped.
func (e *Expander) Expand(subpaths []Subpath) [][]Point {
	w := e.style.Width
	if !(w > 0) || math.IsInf(w, 0) {
		return nil
	}
	e.out = nil
	e.joinThresh = 2 * e.tolerance / w

	for _, sp := range subpaths {
		pts := dedupe(sp.Points, sp.Closed)
		if len(pts) < 2 {
			continue
		}
		e.reset(pts[0])
		for _, p := range pts[1:] {
			e.lineTo(p)
		}
		if sp.Closed {
			e.lineTo(pts[0])
			e.finishClosed()
		} else {
			e.finish()
		}
	}
	return e.out
}

// Expand is shorthand for NewExpander(style).Expand(subpaths).
func Expand(subpaths []Subpath, style Style) [][]Point {
	return NewExpander(style).Expand(subpaths)
}

func (e *Expander) reset(start Point) {
	e.forward, e.backward = nil, nil
	e.startPt, e.lastPt = start, start
	e.startTan, e.startNorm = Vec2{}, Vec2{}
	e.lastTan, e.lastNorm = Vec2{}, Vec2{}
}

// normal returns the left normal of tan scaled to half the width. The
// forward offset lies on its negative side.
func (e *Expander) normal(tan Vec2) Vec2 {
	return tan.perp().scale(0.5 * e.style.Width / tan.length())
}

func (e *Expander) lineTo(p Point) {
	tan := p.sub(e.lastPt)
	if tan.length() < 1e-10 {
		return
	}
	norm := e.normal(tan)
	if len(e.forward) == 0 {
		e.forward = append(e.forward, e.lastPt.add(norm.neg()))
		e.backward = append(e.backward, e.lastPt.add(norm))
		e.startTan, e.startNorm = tan, norm
	} else {
		e.join(e.lastPt, tan, norm)
	}
	e.forward = append(e.forward, p.add(norm.neg()))
	e.backward = append(e.backward, p.add(norm))
	e.lastPt, e.lastTan, e.lastNorm = p, tan, norm
}

// join connects the previous segment to one leaving p along cd.
func (e *Expander) join(p Point, cd, norm Vec2) {
	ab := e.lastTan
	cross, dot := ab.cross(cd), ab.dot(cd)
	hypot := math.Hypot(cross, dot)

	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.bevel(p, norm)
		return
	}

	switch e.style.Join {
	case JoinMiter:
		limit := e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limit*limit {
			e.miter(p, ab, cd, norm, cross)
		}
	case JoinRound:
		e.round(p, norm, math.Atan2(cross, dot))
		return
	}
	e.bevel(p, norm)
}

func (e *Expander) bevel(p Point, norm Vec2) {
	e.forward = append(e.forward, p.add(norm.neg()))
	e.backward = append(e.backward, p.add(norm))
}

// miter adds the intersection of the two outer edges. A positive cross
// turns toward the backward side, leaving the forward side outer.
func (e *Expander) miter(p Point, ab, cd, norm Vec2, cross float64) {
	last, this := e.lastNorm.neg(), norm.neg()
	if cross < 0 {
		last, this = e.lastNorm, norm
	}
	from, to := p.add(last), p.add(this)
	h := ab.cross(to.sub(from)) / cross
	tip := to.add(cd.scale(-h))

	if cross > 0 {
		e.forward = append(e.forward, tip)
		e.backward = append(e.backward, p)
	} else {
		e.backward = append(e.backward, tip)
		e.forward = append(e.forward, p)
	}
}

// round sweeps the outer offset from the previous normal to norm.
func (e *Expander) round(p Point, norm Vec2, angle float64) {
	if angle > 0 {
		e.backward = append(e.backward, p.add(norm))
		e.forward = e.arc(e.forward, p, e.lastNorm.neg(), angle)
		return
	}
	e.forward = append(e.forward, p.add(norm.neg()))
	e.backward = e.arc(e.backward, p, e.lastNorm, angle)
}

// arc appends the points of an arc around center starting at
// center+from, excluding the start point.
func (e *Expander) arc(dst []Point, center Point, from Vec2, sweep float64) []Point {
	step := math.Pi / 2
	if r := from.length(); r > e.tolerance {
		step = math.Min(step, 2*math.Acos(1-e.tolerance/r))
	}
	n := max(1, min(int(math.Ceil(math.Abs(sweep)/step)), maxArcSteps))
	for i := 1; i <= n; i++ {
		dst = append(dst, center.add(from.rotate(sweep*float64(i)/float64(n))))
	}
	return dst
}

// capTo appends the cap around center, from center+norm to center-norm,
// excluding the start point.
func (e *Expander) capTo(dst []Point, center Point, norm Vec2) []Point {
	switch e.style.Cap {
	case CapRound:
		return e.arc(dst, center, norm, math.Pi)
	case CapSquare:
		ext := norm.perp()
		return append(dst,
			center.add(norm).add(ext),
			center.add(norm.neg()).add(ext),
			center.add(norm.neg()))
	}
	return append(dst, center.add(norm.neg()))
}

// finish closes an open subpath into a single capped contour.
func (e *Expander) finish() {
	if len(e.forward) == 0 {
		return
	}
	c := make([]Point, 0, len(e.forward)+len(e.backward)+8)
	c = append(c, e.forward...)
	c = e.capTo(c, e.lastPt, e.lastNorm.neg())
	for i := len(e.backward) - 2; i >= 0; i-- {
		c = append(c, e.backward[i])
	}
	c = e.capTo(c, e.startPt, e.startNorm)
	// the start cap ends back on forward[0]
	e.out = append(e.out, c[:len(c)-1])
}

// finishClosed joins the last segment to the first and emits the two
// offset contours.
func (e *Expander) finishClosed() {
	if len(e.forward) == 0 {
		return
	}
	e.join(e.startPt, e.startTan, e.startNorm)

	back := make([]Point, len(e.backward))
	for i, p := range e.backward {
		back[len(back)-1-i] = p
	}
	e.out = append(e.out, e.forward, back)
}

// dedupe drops consecutive duplicate points, and for closed subpaths a
// last point that repeats the first.
func dedupe(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && p.sub(out[len(out)-1]).length() < 1e-9 {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 2 && out[0].sub(out[len(out)-1]).length() < 1e-9 {
		out = out[:len(out)-1]
	}
	return out
}
