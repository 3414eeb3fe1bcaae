package shapes

import "math"

// TriangleOptions are the construction parameters of a generic triangle.
//
// SideAB, SideAC and SideBC are shape ratios rather than lengths: they
// skew a fixed unit template (see TriangleVertices) which is then scaled
// by Size, rotated by Rotate degrees and centred on (X, Y).
type TriangleOptions struct {
	X, Y   Num
	SideAB Num
	SideAC Num
	SideBC Num
	Rotate Num // degrees, clockwise
	Size   Num

	Color       string
	BorderColor string
}

// TriangleDrawOptions override a triangle's construction parameters for
// one render.
type TriangleDrawOptions struct {
	TriangleOptions
	DrawType DrawType
}

// TriangleState is a fully resolved generic triangle.
type TriangleState struct {
	X, Y   float64
	SideAB float64
	SideAC float64
	SideBC float64
	Rotate float64
	Size   float64

	Color       string
	BorderColor string
}

var defaultTriangle = TriangleState{
	Size:        50,
	Color:       "black",
	BorderColor: DefaultBorderColor,
}

func (o TriangleOptions) resolve(base TriangleState) TriangleState {
	return TriangleState{
		X:           o.X.Or(base.X),
		Y:           o.Y.Or(base.Y),
		SideAB:      o.SideAB.Or(base.SideAB),
		SideAC:      o.SideAC.Or(base.SideAC),
		SideBC:      o.SideBC.Or(base.SideBC),
		Rotate:      o.Rotate.Or(base.Rotate),
		Size:        o.Size.Or(base.Size),
		Color:       orString(o.Color, base.Color),
		BorderColor: orString(o.BorderColor, base.BorderColor),
	}
}

// Triangle is the handle returned by CreateTriangle and Triangle.Draw.
// The embedded state records the parameters of the render that produced
// the handle.
//
// A handle returned together with an error is the zero Triangle; its Draw
// fails with ErrNoSurface.
type Triangle struct {
	TriangleState
	DrawType DrawType

	surface Surface
	base    TriangleState
}

// CreateTriangle resolves o against the triangle defaults and fills the
// triangle on s.
func CreateTriangle(s Surface, o TriangleOptions) (Triangle, error) {
	base := o.resolve(defaultTriangle)
	return drawTriangle(s, base, base, DrawFill)
}

// Draw renders the triangle again. Overrides in o are resolved against the
// parameters the triangle was created with, never against t's own state,
// so t.Draw(TriangleDrawOptions{}) always repeats the original render.
func (t Triangle) Draw(o TriangleDrawOptions) (Triangle, error) {
	return drawTriangle(t.surface, t.base, o.resolve(t.base), o.DrawType)
}

// Base returns the construction-time parameters Draw resolves against.
func (t Triangle) Base() TriangleState {
	return t.base
}

func drawTriangle(s Surface, base, st TriangleState, d DrawType) (Triangle, error) {
	if s == nil {
		return Triangle{}, ErrNoSurface
	}
	if err := renderTriangle(s, st, d); err != nil {
		return Triangle{}, err
	}
	return Triangle{TriangleState: st, DrawType: d, surface: s, base: base}, nil
}

// renderTriangle builds the template inside a translate/rotate/scale
// bracket. The order of the three transforms is significant.
func renderTriangle(s Surface, st TriangleState, d DrawType) error {
	Logger().Debug("shapes: draw", "shape", "triangle", "drawType", d,
		"x", st.X, "y", st.Y, "size", st.Size, "rotate", st.Rotate)

	v := TriangleVertices(st.SideAB, st.SideAC, st.SideBC)

	s.Save()
	defer s.Restore()
	s.Translate(st.X, st.Y)
	s.Rotate(st.Rotate * math.Pi / 180)
	s.Scale(st.Size, st.Size)
	tracePolygon(s, v[:])
	return paint(s, d, st.Color, st.BorderColor)
}

// TriangleVertices evaluates the unit triangle template for the given side
// ratios. With all ratios zero the template is (0,-1), (-0.6,0), (0.6,0).
// Ratios are not validated; negative values skew the template.
func TriangleVertices(sideAB, sideAC, sideBC float64) [3]Point {
	a := sideAB / 100
	b := sideAC / 100
	c := sideBC / 200
	return [3]Point{
		{X: a - b, Y: -a - b - 1},
		{X: -a - c - 0.6, Y: a},
		{X: 0.6 + b + c, Y: b},
	}
}
