package shapes

import "math"

// RectOptions are the construction parameters of a rectangle whose
// top-left corner is (X, Y). Rotate turns it about its centre.
type RectOptions struct {
	X, Y          Num
	Width, Height Num
	Rotate        Num // degrees, clockwise

	Color       string
	BorderColor string
}

// RectDrawOptions override a rectangle for one render.
type RectDrawOptions struct {
	RectOptions
	DrawType DrawType
}

// RectState is a fully resolved rectangle.
type RectState struct {
	X, Y          float64
	Width, Height float64
	Rotate        float64

	Color       string
	BorderColor string
}

var defaultRect = RectState{
	Width:       100,
	Height:      100,
	Color:       "black",
	BorderColor: DefaultBorderColor,
}

func (o RectOptions) resolve(base RectState) RectState {
	return RectState{
		X:           o.X.Or(base.X),
		Y:           o.Y.Or(base.Y),
		Width:       o.Width.Or(base.Width),
		Height:      o.Height.Or(base.Height),
		Rotate:      o.Rotate.Or(base.Rotate),
		Color:       orString(o.Color, base.Color),
		BorderColor: orString(o.BorderColor, base.BorderColor),
	}
}

// Rect is the handle returned by CreateRect and Rect.Draw.
type Rect struct {
	RectState
	DrawType DrawType

	surface Surface
	base    RectState
}

// CreateRect resolves o against the defaults and fills the rectangle on s.
func CreateRect(s Surface, o RectOptions) (Rect, error) {
	base := o.resolve(defaultRect)
	return drawRect(s, base, base, DrawFill)
}

// Draw renders the rectangle again, resolving o against the construction
// parameters.
func (r Rect) Draw(o RectDrawOptions) (Rect, error) {
	return drawRect(r.surface, r.base, o.resolve(r.base), o.DrawType)
}

func drawRect(s Surface, base, st RectState, d DrawType) (Rect, error) {
	if s == nil {
		return Rect{}, ErrNoSurface
	}
	Logger().Debug("shapes: draw", "shape", "rect", "drawType", d,
		"x", st.X, "y", st.Y, "width", st.Width, "height", st.Height)

	hw, hh := st.Width/2, st.Height/2
	s.Save()
	s.Translate(st.X+hw, st.Y+hh)
	s.Rotate(st.Rotate * math.Pi / 180)
	tracePolygon(s, []Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}})
	err := paint(s, d, st.Color, st.BorderColor)
	s.Restore()
	if err != nil {
		return Rect{}, err
	}
	return Rect{RectState: st, DrawType: d, surface: s, base: base}, nil
}
