package shapes

import "math"

// CircleOptions are the construction parameters of a circle.
type CircleOptions struct {
	X, Y   Num
	Radius Num

	Color       string
	BorderColor string
}

// CircleDrawOptions override a circle for one render.
type CircleDrawOptions struct {
	CircleOptions
	DrawType DrawType
}

// CircleState is a fully resolved circle.
type CircleState struct {
	X, Y   float64
	Radius float64

	Color       string
	BorderColor string
}

var defaultCircle = CircleState{
	Radius:      50,
	Color:       "black",
	BorderColor: DefaultBorderColor,
}

func (o CircleOptions) resolve(base CircleState) CircleState {
	return CircleState{
		X:           o.X.Or(base.X),
		Y:           o.Y.Or(base.Y),
		Radius:      o.Radius.Or(base.Radius),
		Color:       orString(o.Color, base.Color),
		BorderColor: orString(o.BorderColor, base.BorderColor),
	}
}

// Circle is the handle returned by CreateCircle and Circle.Draw.
type Circle struct {
	CircleState
	DrawType DrawType

	surface Surface
	base    CircleState
}

// CreateCircle resolves o against the defaults and fills the circle on s.
func CreateCircle(s Surface, o CircleOptions) (Circle, error) {
	base := o.resolve(defaultCircle)
	return drawCircle(s, base, base, DrawFill)
}

// Draw renders the circle again, resolving o against the construction
// parameters.
func (c Circle) Draw(o CircleDrawOptions) (Circle, error) {
	return drawCircle(c.surface, c.base, o.resolve(c.base), o.DrawType)
}

func drawCircle(s Surface, base, st CircleState, d DrawType) (Circle, error) {
	if s == nil {
		return Circle{}, ErrNoSurface
	}
	Logger().Debug("shapes: draw", "shape", "circle", "drawType", d,
		"x", st.X, "y", st.Y, "radius", st.Radius)

	s.BeginPath()
	s.Arc(st.X, st.Y, st.Radius, 0, 2*math.Pi)
	s.ClosePath()
	if err := paint(s, d, st.Color, st.BorderColor); err != nil {
		return Circle{}, err
	}
	return Circle{CircleState: st, DrawType: d, surface: s, base: base}, nil
}
