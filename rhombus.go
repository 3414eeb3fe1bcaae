package shapes

import "math"

// RhombusOptions are the construction parameters of a rhombus centred on
// (X, Y) with diagonals Width and Height.
type RhombusOptions struct {
	X, Y          Num
	Width, Height Num
	Rotate        Num // degrees, clockwise

	Color       string
	BorderColor string
}

// RhombusDrawOptions override a rhombus for one render.
type RhombusDrawOptions struct {
	RhombusOptions
	DrawType DrawType
}

// RhombusState is a fully resolved rhombus.
type RhombusState struct {
	X, Y          float64
	Width, Height float64
	Rotate        float64

	Color       string
	BorderColor string
}

var defaultRhombus = RhombusState{
	Width:       50,
	Height:      50,
	Color:       "black",
	BorderColor: DefaultBorderColor,
}

func (o RhombusOptions) resolve(base RhombusState) RhombusState {
	return RhombusState{
		X:           o.X.Or(base.X),
		Y:           o.Y.Or(base.Y),
		Width:       o.Width.Or(base.Width),
		Height:      o.Height.Or(base.Height),
		Rotate:      o.Rotate.Or(base.Rotate),
		Color:       orString(o.Color, base.Color),
		BorderColor: orString(o.BorderColor, base.BorderColor),
	}
}

// Rhombus is the handle returned by CreateRhombus and Rhombus.Draw.
type Rhombus struct {
	RhombusState
	DrawType DrawType

	surface Surface
	base    RhombusState
}

// CreateRhombus resolves o against the defaults and fills the rhombus on s.
func CreateRhombus(s Surface, o RhombusOptions) (Rhombus, error) {
	base := o.resolve(defaultRhombus)
	return drawRhombus(s, base, base, DrawFill)
}

// Draw renders the rhombus again, resolving o against the construction
// parameters.
func (r Rhombus) Draw(o RhombusDrawOptions) (Rhombus, error) {
	return drawRhombus(r.surface, r.base, o.resolve(r.base), o.DrawType)
}

func drawRhombus(s Surface, base, st RhombusState, d DrawType) (Rhombus, error) {
	if s == nil {
		return Rhombus{}, ErrNoSurface
	}
	Logger().Debug("shapes: draw", "shape", "rhombus", "drawType", d,
		"x", st.X, "y", st.Y, "width", st.Width, "height", st.Height)

	hw, hh := st.Width/2, st.Height/2
	s.Save()
	s.Translate(st.X, st.Y)
	s.Rotate(st.Rotate * math.Pi / 180)
	tracePolygon(s, []Point{{0, -hh}, {hw, 0}, {0, hh}, {-hw, 0}})
	err := paint(s, d, st.Color, st.BorderColor)
	s.Restore()
	if err != nil {
		return Rhombus{}, err
	}
	return Rhombus{RhombusState: st, DrawType: d, surface: s, base: base}, nil
}
