package shapes

// EquiTriangleOptions are the construction parameters of a triangle
// centred on (X, Y) with a flat base and the apex straight up.
type EquiTriangleOptions struct {
	X, Y   Num
	Height Num

	Color       string
	BorderColor string
}

// EquiTriangleDrawOptions override an EquiTriangle for one render.
type EquiTriangleDrawOptions struct {
	EquiTriangleOptions
	DrawType DrawType
}

// EquiTriangleState is a fully resolved EquiTriangle.
type EquiTriangleState struct {
	X, Y   float64
	Height float64

	Color       string
	BorderColor string
}

var defaultEquiTriangle = EquiTriangleState{
	Height:      50,
	Color:       "black",
	BorderColor: DefaultBorderColor,
}

func (o EquiTriangleOptions) resolve(base EquiTriangleState) EquiTriangleState {
	return EquiTriangleState{
		X:           o.X.Or(base.X),
		Y:           o.Y.Or(base.Y),
		Height:      o.Height.Or(base.Height),
		Color:       orString(o.Color, base.Color),
		BorderColor: orString(o.BorderColor, base.BorderColor),
	}
}

// EquiTriangle is the handle returned by CreateEquiTriangle and
// EquiTriangle.Draw.
type EquiTriangle struct {
	EquiTriangleState
	DrawType DrawType

	surface Surface
	base    EquiTriangleState
}

// CreateEquiTriangle resolves o against the defaults and fills the
// triangle on s.
func CreateEquiTriangle(s Surface, o EquiTriangleOptions) (EquiTriangle, error) {
	base := o.resolve(defaultEquiTriangle)
	return drawEquiTriangle(s, base, base, DrawFill)
}

// Draw renders the triangle again, resolving o against the construction
// parameters.
func (t EquiTriangle) Draw(o EquiTriangleDrawOptions) (EquiTriangle, error) {
	return drawEquiTriangle(t.surface, t.base, o.resolve(t.base), o.DrawType)
}

// Base returns the construction-time parameters Draw resolves against.
func (t EquiTriangle) Base() EquiTriangleState {
	return t.base
}

func drawEquiTriangle(s Surface, base, st EquiTriangleState, d DrawType) (EquiTriangle, error) {
	if s == nil {
		return EquiTriangle{}, ErrNoSurface
	}
	Logger().Debug("shapes: draw", "shape", "equitriangle", "drawType", d,
		"x", st.X, "y", st.Y, "height", st.Height)

	v := EquiTriangleVertices(st.X, st.Y, st.Height)
	tracePolygon(s, v[:])
	if err := paint(s, d, st.Color, st.BorderColor); err != nil {
		return EquiTriangle{}, err
	}
	return EquiTriangle{EquiTriangleState: st, DrawType: d, surface: s, base: base}, nil
}

// EquiTriangleVertices returns the base-left, apex and base-right vertices
// of the triangle of the given height centred on (x, y). The base is as
// wide as the triangle is high.
func EquiTriangleVertices(x, y, height float64) [3]Point {
	r := height / 2
	return [3]Point{
		{X: x - r, Y: y + r},
		{X: x, Y: y - r},
		{X: x + r, Y: y + r},
	}
}
