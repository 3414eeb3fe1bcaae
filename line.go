package shapes

// LineOptions are the construction parameters of a straight line.
// Lines are always stroked, Width being the line width.
type LineOptions struct {
	X1, Y1 Num
	X2, Y2 Num
	Width  Num

	Color string
}

// LineState is a fully resolved line.
type LineState struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64

	Color string
}

var defaultLine = LineState{
	X2:    100,
	Y2:    100,
	Width: StrokeWidth,
	Color: "black",
}

func (o LineOptions) resolve(base LineState) LineState {
	return LineState{
		X1:    o.X1.Or(base.X1),
		Y1:    o.Y1.Or(base.Y1),
		X2:    o.X2.Or(base.X2),
		Y2:    o.Y2.Or(base.Y2),
		Width: o.Width.Or(base.Width),
		Color: orString(o.Color, base.Color),
	}
}

// Line is the handle returned by CreateLine and Line.Draw.
type Line struct {
	LineState

	surface Surface
	base    LineState
}

// CreateLine resolves o against the defaults and strokes the line on s.
func CreateLine(s Surface, o LineOptions) (Line, error) {
	base := o.resolve(defaultLine)
	return drawLine(s, base, base)
}

// Draw strokes the line again, resolving o against the construction
// parameters.
func (l Line) Draw(o LineOptions) (Line, error) {
	return drawLine(l.surface, l.base, o.resolve(l.base))
}

func drawLine(s Surface, base, st LineState) (Line, error) {
	if s == nil {
		return Line{}, ErrNoSurface
	}
	Logger().Debug("shapes: draw", "shape", "line",
		"x1", st.X1, "y1", st.Y1, "x2", st.X2, "y2", st.Y2)

	s.BeginPath()
	s.MoveTo(st.X1, st.Y1)
	s.LineTo(st.X2, st.Y2)
	if err := s.SetStrokeStyle(st.Color); err != nil {
		return Line{}, err
	}
	s.SetLineWidth(st.Width)
	if err := s.Stroke(); err != nil {
		return Line{}, err
	}
	return Line{LineState: st, surface: s, base: base}, nil
}
