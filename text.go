package shapes

// TextOptions are the construction parameters of a text shape. (X, Y) is
// the start of the baseline.
type TextOptions struct {
	Text string
	X, Y Num
	Font string
	Size Num

	Color       string
	BorderColor string
}

// TextDrawOptions override a text shape for one render.
type TextDrawOptions struct {
	TextOptions
	DrawType DrawType
}

// TextState is a fully resolved text shape.
type TextState struct {
	Text string
	X, Y float64
	Font string
	Size float64

	Color       string
	BorderColor string
}

var defaultText = TextState{
	Font:        "sans-serif",
	Size:        16,
	Color:       "black",
	BorderColor: DefaultBorderColor,
}

func (o TextOptions) resolve(base TextState) TextState {
	return TextState{
		Text:        orString(o.Text, base.Text),
		X:           o.X.Or(base.X),
		Y:           o.Y.Or(base.Y),
		Font:        orString(o.Font, base.Font),
		Size:        o.Size.Or(base.Size),
		Color:       orString(o.Color, base.Color),
		BorderColor: orString(o.BorderColor, base.BorderColor),
	}
}

// Text is the handle returned by CreateText and Text.Draw.
type Text struct {
	TextState
	DrawType DrawType

	surface TextSurface
	base    TextState
}

// CreateText resolves o against the defaults and fills the text on s.
// s must implement TextSurface.
func CreateText(s Surface, o TextOptions) (Text, error) {
	ts, ok := s.(TextSurface)
	if !ok {
		return Text{}, ErrTextUnsupported
	}
	base := o.resolve(defaultText)
	return drawText(ts, base, base, DrawFill)
}

// Draw renders the text again, resolving o against the construction
// parameters.
func (t Text) Draw(o TextDrawOptions) (Text, error) {
	return drawText(t.surface, t.base, o.resolve(t.base), o.DrawType)
}

func drawText(s TextSurface, base, st TextState, d DrawType) (Text, error) {
	if s == nil {
		return Text{}, ErrNoSurface
	}
	Logger().Debug("shapes: draw", "shape", "text", "drawType", d,
		"font", st.Font, "size", st.Size, "len", len(st.Text))

	if err := s.SetFont(st.Font, st.Size); err != nil {
		return Text{}, err
	}
	s.BeginPath()
	if err := s.TextPath(st.Text, st.X, st.Y); err != nil {
		return Text{}, err
	}
	if err := paint(s, d, st.Color, st.BorderColor); err != nil {
		return Text{}, err
	}
	return Text{TextState: st, DrawType: d, surface: s, base: base}, nil
}
