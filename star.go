package shapes

import "math"

// StarOptions are the construction parameters of a star centred on
// (X, Y). The first outer point is straight up before rotation.
type StarOptions struct {
	X, Y        Num
	Spikes      Num
	OuterRadius Num
	InnerRadius Num
	Rotate      Num // degrees, clockwise

	Color       string
	BorderColor string
}

// StarDrawOptions override a star for one render.
type StarDrawOptions struct {
	StarOptions
	DrawType DrawType
}

// StarState is a fully resolved star.
type StarState struct {
	X, Y        float64
	Spikes      float64
	OuterRadius float64
	InnerRadius float64
	Rotate      float64

	Color       string
	BorderColor string
}

var defaultStar = StarState{
	Spikes:      5,
	OuterRadius: 50,
	InnerRadius: 25,
	Color:       "black",
	BorderColor: DefaultBorderColor,
}

func (o StarOptions) resolve(base StarState) StarState {
	return StarState{
		X:           o.X.Or(base.X),
		Y:           o.Y.Or(base.Y),
		Spikes:      o.Spikes.Or(base.Spikes),
		OuterRadius: o.OuterRadius.Or(base.OuterRadius),
		InnerRadius: o.InnerRadius.Or(base.InnerRadius),
		Rotate:      o.Rotate.Or(base.Rotate),
		Color:       orString(o.Color, base.Color),
		BorderColor: orString(o.BorderColor, base.BorderColor),
	}
}

// Star is the handle returned by CreateStar and Star.Draw.
type Star struct {
	StarState
	DrawType DrawType

	surface Surface
	base    StarState
}

// CreateStar resolves o against the defaults and fills the star on s.
func CreateStar(s Surface, o StarOptions) (Star, error) {
	base := o.resolve(defaultStar)
	return drawStar(s, base, base, DrawFill)
}

// Draw renders the star again, resolving o against the construction
// parameters.
func (st Star) Draw(o StarDrawOptions) (Star, error) {
	return drawStar(st.surface, st.base, o.resolve(st.base), o.DrawType)
}

func drawStar(s Surface, base, st StarState, d DrawType) (Star, error) {
	if s == nil {
		return Star{}, ErrNoSurface
	}
	Logger().Debug("shapes: draw", "shape", "star", "drawType", d,
		"x", st.X, "y", st.Y, "spikes", st.Spikes)

	tracePolygon(s, StarVertices(st))
	if err := paint(s, d, st.Color, st.BorderColor); err != nil {
		return Star{}, err
	}
	return Star{StarState: st, DrawType: d, surface: s, base: base}, nil
}

// MaxSpikes is the largest number of spikes a star is drawn with.
const MaxSpikes = 1 << 12

// spikeCount truncates v to a spike count in [2, MaxSpikes]. NaN and
// infinities count as 2.
func spikeCount(v float64) int {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0) || v < 2:
		return 2
	case v > MaxSpikes:
		return MaxSpikes
	}
	return int(v)
}

// StarVertices returns the alternating outer and inner points of st.
// The spike count is clamped to [2, MaxSpikes].
func StarVertices(st StarState) []Point {
	n := spikeCount(st.Spikes)
	step := math.Pi / float64(n)
	a := -math.Pi/2 + st.Rotate*math.Pi/180

	pts := make([]Point, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		r := st.OuterRadius
		if i%2 == 1 {
			r = st.InnerRadius
		}
		pts = append(pts, Point{X: st.X + r*math.Cos(a), Y: st.Y + r*math.Sin(a)})
		a += step
	}
	return pts
}
