package canvas

import "github.com/gogpu/shapes/internal/stroke"

// LineCap is the shape drawn at the ends of open subpaths.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the shape drawn where two segments of a subpath meet.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

func (lc LineCap) stroke() stroke.Cap {
	switch lc {
	case LineCapRound:
		return stroke.CapRound
	case LineCapSquare:
		return stroke.CapSquare
	}
	return stroke.CapButt
}

func (lj LineJoin) stroke() stroke.Join {
	switch lj {
	case LineJoinRound:
		return stroke.JoinRound
	case LineJoinBevel:
		return stroke.JoinBevel
	}
	return stroke.JoinMiter
}

// strokePolygons returns the outline of polys stroked with the line style
// of st.
func strokePolygons(polys []Polygon, st state) [][]Point {
	subpaths := make([]stroke.Subpath, len(polys))
	for i, poly := range polys {
		pts := make([]stroke.Point, len(poly.Points))
		for j, p := range poly.Points {
			pts[j] = stroke.Point(p)
		}
		subpaths[i] = stroke.Subpath{Points: pts, Closed: poly.Closed}
	}

	contours := stroke.Expand(subpaths, stroke.Style{
		Width:      st.lineWidth,
		Cap:        st.lineCap.stroke(),
		Join:       st.lineJoin.stroke(),
		MiterLimit: st.miterLimit,
	})
	if contours == nil {
		return nil
	}
	out := make([][]Point, len(contours))
	for i, c := range contours {
		pts := make([]Point, len(c))
		for j, p := range c {
			pts[j] = Point(p)
		}
		out[i] = pts
	}
	return out
}
