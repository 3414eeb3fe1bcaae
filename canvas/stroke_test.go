package canvas

import (
	"testing"
)

func strokeLine(t *testing.T, lc LineCap) *Context {
	t.Helper()
	dc := NewContext(100, 100)
	dc.MoveTo(20, 50)
	dc.LineTo(80, 50)
	_ = dc.SetStrokeStyle("blue")
	dc.SetLineWidth(10)
	dc.SetLineCap(lc)
	if err := dc.Stroke(); err != nil {
		t.Fatal(err)
	}
	return dc
}

func TestStrokeLineCaps(t *testing.T) {
	tests := []struct {
		name   string
		lc     LineCap
		beyond bool // pixel just past the endpoint
		corner bool // pixel at the outer corner of a square cap
	}{
		{"butt", LineCapButt, false, false},
		{"round", LineCapRound, true, false},
		{"square", LineCapSquare, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := strokeLine(t, tt.lc).Image()
			if got := img.RGBAAt(50, 50); !near(got, opaqueBlue, 2) {
				t.Errorf("body pixel = %v, want blue", got)
			}
			if got := img.RGBAAt(17, 50).A > 250; got != tt.beyond {
				t.Errorf("pixel past the end painted = %v, want %v", got, tt.beyond)
			}
			if got := img.RGBAAt(15, 45).A > 250; got != tt.corner {
				t.Errorf("cap corner painted = %v, want %v", got, tt.corner)
			}
		})
	}
}

func TestStrokeLineJoins(t *testing.T) {
	tests := []struct {
		name  string
		join  LineJoin
		limit float64
		tip   bool
	}{
		{"miter", LineJoinMiter, 10, true},
		{"miter over limit", LineJoinMiter, 1, false},
		{"round", LineJoinRound, 10, false},
		{"bevel", LineJoinBevel, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := NewContext(100, 100)
			dc.MoveTo(20, 20)
			dc.LineTo(80, 20)
			dc.LineTo(80, 80)
			_ = dc.SetStrokeStyle("blue")
			dc.SetLineWidth(10)
			dc.SetLineJoin(tt.join)
			dc.SetMiterLimit(tt.limit)
			if err := dc.Stroke(); err != nil {
				t.Fatal(err)
			}

			img := dc.Image()
			if got := img.RGBAAt(80, 50); !near(got, opaqueBlue, 2) {
				t.Errorf("second segment pixel = %v, want blue", got)
			}
			// the outer corner of the square around the vertex
			if got := img.RGBAAt(84, 15).A > 250; got != tt.tip {
				t.Errorf("corner painted = %v, want %v", got, tt.tip)
			}
			if tt.join == LineJoinRound {
				if got := img.RGBAAt(82, 17); !near(got, opaqueBlue, 2) {
					t.Errorf("round join pixel = %v, want blue", got)
				}
			}
		})
	}
}

func TestStrokeClosedRingLeavesInterior(t *testing.T) {
	for _, lj := range []LineJoin{LineJoinMiter, LineJoinRound, LineJoinBevel} {
		dc := NewContext(100, 100)
		square(dc, 20, 20, 60)
		_ = dc.SetStrokeStyle("blue")
		dc.SetLineWidth(6)
		dc.SetLineJoin(lj)
		if err := dc.Stroke(); err != nil {
			t.Fatal(err)
		}
		img := dc.Image()
		if got := img.RGBAAt(50, 20); !near(got, opaqueBlue, 2) {
			t.Errorf("join %d: edge pixel = %v, want blue", lj, got)
		}
		if got := img.RGBAAt(50, 50); got != transparent {
			t.Errorf("join %d: interior pixel = %v, want transparent", lj, got)
		}
	}
}

func TestLineStyleSaveRestore(t *testing.T) {
	dc := NewContext(10, 10)
	if dc.LineCap() != LineCapButt || dc.LineJoin() != LineJoinMiter {
		t.Fatalf("defaults = %v/%v, want butt/miter", dc.LineCap(), dc.LineJoin())
	}
	dc.Save()
	dc.SetLineCap(LineCapRound)
	dc.SetLineJoin(LineJoinBevel)
	dc.Restore()
	if dc.LineCap() != LineCapButt || dc.LineJoin() != LineJoinMiter {
		t.Errorf("after Restore = %v/%v, want butt/miter", dc.LineCap(), dc.LineJoin())
	}
}

func TestStrokePolygonsDegenerate(t *testing.T) {
	st := NewContext(1, 1).state
	st.lineWidth = 0
	ok := []Polygon{{Points: []Point{Pt(0, 0), Pt(10, 0)}}}
	if got := strokePolygons(ok, st); got != nil {
		t.Errorf("zero width produced %d contours", len(got))
	}

	st.lineWidth = 2
	dot := []Polygon{{Points: []Point{Pt(1, 1), Pt(1, 1)}}}
	if got := strokePolygons(dot, st); len(got) != 0 {
		t.Errorf("zero-length subpath produced %d contours", len(got))
	}
	if got := strokePolygons(ok, st); len(got) != 1 || len(got[0]) != 4 {
		t.Errorf("segment outline = %v, want one 4-point contour", got)
	}
}
