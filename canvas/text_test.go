package canvas

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestFontStoreDefault(t *testing.T) {
	fs := NewFontStore()
	if fs.Default() == nil {
		t.Fatal("Default() is nil")
	}
	if got := fs.Families(); len(got) != 1 || got[0] != DefaultFamily {
		t.Errorf("Families() = %v, want [%s]", got, DefaultFamily)
	}
	if _, ok := fs.Lookup("Sans-Serif", FontOptions{}); !ok {
		t.Error("family lookup should ignore case")
	}
	if _, ok := fs.Lookup("Papyrus", FontOptions{}); ok {
		t.Error("unknown family should not resolve")
	}
}

func TestFontStoreAddFamily(t *testing.T) {
	fs := NewFontStore()
	if err := fs.AddFontFamily(gobold.TTF, "Go", FontOptions{Weight: "bold"}); err != nil {
		t.Fatal(err)
	}

	bold, ok := fs.Lookup("go", FontOptions{Weight: "bold"})
	if !ok {
		t.Fatal("registered face not found")
	}
	// no normal face registered, so any face of the family matches
	if f, ok := fs.Lookup("GO", FontOptions{}); !ok || f != bold {
		t.Error("missing normal face should fall back to the bold face")
	}
	if got := fs.Families(); len(got) != 2 {
		t.Errorf("Families() = %v, want 2 entries", got)
	}
}

func TestFontStoreErrors(t *testing.T) {
	fs := NewFontStore()
	if err := fs.AddFontFamily(nil, "x", FontOptions{}); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("empty data error = %v, want ErrEmptyFontData", err)
	}
	if err := fs.AddFontFamily([]byte("not a font"), "x", FontOptions{}); err == nil {
		t.Error("garbage data should fail to parse")
	}
	if err := fs.AddFontFile("testdata/does-not-exist.ttf", "x", FontOptions{}); err == nil {
		t.Error("missing file should fail")
	}
}

func TestSetFont(t *testing.T) {
	dc := NewContext(10, 10)
	if err := dc.SetFont("monospace-that-does-not-exist", 12); err != nil {
		t.Fatalf("unknown family should fall back, got %v", err)
	}
	if dc.state.font != dc.Fonts().Default() {
		t.Error("unknown family did not select the default face")
	}
	if err := dc.SetFont(DefaultFamily, -1); !errors.Is(err, ErrInvalidFontSize) {
		t.Errorf("negative size error = %v, want ErrInvalidFontSize", err)
	}
	if err := dc.SetFont(DefaultFamily, math.NaN()); !errors.Is(err, ErrInvalidFontSize) {
		t.Errorf("NaN size error = %v, want ErrInvalidFontSize", err)
	}
}

func TestTextPath(t *testing.T) {
	dc := NewContext(120, 60)
	if err := dc.SetFont(DefaultFamily, 40); err != nil {
		t.Fatal(err)
	}
	if err := dc.TextPath("Hi", 5, 45); err != nil {
		t.Fatal(err)
	}
	polys := dc.Path()
	if len(polys) < 2 {
		t.Fatalf("got %d contours for \"Hi\", want at least 2", len(polys))
	}
	for _, poly := range polys {
		for _, p := range poly.Points {
			if p.Y > 45+1 || p.Y < 0 {
				t.Fatalf("point %v lies outside the glyph box above the baseline", p)
			}
		}
	}

	_ = dc.SetFillStyle("black")
	_ = dc.Fill()
	painted := 0
	for i := 3; i < len(dc.Image().Pix); i += 4 {
		if dc.Image().Pix[i] > 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("filled text painted no pixels")
	}
}

func TestTextPathZeroSize(t *testing.T) {
	dc := NewContext(10, 10)
	_ = dc.SetFont(DefaultFamily, 0)
	if err := dc.TextPath("abc", 0, 0); err != nil {
		t.Fatal(err)
	}
	if len(dc.Path()) != 0 {
		t.Error("zero font size should add no contours")
	}
}

func TestMeasureText(t *testing.T) {
	dc := NewContext(10, 10)
	_ = dc.SetFont(DefaultFamily, 20)
	short, err := dc.MeasureText("i")
	if err != nil {
		t.Fatal(err)
	}
	long, err := dc.MeasureText("iiii")
	if err != nil {
		t.Fatal(err)
	}
	if short <= 0 {
		t.Fatalf("MeasureText(i) = %v, want > 0", short)
	}
	if math.Abs(long-4*short) > 1e-9 {
		t.Errorf("MeasureText(iiii) = %v, want %v", long, 4*short)
	}

	empty, _ := dc.MeasureText("")
	if empty != 0 {
		t.Errorf("MeasureText(\"\") = %v, want 0", empty)
	}
}

func TestGlyphOutlineCache(t *testing.T) {
	fs := NewFontStore()
	dc := NewContext(100, 40, WithFonts(fs))
	_ = dc.SetFont(DefaultFamily, 20)

	_ = dc.TextPath("oo", 0, 30)
	first := dc.Path()
	dc.BeginPath()
	_ = dc.TextPath("oo", 0, 30)
	second := dc.Path()

	st := fs.glyphs.Stats()
	if st.Misses != 1 || st.Hits != 3 || st.Len != 1 {
		t.Errorf("cache stats = %+v, want 1 miss and 3 hits", st)
	}
	if len(first) != len(second) {
		t.Fatalf("contours = %d then %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i].Points) != len(second[i].Points) {
			t.Errorf("contour %d changed between renders", i)
		}
	}

	// a different size is a different outline
	_ = dc.SetFont(DefaultFamily, 10)
	_ = dc.TextPath("o", 0, 30)
	if got := fs.glyphs.Stats().Misses; got != 2 {
		t.Errorf("Misses = %d, want 2", got)
	}
}
