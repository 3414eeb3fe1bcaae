package canvas

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SetFont selects the face for TextPath. Unknown families fall back to
// the store's default face.
func (c *Context) SetFont(family string, size float64) error {
	return c.SetFontFace(family, size, FontOptions{})
}

// SetFontFace is SetFont with an explicit style and weight.
func (c *Context) SetFontFace(family string, size float64, opts FontOptions) error {
	if size < 0 || math.IsNaN(size) {
		return ErrInvalidFontSize
	}
	f, ok := c.fonts.Lookup(family, opts)
	if !ok {
		Logger().Warn("canvas: unknown font family, using default", "family", family)
		f = c.fonts.Default()
	}
	c.state.font = f
	c.state.fontSize = size
	return nil
}

// TextPath appends the glyph outlines of s to the current path. (x, y) is
// the start of the baseline in user space. Kerning is applied when the
// font has a kern table.
func (c *Context) TextPath(s string, x, y float64) error {
	f := c.state.font
	if f == nil || c.state.fontSize == 0 {
		return nil
	}
	ppem := fixed.Int26_6(c.state.fontSize * 64)

	var buf sfnt.Buffer
	pen := x
	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range s {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return err
		}
		if hasPrev {
			if k, err := f.Kern(&buf, prev, gid, ppem, font.HintingNone); err == nil {
				pen += fixedToFloat(k)
			}
		}

		segs, err := c.fonts.outline(f, &buf, gid, ppem)
		if err != nil {
			return err
		}
		c.appendGlyph(segs, pen, y)

		adv, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return err
		}
		pen += fixedToFloat(adv)
		prev, hasPrev = gid, true
	}
	return nil
}

// MeasureText returns the advance width of s with the current font.
func (c *Context) MeasureText(s string) (float64, error) {
	f := c.state.font
	if f == nil {
		return 0, nil
	}
	ppem := fixed.Int26_6(c.state.fontSize * 64)

	var buf sfnt.Buffer
	var w float64
	for _, r := range s {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return 0, err
		}
		adv, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return 0, err
		}
		w += fixedToFloat(adv)
	}
	return w, nil
}

// appendGlyph adds one glyph's segments, whose Y axis points down, at
// origin (ox, oy).
func (c *Context) appendGlyph(segs sfnt.Segments, ox, oy float64) {
	pt := func(p fixed.Point26_6) (float64, float64) {
		return ox + fixedToFloat(p.X), oy + fixedToFloat(p.Y)
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			c.ClosePath()
			x, y := pt(seg.Args[0])
			c.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			c.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			c.QuadraticTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			c.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	c.ClosePath()
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
