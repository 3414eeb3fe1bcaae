// Package svg provides an SVG backend for the recording system.
//
// Paths are emitted in device space: the backend tracks the transform and
// flattens arcs and glyph outlines with canvas.Context, then writes each
// Fill or Stroke as one <path> element. Images are embedded as PNG data
// URIs.
//
//	import _ "github.com/gogpu/shapes/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	_ = rec.Playback(backend)
//	_ = backend.(recording.FileBackend).SaveToFile("out.svg")
package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/shapes/canvas"
	"github.com/gogpu/shapes/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	}, ".svg")
}

// Backend writes a recording as an SVG document.
type Backend struct {
	fonts      *canvas.FontStore
	background string

	geom *canvas.Context
	buf  bytes.Buffer
	doc  *svgo.SVG
	done bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.TextBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithFonts sets the font store used to outline text.
func WithFonts(fs *canvas.FontStore) Option {
	return func(b *Backend) {
		b.fonts = fs
	}
}

// WithBackground adds a full-size rectangle of the given CSS color behind
// the drawing.
func WithBackground(color string) Option {
	return func(b *Backend) {
		b.background = color
	}
}

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a width x height document.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return canvas.ErrInvalidSize
	}
	var opts []canvas.Option
	if b.fonts != nil {
		opts = append(opts, canvas.WithFonts(b.fonts))
	}
	// Only the path and state are used, so the pixel buffer stays tiny.
	b.geom = canvas.NewContext(1, 1, opts...)
	b.buf.Reset()
	b.done = false
	b.doc = svgo.New(&b.buf)
	b.doc.Start(width, height)

	if b.background != "" {
		bg, err := canvas.ParseColor(b.background)
		if err != nil {
			return err
		}
		b.doc.Rect(0, 0, width, height, paintStyle("fill", bg))
	}
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	if !b.done {
		b.doc.End()
		b.done = true
	}
	return nil
}

// Bytes returns the document written so far.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.doc == nil {
		return 0, recording.ErrNotStarted
	}
	return bytes.NewReader(b.buf.Bytes()).WriteTo(w)
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	if b.doc == nil {
		return recording.ErrNotStarted
	}
	return os.WriteFile(path, b.buf.Bytes(), 0o644) //nolint:gosec // output file, world-readable like other images
}

func (b *Backend) Save()                         { b.geom.Save() }
func (b *Backend) Restore()                      { b.geom.Restore() }
func (b *Backend) BeginPath()                    { b.geom.BeginPath() }
func (b *Backend) MoveTo(x, y float64)           { b.geom.MoveTo(x, y) }
func (b *Backend) LineTo(x, y float64)           { b.geom.LineTo(x, y) }
func (b *Backend) ClosePath()                    { b.geom.ClosePath() }
func (b *Backend) Translate(x, y float64)        { b.geom.Translate(x, y) }
func (b *Backend) Rotate(angle float64)          { b.geom.Rotate(angle) }
func (b *Backend) Scale(x, y float64)            { b.geom.Scale(x, y) }
func (b *Backend) SetLineWidth(width float64)    { b.geom.SetLineWidth(width) }
func (b *Backend) SetFillStyle(c string) error   { return b.geom.SetFillStyle(c) }
func (b *Backend) SetStrokeStyle(c string) error { return b.geom.SetStrokeStyle(c) }

func (b *Backend) Arc(x, y, r, startAngle, endAngle float64) {
	b.geom.Arc(x, y, r, startAngle, endAngle)
}

// SetFont selects the face used to outline text.
func (b *Backend) SetFont(family string, size float64) error {
	return b.geom.SetFont(family, size)
}

// TextPath appends glyph outlines to the current path.
func (b *Backend) TextPath(s string, x, y float64) error {
	return b.geom.TextPath(s, x, y)
}

// Fill writes the current path as a filled <path>.
func (b *Backend) Fill() error {
	d := pathData(b.geom.Path(), true)
	col := b.geom.FillStyle()
	if d == "" || col.A == 0 {
		return nil
	}
	b.doc.Path(d, paintStyle("fill", col)+";fill-rule:nonzero")
	return nil
}

// Stroke writes the current path as a stroked <path>.
func (b *Backend) Stroke() error {
	d := pathData(b.geom.Path(), false)
	col := b.geom.StrokeStyle()
	w := b.geom.LineWidth()
	if d == "" || col.A == 0 || w <= 0 || math.IsNaN(w) {
		return nil
	}
	style := "fill:none;" + paintStyle("stroke", col) +
		";stroke-width:" + num(w) + ";stroke-linejoin:miter;stroke-miterlimit:10"
	b.doc.Path(d, style)
	return nil
}

// DrawImage embeds img as a PNG placed by the current transform.
func (b *Backend) DrawImage(img image.Image, x, y, width, height float64) error {
	bounds := img.Bounds()
	if width == 0 || height == 0 || bounds.Empty() {
		return nil
	}
	var enc bytes.Buffer
	if err := png.Encode(&enc, img); err != nil {
		return fmt.Errorf("svg: encode image: %w", err)
	}
	m := b.geom.GetTransform().
		Multiply(canvas.Translate(x, y)).
		Multiply(canvas.Scale(width/float64(bounds.Dx()), height/float64(bounds.Dy())))
	attrs := []string{`preserveAspectRatio="none"`}
	if !m.IsIdentity() {
		attrs = append(attrs, fmt.Sprintf(`transform="matrix(%s %s %s %s %s %s)"`,
			num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F)))
	}
	b.doc.Image(0, 0, bounds.Dx(), bounds.Dy(),
		"data:image/png;base64,"+base64.StdEncoding.EncodeToString(enc.Bytes()),
		attrs...)
	return nil
}

// pathData renders polygons as SVG path data. Open subpaths are closed
// for fills, as the canvas fill rule does.
func pathData(polys []canvas.Polygon, fill bool) string {
	var sb strings.Builder
	for _, poly := range polys {
		if !finite(poly.Points) {
			continue
		}
		for i, p := range poly.Points {
			if i == 0 {
				sb.WriteString("M")
			} else {
				sb.WriteString(" L")
			}
			sb.WriteString(num(p.X))
			sb.WriteByte(' ')
			sb.WriteString(num(p.Y))
		}
		if poly.Closed || fill {
			sb.WriteString(" Z")
		}
		sb.WriteByte(' ')
	}
	return strings.TrimSpace(sb.String())
}

// paintStyle returns "<prop>:#rrggbb" plus an opacity entry for
// translucent colors.
func paintStyle(prop string, c color.NRGBA) string {
	s := fmt.Sprintf("%s:#%02x%02x%02x", prop, c.R, c.G, c.B)
	if c.A < 255 {
		s += fmt.Sprintf(";%s-opacity:%s", prop, num(float64(c.A)/255))
	}
	return s
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(pts []canvas.Point) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
