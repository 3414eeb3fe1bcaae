package svg

import (
	"bytes"
	"encoding/xml"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shapes/recording"
)

// document is the subset of SVG the backend writes.
type document struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Rects  []struct {
		Style string `xml:"style,attr"`
	} `xml:"rect"`
	Paths []struct {
		D     string `xml:"d,attr"`
		Style string `xml:"style,attr"`
	} `xml:"path"`
	Images []struct {
		Href      string `xml:"href,attr"`
		Transform string `xml:"transform,attr"`
	} `xml:"image"`
}

func play(t *testing.T, rec *recording.Recorder, opts ...Option) (*Backend, document) {
	t.Helper()
	b := NewBackend(opts...)
	require.NoError(t, rec.FinishRecording().Playback(b))

	var doc document
	require.NoError(t, xml.Unmarshal(b.Bytes(), &doc), "output:\n%s", b.Bytes())
	return b, doc
}

func TestBackendRegistration(t *testing.T) {
	require.True(t, recording.IsRegistered("svg"))
	b, err := recording.NewBackend("svg")
	require.NoError(t, err)
	assert.IsType(t, &Backend{}, b)
	assert.Equal(t, "svg", recording.ForPath("out/Scene.SVG"))
}

func TestFillAndStroke(t *testing.T) {
	rec := recording.NewRecorder(200, 100)
	rec.Save()
	rec.Translate(10, 20)
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(50, 0)
	rec.LineTo(50, 50)
	rec.ClosePath()
	rec.Restore()
	require.NoError(t, rec.SetFillStyle("red"))
	require.NoError(t, rec.Fill())
	require.NoError(t, rec.SetStrokeStyle("rgba(0, 0, 255, 0.5)"))
	rec.SetLineWidth(2)
	require.NoError(t, rec.Stroke())

	_, doc := play(t, rec)
	assert.Equal(t, "200", doc.Width)
	assert.Equal(t, "100", doc.Height)
	require.Len(t, doc.Paths, 2)

	assert.Equal(t, "M10 20 L60 20 L60 70 Z", doc.Paths[0].D)
	assert.Contains(t, doc.Paths[0].Style, "fill:#ff0000")

	assert.Equal(t, doc.Paths[0].D, doc.Paths[1].D)
	assert.Contains(t, doc.Paths[1].Style, "fill:none")
	assert.Contains(t, doc.Paths[1].Style, "stroke:#0000ff")
	assert.Contains(t, doc.Paths[1].Style, "stroke-opacity:0.502")
	assert.Contains(t, doc.Paths[1].Style, "stroke-width:2")
}

func TestBackground(t *testing.T) {
	rec := recording.NewRecorder(10, 10)
	_, doc := play(t, rec, WithBackground("white"))
	require.Len(t, doc.Rects, 1)
	assert.Contains(t, doc.Rects[0].Style, "fill:#ffffff")

	err := rec.FinishRecording().Playback(NewBackend(WithBackground("nope")))
	assert.Error(t, err)
}

func TestArcIsFlattened(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	rec.BeginPath()
	rec.Arc(50, 50, 20, 0, 2*math.Pi)
	rec.ClosePath()
	_ = rec.Fill()

	_, doc := play(t, rec)
	require.Len(t, doc.Paths, 1)
	d := doc.Paths[0].D
	assert.True(t, strings.HasPrefix(d, "M70 50 L"), "path data %q", d)
	assert.Greater(t, strings.Count(d, "L"), 8)
}

func TestTransparentPaintIsSkipped(t *testing.T) {
	rec := recording.NewRecorder(10, 10)
	rec.MoveTo(0, 0)
	rec.LineTo(5, 5)
	_ = rec.SetFillStyle("transparent")
	_ = rec.Fill()
	rec.SetLineWidth(0)
	_ = rec.Stroke()

	_, doc := play(t, rec)
	assert.Empty(t, doc.Paths)
}

func TestText(t *testing.T) {
	rec := recording.NewRecorder(100, 40)
	_ = rec.SetFont("sans-serif", 20)
	rec.BeginPath()
	_ = rec.TextPath("A", 5, 30)
	_ = rec.Fill()

	_, doc := play(t, rec)
	require.Len(t, doc.Paths, 1)
	assert.NotEmpty(t, doc.Paths[0].D)
}

func TestImage(t *testing.T) {
	rec := recording.NewRecorder(50, 50)
	rec.Translate(5, 0)
	_ = rec.DrawImage(image.NewRGBA(image.Rect(0, 0, 4, 2)), 10, 10, 8, 4)

	_, doc := play(t, rec)
	require.Len(t, doc.Images, 1)
	assert.True(t, strings.HasPrefix(doc.Images[0].Href, "data:image/png;base64,"))
	assert.Equal(t, "matrix(2 0 0 2 15 10)", doc.Images[0].Transform)
}

func TestImageAtNaturalSizeHasNoTransform(t *testing.T) {
	rec := recording.NewRecorder(50, 50)
	_ = rec.DrawImage(image.NewRGBA(image.Rect(0, 0, 4, 2)), 0, 0, 4, 2)

	_, doc := play(t, rec)
	require.Len(t, doc.Images, 1)
	assert.Empty(t, doc.Images[0].Transform)
}

func TestOutput(t *testing.T) {
	b := NewBackend()
	_, err := b.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, recording.ErrNotStarted)
	assert.ErrorIs(t, b.SaveToFile(filepath.Join(t.TempDir(), "x.svg")), recording.ErrNotStarted)

	require.NoError(t, b.Begin(10, 10))
	require.NoError(t, b.End())
	require.NoError(t, b.End(), "End must be idempotent")

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(b.Bytes())), n)
	assert.Equal(t, 1, strings.Count(buf.String(), "</svg>"))

	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, b.SaveToFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.Bytes(), data)

	assert.Error(t, NewBackend().Begin(0, 0))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "1", num(1))
	assert.Equal(t, "0.333", num(1.0/3))
	assert.Equal(t, "0", num(-0.0001))
	assert.Equal(t, "-2.5", num(-2.5))
}
