package recording

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shapes/canvas"
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)
	assert.Equal(t, 800, rec.Width())
	assert.Equal(t, 600, rec.Height())
	assert.Empty(t, rec.Commands())
}

func TestRecorderRecordsCallsInOrder(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.Save()
	rec.Translate(10, 20)
	rec.Rotate(math.Pi)
	rec.Scale(2, 3)
	rec.BeginPath()
	rec.MoveTo(1, 2)
	rec.LineTo(3, 4)
	rec.Arc(5, 6, 7, 0, 1)
	rec.ClosePath()
	require.NoError(t, rec.SetFillStyle("red"))
	require.NoError(t, rec.Fill())
	require.NoError(t, rec.SetStrokeStyle("white"))
	rec.SetLineWidth(2)
	require.NoError(t, rec.Stroke())
	rec.Restore()

	want := []Command{
		SaveCommand{},
		TranslateCommand{X: 10, Y: 20},
		RotateCommand{Angle: math.Pi},
		ScaleCommand{X: 2, Y: 3},
		BeginPathCommand{},
		MoveToCommand{X: 1, Y: 2},
		LineToCommand{X: 3, Y: 4},
		ArcCommand{X: 5, Y: 6, R: 7, Start: 0, End: 1},
		ClosePathCommand{},
		SetFillStyleCommand{Color: "red"},
		FillCommand{},
		SetStrokeStyleCommand{Color: "white"},
		SetLineWidthCommand{Width: 2},
		StrokeCommand{},
		RestoreCommand{},
	}
	assert.Equal(t, want, rec.Commands())
}

func TestRecorderRejectsInvalidInput(t *testing.T) {
	rec := NewRecorder(10, 10)
	assert.ErrorIs(t, rec.SetFillStyle("bogus"), canvas.ErrInvalidColor)
	assert.ErrorIs(t, rec.SetStrokeStyle(""), canvas.ErrInvalidColor)
	assert.ErrorIs(t, rec.SetFont("sans-serif", -2), canvas.ErrInvalidFontSize)
	assert.ErrorIs(t, rec.SetFont("sans-serif", math.NaN()), canvas.ErrInvalidFontSize)
	assert.Error(t, rec.DrawImage(nil, 0, 0, 1, 1))
	assert.Empty(t, rec.Commands(), "rejected calls must not be recorded")
}

func TestRecorderImages(t *testing.T) {
	rec := NewRecorder(10, 10)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	require.NoError(t, rec.DrawImage(img, 1, 2, 3, 4))
	require.NoError(t, rec.DrawImage(img, 5, 6, 7, 8))

	r := rec.FinishRecording()
	assert.Equal(t, 1, r.Resources().ImageCount(), "repeated image should be pooled once")
	cmds := r.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, DrawImageCommand{Image: 0, X: 1, Y: 2, Width: 3, Height: 4}, cmds[0])
	assert.Same(t, img, r.Resources().GetImage(0))
}

func TestRecorderCommandsIsCopy(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Save()
	cmds := rec.Commands()
	cmds[0] = RestoreCommand{}
	assert.Equal(t, SaveCommand{}, rec.Commands()[0])
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Save()
	_ = rec.DrawImage(image.NewRGBA(image.Rect(0, 0, 1, 1)), 0, 0, 1, 1)
	rec.Reset()
	assert.Empty(t, rec.Commands())
	assert.Zero(t, rec.FinishRecording().Resources().ImageCount())
}

func TestPlayback(t *testing.T) {
	rec := NewRecorder(30, 40)
	rec.Save()
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(1, 1)
	_ = rec.SetFillStyle("blue")
	_ = rec.Fill()
	rec.Restore()

	backend := newMockBackend("m")
	require.NoError(t, rec.FinishRecording().Playback(backend))

	assert.Equal(t, 1, backend.beginCalls)
	assert.Equal(t, 1, backend.endCalls)
	assert.Equal(t, 30, backend.width)
	assert.Equal(t, 40, backend.height)
	assert.Equal(t, []string{"Save", "BeginPath", "MoveTo", "LineTo", "SetFillStyle", "Fill", "Restore"}, backend.calls)
}

func TestPlaybackStopsOnError(t *testing.T) {
	rec := NewRecorder(10, 10)
	_ = rec.Fill()
	_ = rec.Stroke()

	backend := newMockBackend("m")
	backend.failOn = "Fill"
	err := rec.FinishRecording().Playback(backend)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "command 0 Fill()")
	assert.Equal(t, []string{"Fill"}, backend.calls)
	assert.Zero(t, backend.endCalls)
}

func TestPlaybackTextAndImages(t *testing.T) {
	rec := NewRecorder(10, 10)
	_ = rec.SetFont("sans-serif", 12)
	_ = rec.TextPath("hi", 1, 2)
	_ = rec.DrawImage(image.NewRGBA(image.Rect(0, 0, 1, 1)), 0, 0, 1, 1)
	r := rec.FinishRecording()

	err := r.Playback(newMockBackend("plain"))
	assert.ErrorIs(t, err, ErrUnsupportedCommand)

	full := &mockFullBackend{}
	require.NoError(t, r.Playback(full))
	assert.Equal(t, []string{"SetFont", "TextPath", "DrawImage"}, full.calls)
}
