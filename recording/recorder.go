package recording

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/shapes/canvas"
)

// Recorder captures drawing surface calls as commands.
// It has the method set of canvas.Context's drawing API but appends
// commands instead of rasterizing pixels. Use FinishRecording to obtain
// a Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.BeginPath()
//	rec.Arc(100, 100, 50, 0, 2*math.Pi)
//	_ = rec.SetFillStyle("red")
//	_ = rec.Fill()
//	r := rec.FinishRecording()
//
// Colors and font sizes are validated the same way canvas.Context
// validates them, and rejected calls are not recorded.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// FinishRecording returns a Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	canvas.Logger().Debug("recording: finished", "commands", len(r.commands),
		"images", r.resources.ImageCount())
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Commands returns a copy of the commands recorded so far.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Reset discards all recorded commands and resources.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

func (r *Recorder) add(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// Save records a Save.
func (r *Recorder) Save() { r.add(SaveCommand{}) }

// Restore records a Restore.
func (r *Recorder) Restore() { r.add(RestoreCommand{}) }

// BeginPath records a BeginPath.
func (r *Recorder) BeginPath() { r.add(BeginPathCommand{}) }

// MoveTo records a MoveTo.
func (r *Recorder) MoveTo(x, y float64) { r.add(MoveToCommand{X: x, Y: y}) }

// LineTo records a LineTo.
func (r *Recorder) LineTo(x, y float64) { r.add(LineToCommand{X: x, Y: y}) }

// Arc records an Arc.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.add(ArcCommand{X: x, Y: y, R: radius, Start: startAngle, End: endAngle})
}

// ClosePath records a ClosePath.
func (r *Recorder) ClosePath() { r.add(ClosePathCommand{}) }

// Translate records a Translate.
func (r *Recorder) Translate(x, y float64) { r.add(TranslateCommand{X: x, Y: y}) }

// Rotate records a Rotate.
func (r *Recorder) Rotate(angle float64) { r.add(RotateCommand{Angle: angle}) }

// Scale records a Scale.
func (r *Recorder) Scale(x, y float64) { r.add(ScaleCommand{X: x, Y: y}) }

// SetFillStyle records a fill color change. Invalid colors are rejected
// with canvas.ErrInvalidColor.
func (r *Recorder) SetFillStyle(color string) error {
	if _, err := canvas.ParseColor(color); err != nil {
		return err
	}
	r.add(SetFillStyleCommand{Color: color})
	return nil
}

// SetStrokeStyle records a stroke color change.
func (r *Recorder) SetStrokeStyle(color string) error {
	if _, err := canvas.ParseColor(color); err != nil {
		return err
	}
	r.add(SetStrokeStyleCommand{Color: color})
	return nil
}

// SetLineWidth records a line width change.
func (r *Recorder) SetLineWidth(width float64) { r.add(SetLineWidthCommand{Width: width}) }

// Fill records a Fill.
func (r *Recorder) Fill() error {
	r.add(FillCommand{})
	return nil
}

// Stroke records a Stroke.
func (r *Recorder) Stroke() error {
	r.add(StrokeCommand{})
	return nil
}

// SetFont records a font selection. Negative and NaN sizes are rejected
// with canvas.ErrInvalidFontSize.
func (r *Recorder) SetFont(family string, size float64) error {
	if size < 0 || math.IsNaN(size) {
		return canvas.ErrInvalidFontSize
	}
	r.add(SetFontCommand{Family: family, Size: size})
	return nil
}

// TextPath records a TextPath.
func (r *Recorder) TextPath(s string, x, y float64) error {
	r.add(TextPathCommand{Text: s, X: x, Y: y})
	return nil
}

// DrawImage records an image draw. The image is kept by reference.
func (r *Recorder) DrawImage(img image.Image, x, y, width, height float64) error {
	if img == nil {
		return fmt.Errorf("recording: DrawImage: nil image")
	}
	ref := r.resources.AddImage(img)
	r.add(DrawImageCommand{Image: ref, X: x, Y: y, Width: width, Height: height})
	return nil
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to the given backend, bracketed by
// Begin and End. It stops at the first command that fails. Text and
// image commands need a TextBackend or ImageBackend respectively and
// fail with ErrUnsupportedCommand otherwise.
func (r *Recording) Playback(backend Backend) error {
	canvas.Logger().Debug("recording: playback", "backend", fmt.Sprintf("%T", backend),
		"commands", len(r.commands))

	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	for i, cmd := range r.commands {
		if err := r.replay(backend, cmd); err != nil {
			return fmt.Errorf("recording: command %d %s: %w", i, Format(cmd), err)
		}
	}
	return backend.End()
}

func (r *Recording) replay(backend Backend, cmd Command) error {
	switch c := cmd.(type) {
	case SaveCommand:
		backend.Save()
	case RestoreCommand:
		backend.Restore()
	case BeginPathCommand:
		backend.BeginPath()
	case MoveToCommand:
		backend.MoveTo(c.X, c.Y)
	case LineToCommand:
		backend.LineTo(c.X, c.Y)
	case ArcCommand:
		backend.Arc(c.X, c.Y, c.R, c.Start, c.End)
	case ClosePathCommand:
		backend.ClosePath()
	case TranslateCommand:
		backend.Translate(c.X, c.Y)
	case RotateCommand:
		backend.Rotate(c.Angle)
	case ScaleCommand:
		backend.Scale(c.X, c.Y)
	case SetFillStyleCommand:
		return backend.SetFillStyle(c.Color)
	case SetStrokeStyleCommand:
		return backend.SetStrokeStyle(c.Color)
	case SetLineWidthCommand:
		backend.SetLineWidth(c.Width)
	case FillCommand:
		return backend.Fill()
	case StrokeCommand:
		return backend.Stroke()
	case SetFontCommand:
		tb, ok := backend.(TextBackend)
		if !ok {
			return ErrUnsupportedCommand
		}
		return tb.SetFont(c.Family, c.Size)
	case TextPathCommand:
		tb, ok := backend.(TextBackend)
		if !ok {
			return ErrUnsupportedCommand
		}
		return tb.TextPath(c.Text, c.X, c.Y)
	case DrawImageCommand:
		ib, ok := backend.(ImageBackend)
		if !ok {
			return ErrUnsupportedCommand
		}
		img := r.resources.GetImage(c.Image)
		if img == nil {
			return fmt.Errorf("recording: invalid image reference %d", c.Image)
		}
		return ib.DrawImage(img, c.X, c.Y, c.Width, c.Height)
	default:
		return ErrUnsupportedCommand
	}
	return nil
}
