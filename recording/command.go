package recording

import "fmt"

// CommandType identifies the type of a command.
// Each command type corresponds to one drawing surface call.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Save current state
	CmdRestore                    // Restore previous state

	// Path commands
	CmdBeginPath // Discard the current path
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Add a line
	CmdArc       // Add a clockwise arc
	CmdClosePath // Close the current subpath

	// Transform commands
	CmdTranslate // Translate the current transform
	CmdRotate    // Rotate the current transform
	CmdScale     // Scale the current transform

	// Style commands
	CmdSetFillStyle   // Set fill color
	CmdSetStrokeStyle // Set stroke color
	CmdSetLineWidth   // Set stroke line width
	CmdSetFont        // Select a font face

	// Drawing commands
	CmdFill      // Fill the current path
	CmdStroke    // Stroke the current path
	CmdTextPath  // Append glyph outlines to the path
	CmdDrawImage // Draw an image
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdBeginPath:      "BeginPath",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdArc:            "Arc",
	CmdClosePath:      "ClosePath",
	CmdTranslate:      "Translate",
	CmdRotate:         "Rotate",
	CmdScale:          "Scale",
	CmdSetFillStyle:   "SetFillStyle",
	CmdSetStrokeStyle: "SetStrokeStyle",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetFont:        "SetFont",
	CmdFill:           "Fill",
	CmdStroke:         "Stroke",
	CmdTextPath:       "TextPath",
	CmdDrawImage:      "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ImageRef is a reference to an image in the resource pool.
// The zero value is a valid reference to the first image (if any).
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the transform and paint state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a new subpath at (X, Y).
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a line to (X, Y).
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ArcCommand adds a clockwise arc of radius R around (X, Y) from Start to
// End, in radians.
type ArcCommand struct {
	X, Y, R    float64
	Start, End float64
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// TranslateCommand translates the current transform.
type TranslateCommand struct {
	X, Y float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// RotateCommand rotates the current transform by Angle radians.
type RotateCommand struct {
	Angle float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// ScaleCommand scales the current transform.
type ScaleCommand struct {
	X, Y float64
}

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetFillStyleCommand sets the fill color. Color is the CSS string as
// given by the caller.
type SetFillStyleCommand struct {
	Color string
}

// Type implements Command.
func (SetFillStyleCommand) Type() CommandType { return CmdSetFillStyle }

// SetStrokeStyleCommand sets the stroke color.
type SetStrokeStyleCommand struct {
	Color string
}

// Type implements Command.
func (SetStrokeStyleCommand) Type() CommandType { return CmdSetStrokeStyle }

// SetLineWidthCommand sets the stroke width.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetFontCommand selects the font face for later TextPath commands.
type SetFontCommand struct {
	Family string
	Size   float64
}

// Type implements Command.
func (SetFontCommand) Type() CommandType { return CmdSetFont }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillCommand fills the current path.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// TextPathCommand appends the outlines of Text with its baseline starting
// at (X, Y).
type TextPathCommand struct {
	Text string
	X, Y float64
}

// Type implements Command.
func (TextPathCommand) Type() CommandType { return CmdTextPath }

// DrawImageCommand draws a pooled image into the Width x Height rectangle
// at (X, Y).
type DrawImageCommand struct {
	Image         ImageRef
	X, Y          float64
	Width, Height float64
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// Format returns a one-line, human-readable form of cmd, for logs and
// test failures.
func Format(cmd Command) string {
	switch c := cmd.(type) {
	case MoveToCommand:
		return fmt.Sprintf("MoveTo(%g, %g)", c.X, c.Y)
	case LineToCommand:
		return fmt.Sprintf("LineTo(%g, %g)", c.X, c.Y)
	case ArcCommand:
		return fmt.Sprintf("Arc(%g, %g, %g, %g, %g)", c.X, c.Y, c.R, c.Start, c.End)
	case TranslateCommand:
		return fmt.Sprintf("Translate(%g, %g)", c.X, c.Y)
	case RotateCommand:
		return fmt.Sprintf("Rotate(%g)", c.Angle)
	case ScaleCommand:
		return fmt.Sprintf("Scale(%g, %g)", c.X, c.Y)
	case SetFillStyleCommand:
		return fmt.Sprintf("SetFillStyle(%q)", c.Color)
	case SetStrokeStyleCommand:
		return fmt.Sprintf("SetStrokeStyle(%q)", c.Color)
	case SetLineWidthCommand:
		return fmt.Sprintf("SetLineWidth(%g)", c.Width)
	case SetFontCommand:
		return fmt.Sprintf("SetFont(%q, %g)", c.Family, c.Size)
	case TextPathCommand:
		return fmt.Sprintf("TextPath(%q, %g, %g)", c.Text, c.X, c.Y)
	case DrawImageCommand:
		return fmt.Sprintf("DrawImage(#%d, %g, %g, %g, %g)", c.Image, c.X, c.Y, c.Width, c.Height)
	case nil:
		return "<nil>"
	}
	return cmd.Type().String() + "()"
}
