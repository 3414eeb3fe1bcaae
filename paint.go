package shapes

import "fmt"

// StrokeWidth is the line width used by Stroke and Outline.
const StrokeWidth = 2

// DefaultBorderColor is the outline border color when none is given.
const DefaultBorderColor = "white"

// DrawType selects how a shape's path is painted.
// The zero value is DrawFill.
type DrawType uint8

const (
	// DrawFill paints the interior with the shape color.
	DrawFill DrawType = iota
	// DrawStroke paints the outline with the shape color.
	DrawStroke
	// DrawOutline fills with the shape color, then strokes with the
	// border color.
	DrawOutline
)

var drawTypeNames = [...]string{
	DrawFill:    "fill",
	DrawStroke:  "stroke",
	DrawOutline: "outline",
}

// String implements fmt.Stringer.
func (d DrawType) String() string {
	if int(d) < len(drawTypeNames) {
		return drawTypeNames[d]
	}
	return fmt.Sprintf("DrawType(%d)", d)
}

// ParseDrawType parses "fill", "stroke" or "outline".
// The empty string parses as DrawFill.
func ParseDrawType(s string) (DrawType, error) {
	if s == "" {
		return DrawFill, nil
	}
	for i, name := range drawTypeNames {
		if name == s {
			return DrawType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDrawType, s)
}

// Fill paints the interior of the current path with color.
func Fill(s Surface, color string) error {
	if err := s.SetFillStyle(color); err != nil {
		return err
	}
	return s.Fill()
}

// Stroke paints the current path outline with color at StrokeWidth.
func Stroke(s Surface, color string) error {
	if err := s.SetStrokeStyle(color); err != nil {
		return err
	}
	s.SetLineWidth(StrokeWidth)
	return s.Stroke()
}

// Outline fills the current path with color and then strokes it with
// borderColor, so the border is never painted over. An empty borderColor
// means DefaultBorderColor.
func Outline(s Surface, color, borderColor string) error {
	if err := Fill(s, color); err != nil {
		return err
	}
	return Stroke(s, orString(borderColor, DefaultBorderColor))
}

// paint applies d to the current path. Unknown draw types paint nothing.
func paint(s Surface, d DrawType, color, borderColor string) error {
	switch d {
	case DrawFill:
		return Fill(s, color)
	case DrawStroke:
		return Stroke(s, color)
	case DrawOutline:
		return Outline(s, color, borderColor)
	}
	Logger().Warn("shapes: unknown draw type, nothing painted", "drawType", d)
	return nil
}
