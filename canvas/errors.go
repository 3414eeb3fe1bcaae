package canvas

import "errors"

// Sentinel errors for the canvas package.
var (
	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("canvas: invalid color")

	// ErrUnsupportedFormat is returned when encoding to an unknown or
	// unsupported MIME type.
	ErrUnsupportedFormat = errors.New("canvas: unsupported format")

	// ErrInvalidFontSize is returned by SetFont for negative or NaN sizes.
	ErrInvalidFontSize = errors.New("canvas: invalid font size")

	// ErrEmptyFontData is returned when registering a font with no data.
	ErrEmptyFontData = errors.New("canvas: empty font data")

	// ErrInvalidSize is returned by Resize for non-positive dimensions.
	ErrInvalidSize = errors.New("canvas: invalid size")
)
