package shapes

import "errors"

// Sentinel errors for the shapes package.
var (
	// ErrUnknownDrawType is returned by ParseDrawType.
	ErrUnknownDrawType = errors.New("shapes: unknown draw type")

	// ErrTextUnsupported is returned when a text shape targets a surface
	// that does not implement TextSurface.
	ErrTextUnsupported = errors.New("shapes: surface cannot draw text")

	// ErrImageUnsupported is returned when an image shape targets a
	// surface that does not implement ImageSurface.
	ErrImageUnsupported = errors.New("shapes: surface cannot draw images")

	// ErrNoSurface is returned when drawing on a nil surface, which
	// includes Draw on the zero handle returned with an error.
	ErrNoSurface = errors.New("shapes: no surface")

	// ErrNoImage is returned when an image shape has neither a source
	// image nor a path.
	ErrNoImage = errors.New("shapes: no image source")
)
