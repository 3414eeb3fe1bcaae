package recording

import "errors"

var (
	// ErrUnsupportedCommand is returned by Playback when the backend
	// cannot execute a recorded command, such as text on a Backend that
	// is not a TextBackend.
	ErrUnsupportedCommand = errors.New("recording: backend does not support command")

	// ErrUnknownBackend is returned by NewBackend for unregistered names.
	ErrUnknownBackend = errors.New("recording: unknown backend")

	// ErrNotStarted is returned by backend output methods called before
	// Begin.
	ErrNotStarted = errors.New("recording: backend not started")
)
