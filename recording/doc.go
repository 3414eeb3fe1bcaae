// Package recording captures drawing surface calls as commands that can be
// played back to different backends.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures surface calls as typed commands
//   - Recording: Stores commands and resources for playback
//   - Backend: Executes commands against a specific output format
//
// A Recorder satisfies the surface interfaces the shapes package draws on,
// so a shape can be recorded, inspected command by command, and played back
// later to a raster or vector backend.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	tri, _ := shapes.CreateTriangle(rec, shapes.TriangleOptions{X: shapes.Float(100), Y: shapes.Float(100)})
//	_ = tri
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/shapes/recording/backends/svg"
//
//	b, _ := recording.NewBackend("svg")
//	if err := r.Playback(b); err != nil {
//	    return err
//	}
//	_ = b.(recording.FileBackend).SaveToFile("output.svg")
//
// # Backend Registration
//
// Backends register themselves in init(), together with the file
// extensions they write. ForPath maps an output file to a backend name:
//
//	func init() {
//		recording.Register("raster", func() recording.Backend {
//			return NewBackend()
//		}, ".png", ".jpg")
//	}
//
// The built-in backends live under recording/backends: raster renders
// with canvas.Context and svg writes SVG documents.
package recording
