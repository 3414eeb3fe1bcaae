// Package shapes draws parametric 2D shapes onto a raster canvas.
//
// # Overview
//
// Every constructor (CreateTriangle, CreateEquiTriangle, CreateCircle,
// CreateRect, CreateLine, CreateRhombus, CreateStar, CreateText,
// CreateImage) resolves its options against built-in defaults, renders the
// shape once with DrawFill and returns a handle. The handle's Draw method
// renders again with overrides and returns a new handle.
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	sh := shapes.New(shapes.WithSize(512, 512))
//
//	tri, _ := sh.CreateTriangle(shapes.TriangleOptions{
//	    X: shapes.Float(256), Y: shapes.Float(256), Color: "red",
//	})
//	_, _ = tri.Draw(shapes.TriangleDrawOptions{
//	    TriangleOptions: shapes.TriangleOptions{Rotate: shapes.Float(90)},
//	    DrawType:        shapes.DrawOutline,
//	})
//
//	_ = sh.Save("triangles.png", 0)
//
// # Options
//
// Numeric options are Num values, which distinguish an unset field from
// an explicit zero. An explicit zero always wins over the default:
//
//	shapes.TriangleOptions{Size: shapes.Float(0)} // size 0
//	shapes.TriangleOptions{}                      // size 50
//
// String options fall back to the default when empty.
//
// # Redrawing
//
// Draw resolves its overrides against the options the handle was created
// with, not against the handle it is called on. Given
//
//	h1, _ := shapes.CreateTriangle(s, shapes.TriangleOptions{})
//	h2, _ := h1.Draw(shapes.TriangleDrawOptions{TriangleOptions: shapes.TriangleOptions{Size: shapes.Float(80)}})
//	h3, _ := h2.Draw(shapes.TriangleDrawOptions{})
//
// h3.Size is 50, not 80.
//
// # Surfaces
//
// Shapes draw onto any Surface. *canvas.Context rasterizes, while
// *recording.Recorder captures the calls for playback or SVG export.
// Surfaces are not safe for concurrent use; serialize access externally.
package shapes
