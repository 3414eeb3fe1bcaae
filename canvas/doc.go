// Package canvas is a software raster surface with the state model of an
// HTML canvas 2D context.
//
// Paths are flattened into device-space polygons and rasterized with
// golang.org/x/image/vector using the nonzero rule. Strokes are expanded
// into filled pieces first. Colors are CSS strings (see ParseColor), text
// is drawn from font outlines held in an explicit FontStore, and the
// buffer encodes to PNG, JPEG, BMP, TIFF or raw RGBA.
//
//	dc := canvas.NewContext(256, 256)
//	_ = dc.Clear("white")
//	dc.Save()
//	dc.Translate(128, 128)
//	dc.Rotate(math.Pi / 4)
//	dc.MoveTo(-50, -50)
//	dc.LineTo(50, -50)
//	dc.LineTo(50, 50)
//	dc.LineTo(-50, 50)
//	dc.ClosePath()
//	dc.Restore()
//	_ = dc.SetFillStyle("#336699")
//	_ = dc.Fill()
//	_ = dc.SavePNG("square.png")
package canvas
