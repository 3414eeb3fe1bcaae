package canvas

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// DrawImage composites img over the buffer so that it fills the width x
// height rectangle at (x, y) in user space. The current transform applies.
// A zero width or height draws nothing.
func (c *Context) DrawImage(img image.Image, x, y, width, height float64) error {
	b := img.Bounds()
	if width == 0 || height == 0 || b.Empty() {
		return nil
	}
	Logger().Debug("canvas: draw image", "bounds", b, "x", x, "y", y, "width", width, "height", height)

	// source pixel -> user space -> device space
	m := c.state.matrix.
		Multiply(Translate(x, y)).
		Multiply(Scale(width/float64(b.Dx()), height/float64(b.Dy()))).
		Multiply(Translate(-float64(b.Min.X), -float64(b.Min.Y)))
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	xdraw.CatmullRom.Transform(c.img, s2d, img, b, xdraw.Over, nil)
	return nil
}
