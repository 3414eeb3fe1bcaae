package scene

import (
	"fmt"

	"github.com/gogpu/shapes"
)

// Render paints the background, if any, and then every shape in order
// onto surf. The size is not applied to surf; callers size it from Size.
func (s *Scene) Render(surf shapes.Surface) error {
	if s.Background != "" {
		if err := s.paintBackground(surf); err != nil {
			return err
		}
	}
	for i, sh := range s.Shapes {
		if err := s.renderShape(surf, sh); err != nil {
			return fmt.Errorf("scene: shape %d (%s): %w", i, sh.Kind, err)
		}
	}
	shapes.Logger().Debug("scene: rendered", "shapes", len(s.Shapes))
	return nil
}

func (s *Scene) paintBackground(surf shapes.Surface) error {
	w, h := s.Size()
	fw, fh := float64(w), float64(h)
	surf.BeginPath()
	surf.MoveTo(0, 0)
	surf.LineTo(fw, 0)
	surf.LineTo(fw, fh)
	surf.LineTo(0, fh)
	surf.ClosePath()
	return shapes.Fill(surf, s.Background)
}

func (s *Scene) renderShape(surf shapes.Surface, sh Shape) error {
	switch sh.Kind {
	case KindTriangle:
		h, err := shapes.CreateTriangle(surf, sh.triangle())
		for _, p := range sh.Redraw {
			if err != nil {
				break
			}
			h, err = h.Draw(shapes.TriangleDrawOptions{TriangleOptions: p.triangle(), DrawType: p.drawType()})
		}
		return err
	case KindEquiTriangle:
		h, err := shapes.CreateEquiTriangle(surf, sh.equiTriangle())
		for _, p := range sh.Redraw {
			if err != nil {
				break
			}
			h, err = h.Draw(shapes.EquiTriangleDrawOptions{EquiTriangleOptions: p.equiTriangle(), DrawType: p.drawType()})
		}
		return err
	case KindCircle:
		h, err := shapes.CreateCircle(surf, sh.circle())
		for _, p := range sh.Redraw {
			if err != nil {
				break
			}
			h, err = h.Draw(shapes.CircleDrawOptions{CircleOptions: p.circle(), DrawType: p.drawType()})
		}
		return err
	case KindRect:
		h, err := shapes.CreateRect(surf, sh.rect())
		for _, p := range sh.Redraw {
			if err != nil {
				break
			}
			h, err = h.Draw(shapes.RectDrawOptions{RectOptions: p.rect(), DrawType: p.drawType()})
		}
		return err
	case KindLine:
		h, err := shapes.CreateLine(surf, sh.line())
		for _, p := range sh.Redraw {
			if err != nil {
				break
			}
			h, err = h.Draw(p.line())
		}
		return err
	case KindRhombus:
		h, err := shapes.CreateRhombus(surf, sh.rhombus())
		for _, p := range sh.Redraw {
			if err != nil {
				break
			}
			h, err = h.Draw(shapes.RhombusDrawOptions{RhombusOptions: p.rhombus(), DrawType: p.drawType()})
		}
		return err
	case KindStar:
		h, err := shapes.CreateStar(surf, sh.star())
		for _, p := range sh.Redraw {
			if err != nil {
				break
			}
			h, err = h.Draw(shapes.StarDrawOptions{StarOptions: p.star(), DrawType: p.drawType()})
		}
		return err
	case KindText:
		h, err := shapes.CreateText(surf, sh.text())
		for _, p := range sh.Redraw {
			if err != nil {
				break
			}
			h, err = h.Draw(shapes.TextDrawOptions{TextOptions: p.text(), DrawType: p.drawType()})
		}
		return err
	case KindImage:
		h, err := shapes.CreateImage(surf, sh.image(s))
		for _, p := range sh.Redraw {
			if err != nil {
				break
			}
			h, err = h.Draw(p.image(s))
		}
		return err
	}
	return fmt.Errorf("%w %q", ErrUnknownKind, sh.Kind)
}

// num maps an absent key to an unset value.
func num(p *float64) shapes.Num {
	if p == nil {
		return shapes.Unset()
	}
	return shapes.Float(*p)
}

// drawType is validated by Parse, so errors are not expected here.
func (p Params) drawType() shapes.DrawType {
	d, _ := shapes.ParseDrawType(p.DrawType)
	return d
}

func (p Params) triangle() shapes.TriangleOptions {
	return shapes.TriangleOptions{
		X:           num(p.X),
		Y:           num(p.Y),
		SideAB:      num(p.SideAB),
		SideAC:      num(p.SideAC),
		SideBC:      num(p.SideBC),
		Rotate:      num(p.Rotate),
		Size:        num(p.Size),
		Color:       p.Color,
		BorderColor: p.BorderColor,
	}
}

func (p Params) equiTriangle() shapes.EquiTriangleOptions {
	return shapes.EquiTriangleOptions{
		X:           num(p.X),
		Y:           num(p.Y),
		Height:      num(p.Height),
		Color:       p.Color,
		BorderColor: p.BorderColor,
	}
}

func (p Params) circle() shapes.CircleOptions {
	return shapes.CircleOptions{
		X:           num(p.X),
		Y:           num(p.Y),
		Radius:      num(p.Radius),
		Color:       p.Color,
		BorderColor: p.BorderColor,
	}
}

func (p Params) rect() shapes.RectOptions {
	return shapes.RectOptions{
		X:           num(p.X),
		Y:           num(p.Y),
		Width:       num(p.Width),
		Height:      num(p.Height),
		Rotate:      num(p.Rotate),
		Color:       p.Color,
		BorderColor: p.BorderColor,
	}
}

func (p Params) line() shapes.LineOptions {
	return shapes.LineOptions{
		X1:    num(p.X1),
		Y1:    num(p.Y1),
		X2:    num(p.X2),
		Y2:    num(p.Y2),
		Width: num(p.Width),
		Color: p.Color,
	}
}

func (p Params) rhombus() shapes.RhombusOptions {
	return shapes.RhombusOptions{
		X:           num(p.X),
		Y:           num(p.Y),
		Width:       num(p.Width),
		Height:      num(p.Height),
		Rotate:      num(p.Rotate),
		Color:       p.Color,
		BorderColor: p.BorderColor,
	}
}

func (p Params) star() shapes.StarOptions {
	return shapes.StarOptions{
		X:           num(p.X),
		Y:           num(p.Y),
		Spikes:      num(p.Spikes),
		OuterRadius: num(p.OuterRadius),
		InnerRadius: num(p.InnerRadius),
		Rotate:      num(p.Rotate),
		Color:       p.Color,
		BorderColor: p.BorderColor,
	}
}

func (p Params) text() shapes.TextOptions {
	return shapes.TextOptions{
		Text:        p.Text,
		X:           num(p.X),
		Y:           num(p.Y),
		Font:        p.Font,
		Size:        num(p.Size),
		Color:       p.Color,
		BorderColor: p.BorderColor,
	}
}

func (p Params) image(s *Scene) shapes.ImageOptions {
	return shapes.ImageOptions{
		Path:   s.resolve(p.Image),
		X:      num(p.X),
		Y:      num(p.Y),
		Width:  num(p.Width),
		Height: num(p.Height),
	}
}
