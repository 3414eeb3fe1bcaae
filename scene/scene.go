// Package scene describes drawings as TOML documents and renders them with
// the shapes package.
//
// A scene lists shapes in drawing order. Each shape is created from its
// own keys and then redrawn once per [[shape.redraw]] table, every redraw
// resolving against the shape's original keys:
//
//	width = 400
//	height = 300
//	background = "white"
//
//	[[shape]]
//	kind = "triangle"
//	x = 200
//	y = 150
//	size = 80
//	color = "tomato"
//
//	[[shape.redraw]]
//	draw_type = "outline"
//	border_color = "black"
//
// A key that is absent keeps the shape's value; a key set to 0 is an
// explicit zero.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/canvas"
)

// ErrUnknownKind is returned for a shape whose kind is not recognised.
var ErrUnknownKind = errors.New("scene: unknown shape kind")

// Shape kinds.
const (
	KindTriangle     = "triangle"
	KindEquiTriangle = "equitriangle"
	KindCircle       = "circle"
	KindRect         = "rect"
	KindLine         = "line"
	KindRhombus      = "rhombus"
	KindStar         = "star"
	KindText         = "text"
	KindImage        = "image"
)

var kinds = map[string]bool{
	KindTriangle: true, KindEquiTriangle: true, KindCircle: true,
	KindRect: true, KindLine: true, KindRhombus: true,
	KindStar: true, KindText: true, KindImage: true,
}

// Scene is a decoded scene document.
type Scene struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background string  `toml:"background"`
	Fonts      []Font  `toml:"font"`
	Shapes     []Shape `toml:"shape"`

	// dir resolves relative font and image paths. Set by Load.
	dir string
}

// Font registers a font file under a family name before rendering.
type Font struct {
	Family string `toml:"family"`
	Path   string `toml:"path"`
	Style  string `toml:"style"`
	Weight string `toml:"weight"`
}

// Shape is one [[shape]] table.
type Shape struct {
	Kind string `toml:"kind"`
	Params
	Redraw []Params `toml:"redraw"`
}

// Params holds every key a shape or redraw table may set. Pointer fields
// are nil when the key is absent.
type Params struct {
	X           *float64 `toml:"x"`
	Y           *float64 `toml:"y"`
	X1          *float64 `toml:"x1"`
	Y1          *float64 `toml:"y1"`
	X2          *float64 `toml:"x2"`
	Y2          *float64 `toml:"y2"`
	Width       *float64 `toml:"width"`
	Height      *float64 `toml:"height"`
	Size        *float64 `toml:"size"`
	Radius      *float64 `toml:"radius"`
	SideAB      *float64 `toml:"side_ab"`
	SideAC      *float64 `toml:"side_ac"`
	SideBC      *float64 `toml:"side_bc"`
	Rotate      *float64 `toml:"rotate"`
	Spikes      *float64 `toml:"spikes"`
	OuterRadius *float64 `toml:"outer_radius"`
	InnerRadius *float64 `toml:"inner_radius"`

	Color       string `toml:"color"`
	BorderColor string `toml:"border_color"`
	DrawType    string `toml:"draw_type"`
	Text        string `toml:"text"`
	Font        string `toml:"font"`
	Image       string `toml:"image"`
}

// Parse decodes and validates a scene document. Unknown keys are errors.
func Parse(r io.Reader) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("scene: %s", strict.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("scene: line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseBytes is Parse for an in-memory document.
func ParseBytes(data []byte) (*Scene, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads the scene file at path. Relative font and image paths in it
// are resolved against the file's directory.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Validate checks shape kinds, draw types, colors and the canvas size.
func (s *Scene) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("scene: negative size %dx%d", s.Width, s.Height)
	}
	if s.Background != "" {
		if _, err := canvas.ParseColor(s.Background); err != nil {
			return fmt.Errorf("scene: background: %w", err)
		}
	}
	for i, f := range s.Fonts {
		if f.Family == "" || f.Path == "" {
			return fmt.Errorf("scene: font %d: family and path are required", i)
		}
	}
	for i, sh := range s.Shapes {
		if !kinds[sh.Kind] {
			return fmt.Errorf("scene: shape %d: %w %q", i, ErrUnknownKind, sh.Kind)
		}
		if err := sh.Params.validate(); err != nil {
			return fmt.Errorf("scene: shape %d (%s): %w", i, sh.Kind, err)
		}
		if sh.DrawType != "" {
			// creation always fills
			return fmt.Errorf("scene: shape %d (%s): draw_type is only allowed in redraw tables", i, sh.Kind)
		}
		for j, p := range sh.Redraw {
			if err := p.validate(); err != nil {
				return fmt.Errorf("scene: shape %d (%s) redraw %d: %w", i, sh.Kind, j, err)
			}
		}
		if sh.Kind == KindImage && sh.Image == "" {
			return fmt.Errorf("scene: shape %d (image): %w", i, shapes.ErrNoImage)
		}
	}
	return nil
}

func (p Params) validate() error {
	if _, err := shapes.ParseDrawType(p.DrawType); err != nil {
		return err
	}
	for _, c := range []string{p.Color, p.BorderColor} {
		if c == "" {
			continue
		}
		if _, err := canvas.ParseColor(c); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the canvas size, using shapes.DefaultSize for a missing
// dimension.
func (s *Scene) Size() (width, height int) {
	width, height = s.Width, s.Height
	if width == 0 {
		width = shapes.DefaultSize
	}
	if height == 0 {
		height = shapes.DefaultSize
	}
	return width, height
}

// LoadFonts registers the scene's fonts in fs.
func (s *Scene) LoadFonts(fs *canvas.FontStore) error {
	for _, f := range s.Fonts {
		opts := canvas.FontOptions{Style: f.Style, Weight: f.Weight}
		if err := fs.AddFontFile(s.resolve(f.Path), f.Family, opts); err != nil {
			return fmt.Errorf("scene: font %q: %w", f.Family, err)
		}
	}
	return nil
}

func (s *Scene) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}
