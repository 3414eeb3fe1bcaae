package shapes

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ImageOptions are the construction parameters of an image shape whose
// top-left corner is (X, Y).
//
// Source takes precedence over Path. An unset Width or Height uses the
// image's natural size; an explicit zero draws nothing.
type ImageOptions struct {
	Source image.Image
	Path   string

	X, Y          Num
	Width, Height Num
}

// ImageState is a fully resolved image shape.
type ImageState struct {
	Source image.Image
	Path   string

	X, Y          float64
	Width, Height float64
}

// Image is the handle returned by CreateImage and Image.Draw.
type Image struct {
	ImageState

	surface ImageSurface
	base    ImageState
}

// CreateImage loads the image source if needed and draws it on s.
// s must implement ImageSurface.
func CreateImage(s Surface, o ImageOptions) (Image, error) {
	is, ok := s.(ImageSurface)
	if !ok {
		return Image{}, ErrImageUnsupported
	}
	src, _, err := imageSource(o, nil, "")
	if err != nil {
		return Image{}, err
	}
	b := src.Bounds()
	base := ImageState{
		Source: src,
		Path:   o.Path,
		X:      o.X.Or(0),
		Y:      o.Y.Or(0),
		Width:  o.Width.Or(float64(b.Dx())),
		Height: o.Height.Or(float64(b.Dy())),
	}
	return drawImage(is, base, base)
}

// Draw draws the image again, resolving o against the construction
// parameters. A new Source or Path replaces the image; its natural size
// is then used for unset dimensions.
func (img Image) Draw(o ImageOptions) (Image, error) {
	src, replaced, err := imageSource(o, img.base.Source, img.base.Path)
	if err != nil {
		return Image{}, err
	}
	w, h := img.base.Width, img.base.Height
	if replaced {
		b := src.Bounds()
		w, h = float64(b.Dx()), float64(b.Dy())
	}
	st := ImageState{
		Source: src,
		Path:   orString(o.Path, img.base.Path),
		X:      o.X.Or(img.base.X),
		Y:      o.Y.Or(img.base.Y),
		Width:  o.Width.Or(w),
		Height: o.Height.Or(h),
	}
	return drawImage(img.surface, img.base, st)
}

func drawImage(s ImageSurface, base, st ImageState) (Image, error) {
	if s == nil {
		return Image{}, ErrNoSurface
	}
	Logger().Debug("shapes: draw", "shape", "image",
		"x", st.X, "y", st.Y, "width", st.Width, "height", st.Height)

	if err := s.DrawImage(st.Source, st.X, st.Y, st.Width, st.Height); err != nil {
		return Image{}, err
	}
	return Image{ImageState: st, surface: s, base: base}, nil
}

// imageSource picks the image to draw and reports whether it replaces base.
func imageSource(o ImageOptions, base image.Image, basePath string) (image.Image, bool, error) {
	switch {
	case o.Source != nil:
		return o.Source, true, nil
	case o.Path != "" && o.Path != basePath:
		img, err := LoadImage(o.Path)
		return img, true, err
	case base != nil:
		return base, false, nil
	}
	return nil, false, ErrNoImage
}

// LoadImage decodes the image file at path. PNG, JPEG, GIF, BMP, TIFF and
// WebP are recognised.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("shapes: decode %s: %w", path, err)
	}
	return img, nil
}
