package canvas

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported encoder MIME types.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeBMP  = "image/bmp"
	MimeTIFF = "image/tiff"
	// MimeRaw writes the RGBA pixel bytes, row by row, with no header.
	MimeRaw = "raw"
	// MimePDF is recognised but not supported by the raster canvas.
	MimePDF = "application/pdf"
)

// DefaultJPEGQuality is used when Encode gets a quality of 0.
const DefaultJPEGQuality = 0.75

// MimeForPath returns the encoder MIME type for a file extension.
func MimeForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return MimePNG, nil
	case ".jpg", ".jpeg":
		return MimeJPEG, nil
	case ".bmp":
		return MimeBMP, nil
	case ".tif", ".tiff":
		return MimeTIFF, nil
	case ".raw":
		return MimeRaw, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Encode writes the buffer to w as mimeType. quality is the JPEG quality
// in 0..1; 0 means DefaultJPEGQuality. Other formats ignore it.
func (c *Context) Encode(w io.Writer, mimeType string, quality float64) error {
	switch mimeType {
	case MimePNG:
		return png.Encode(w, c.img)
	case MimeJPEG:
		if quality <= 0 {
			quality = DefaultJPEGQuality
		}
		q := int(quality*100 + 0.5)
		q = max(1, min(q, 100))
		return jpeg.Encode(w, c.img, &jpeg.Options{Quality: q})
	case MimeBMP:
		return bmp.Encode(w, c.img)
	case MimeTIFF:
		return tiff.Encode(w, c.img, &tiff.Options{Compression: tiff.Deflate})
	case MimeRaw:
		_, err := w.Write(c.img.Pix)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, mimeType)
}

// ToBuffer encodes the buffer into memory. See Encode.
func (c *Context) ToBuffer(mimeType string, quality float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, mimeType, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG saves the context to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.saveAs(path, MimePNG, 0)
}

// SaveFile saves the context to path in the format named by its extension.
func (c *Context) SaveFile(path string, quality float64) error {
	mime, err := MimeForPath(path)
	if err != nil {
		return err
	}
	return c.saveAs(path, mime, quality)
}

func (c *Context) saveAs(path, mimeType string, quality float64) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.Encode(f, mimeType, quality); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
