package canvas

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"

	"github.com/gogpu/shapes/internal/cache"
)

// glyphCacheCapacity is the per-shard capacity of a store's outline cache.
const glyphCacheCapacity = 128

// DefaultFamily is the family a new FontStore maps to Go Regular. It is
// also the fallback for unknown families.
const DefaultFamily = "sans-serif"

// FontOptions select a face within a family. Empty fields mean "normal".
type FontOptions struct {
	Style  string // "normal", "italic", "oblique"
	Weight string // "normal", "bold", "100".."900"
}

// FontStore maps family names to parsed fonts. Family names are matched
// case-insensitively.
//
// A FontStore is passed to contexts explicitly (see WithFonts) rather than
// registered process-wide. It is not safe for concurrent mutation, but
// contexts sharing a store may draw text concurrently.
type FontStore struct {
	faces    map[string]*sfnt.Font // key: folded family, style, weight
	families map[string]string     // folded family -> registered name
	fallback *sfnt.Font

	ids    map[*sfnt.Font]uint32
	glyphs *cache.Cache[glyphKey, sfnt.Segments]
}

// glyphKey identifies one outline at one size.
type glyphKey struct {
	font uint32
	gid  sfnt.GlyphIndex
	ppem fixed.Int26_6
}

func hashGlyph(k glyphKey) uint64 {
	h := uint64(k.font)<<48 ^ uint64(k.gid)<<32 ^ uint64(uint32(k.ppem))
	return h * 0x9e3779b97f4a7c15 >> 32
}

// NewFontStore returns a store with Go Regular registered as
// DefaultFamily.
func NewFontStore() *FontStore {
	fs := &FontStore{
		faces:    make(map[string]*sfnt.Font),
		families: make(map[string]string),
		ids:      make(map[*sfnt.Font]uint32),
		glyphs:   cache.New[glyphKey, sfnt.Segments](glyphCacheCapacity, hashGlyph),
	}
	// goregular.TTF is embedded and known to parse.
	if err := fs.AddFontFamily(goregular.TTF, DefaultFamily, FontOptions{}); err != nil {
		panic(err)
	}
	fs.fallback = fs.faces[faceKey(DefaultFamily, FontOptions{})]
	return fs
}

// AddFontFamily parses an OpenType/TrueType font and registers it under
// family with the given style and weight, replacing any previous face.
func (fs *FontStore) AddFontFamily(data []byte, family string, opts FontOptions) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("canvas: failed to parse font %q: %w", family, err)
	}
	fs.faces[faceKey(family, opts)] = f
	fs.families[fold(family)] = family
	fs.ids[f] = uint32(len(fs.ids)) // #nosec G115 -- font count is far below uint32 max
	Logger().Debug("canvas: font registered", "family", family,
		"style", opts.Style, "weight", opts.Weight, "glyphs", f.NumGlyphs())
	return nil
}

// AddFontFile reads the font file at path and registers it like
// AddFontFamily.
func (fs *FontStore) AddFontFile(path, family string, opts FontOptions) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	return fs.AddFontFamily(data, family, opts)
}

// Lookup returns the face for family and opts. A family registered with a
// different style or weight matches when the exact face is missing.
func (fs *FontStore) Lookup(family string, opts FontOptions) (*sfnt.Font, bool) {
	if f, ok := fs.faces[faceKey(family, opts)]; ok {
		return f, true
	}
	if f, ok := fs.faces[faceKey(family, FontOptions{})]; ok {
		return f, true
	}
	prefix := fold(family) + "|"
	var keys []string
	for k := range fs.faces {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, false
	}
	sort.Strings(keys)
	return fs.faces[keys[0]], true
}

// Default returns the fallback face.
func (fs *FontStore) Default() *sfnt.Font {
	return fs.fallback
}

// Families returns the registered family names, sorted.
func (fs *FontStore) Families() []string {
	out := make([]string, 0, len(fs.families))
	for _, name := range fs.families {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func faceKey(family string, opts FontOptions) string {
	return fold(family) + "|" + normal(opts.Style) + "|" + normal(opts.Weight)
}

func normal(s string) string {
	if s == "" {
		return "normal"
	}
	return fold(s)
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// outline returns the segments of glyph gid at ppem. Outlines of fonts
// registered in fs are cached; the result must not be modified.
func (fs *FontStore) outline(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, ppem fixed.Int26_6) (sfnt.Segments, error) {
	load := func() (sfnt.Segments, error) {
		segs, err := f.LoadGlyph(buf, gid, ppem, nil)
		if err != nil {
			return nil, err
		}
		// segs aliases buf
		return append(sfnt.Segments(nil), segs...), nil
	}
	id, ok := fs.ids[f]
	if !ok {
		return load()
	}
	return fs.glyphs.GetOrLoad(glyphKey{font: id, gid: gid, ppem: ppem}, load)
}

