package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color string: an SVG 1.1 color keyword such as
// "black" or "steelblue", "transparent", "#rgb", "#rgba",
// "#rrggbb", "#rrggbbaa", "rgb(r, g, b)" or "rgba(r, g, b, a)" with alpha
// in 0..1. Keywords are case-insensitive.
func ParseColor(s string) (color.NRGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case str == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(str, "#"):
		if c, ok := parseHex(str[1:]); ok {
			return c, nil
		}
	case strings.HasPrefix(str, "rgba(") || strings.HasPrefix(str, "rgb("):
		if c, ok := parseFunc(str); ok {
			return c, nil
		}
	default:
		if c, ok := colornames.Map[str]; ok {
			return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
		}
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// parseHex parses the digits of a "#rgb", "#rgba", "#rrggbb" or
// "#rrggbbaa" color.
func parseHex(hex string) (color.NRGBA, bool) {
	var v [4]uint8
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return color.NRGBA{}, false
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, false
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// parseFunc parses "rgb(...)" and "rgba(...)".
func parseFunc(s string) (color.NRGBA, bool) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return color.NRGBA{}, false
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, false
	}

	var v [4]uint8
	v[3] = 255
	for i, arg := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return color.NRGBA{}, false
		}
		if i == 3 {
			f *= 255
		}
		v[i] = uint8(clamp255(f + 0.5))
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
