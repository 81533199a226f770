package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseHex parses a CSS-style hex color: "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
// The leading '#' is required.
func ParseHex(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q: missing '#'", ErrInvalidHex, s)
	}
	hex := s[1:]

	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q: unexpected length", ErrInvalidHex, s)
	}

	var ch [4]uint8
	ch[3] = 0xff
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
		}
		ch[i] = uint8(v)
	}

	// color.RGBA is alpha-premultiplied.
	a := uint32(ch[3])
	return color.RGBA{
		R: uint8(uint32(ch[0]) * a / 0xff),
		G: uint8(uint32(ch[1]) * a / 0xff),
		B: uint8(uint32(ch[2]) * a / 0xff),
		A: ch[3],
	}, nil
}

// IsHex reports whether s is a color ParseHex accepts.
func IsHex(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HSLToHex converts h in degrees, s and l in percent to "#rrggbb".
func HSLToHex(h, s, l float64) string {
	s /= 100
	l /= 100

	a := s * math.Min(l, 1-l)
	channel := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return uint8(math.Floor(255*clamp01(v) + 0.5))
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(0), channel(8), channel(4))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
