// Package color parses CSS color literals and measures their legibility.
//
// Three literal grammars are accepted, after trimming and lowercasing:
//
//	#rgb / #rrggbb     hex, the 3-digit form expands by duplication
//	white, navy, ...   a fixed table of keyword colors
//	hsl(H, S%, L%)     H in [0,360], S and L in [0,100]
//
// Every literal resolves to an RGB triple. Contrast is computed with the
// WCAG 2 relative luminance formula; see contrast.go.
package color

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors for color parsing.
var (
	// ErrInvalidColor is the root of every format error returned by Parse.
	ErrInvalidColor = errors.New("invalid color format")

	// ErrInvalidPercentage indicates an adjustment percentage outside [0,100].
	ErrInvalidPercentage = errors.New("invalid percentage")
)

// supportedForms is appended to format errors so callers can show it verbatim.
const supportedForms = "supported formats: hex (#fff, #ffffff), named colors (white, black), or HSL (hsl(210, 50%, 20%))"

// namedColors maps CSS keywords to their hex value.
var namedColors = map[string]string{
	"white":   "#ffffff",
	"black":   "#000000",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"olive":   "#808000",
	"lime":    "#00ff00",
	"aqua":    "#00ffff",
	"teal":    "#008080",
	"navy":    "#000080",
	"fuchsia": "#ff00ff",
	"purple":  "#800080",
	"orange":  "#ffa500",
}

var hslPattern = regexp.MustCompile(`^hsl\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)$`)

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Black and White are the fallback answers of SuggestAccessible.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Hex returns the color as a lowercase, zero-padded #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Parse resolves a hex, named or HSL literal to RGB.
// Any literal outside the three grammars wraps ErrInvalidColor.
func Parse(literal string) (RGB, error) {
	s := strings.ToLower(strings.TrimSpace(literal))

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSL(s)
	}

	if h, ok := namedColors[s]; ok {
		return parseHex(h)
	}

	return RGB{}, fmt.Errorf("%w: %q: %s", ErrInvalidColor, s, supportedForms)
}

// Normalize parses a literal and returns its #rrggbb form.
func Normalize(literal string) (string, error) {
	c, err := Parse(literal)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

func parseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")

	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: hex color %q must have 3 or 6 digits", ErrInvalidColor, s)
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: hex color %q contains non-hex digits", ErrInvalidColor, s)
	}

	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

func parseHSL(s string) (RGB, error) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: HSL color %q must look like hsl(210, 50%%, 20%%)", ErrInvalidColor, s)
	}

	h, errH := strconv.Atoi(m[1])
	sat, errS := strconv.Atoi(m[2])
	light, errL := strconv.Atoi(m[3])
	if errH != nil || errS != nil || errL != nil {
		return RGB{}, fmt.Errorf("%w: HSL color %q has out-of-range components", ErrInvalidColor, s)
	}

	if h < 0 || h > 360 {
		return RGB{}, fmt.Errorf("%w: HSL hue must be 0-360, got %d", ErrInvalidColor, h)
	}
	if sat < 0 || sat > 100 {
		return RGB{}, fmt.Errorf("%w: HSL saturation must be 0-100%%, got %d%%", ErrInvalidColor, sat)
	}
	if light < 0 || light > 100 {
		return RGB{}, fmt.Errorf("%w: HSL lightness must be 0-100%%, got %d%%", ErrInvalidColor, light)
	}

	return hslToRGB(h, float64(sat)/100, float64(light)/100), nil
}

// hslToRGB uses the six-sector chroma algorithm.
func hslToRGB(h int, s, l float64) RGB {
	hue := float64(h)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}
}

// toChannel scales a [0,1] component to [0,255] with rounding.
func toChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
}
