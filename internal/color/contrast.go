package color

import "math"

// WCAG 2 contrast thresholds for normal-size text.
const (
	WCAGAA  = 4.5
	WCAGAAA = 7.0
)

// Contrast ratings returned by Rating.
const (
	RatingAAA  = "Excellent - WCAG AAA"
	RatingAA   = "Good - WCAG AA"
	RatingPoor = "Poor - Below WCAG AA"
)

// RelativeLuminance returns the WCAG relative luminance of c, in [0,1].
func RelativeLuminance(c RGB) float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts one sRGB channel to linear light.
func linearize(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Contrast returns the contrast ratio between two colors, in [1,21].
// The result does not depend on argument order.
func Contrast(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastRatio parses two literals and returns their contrast ratio.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := Parse(a)
	if err != nil {
		return 0, err
	}
	cb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return Contrast(ca, cb), nil
}

// MeetsAA reports whether ratio satisfies WCAG AA (4.5:1).
func MeetsAA(ratio float64) bool {
	return ratio >= WCAGAA
}

// MeetsAAA reports whether ratio satisfies WCAG AAA (7:1).
func MeetsAAA(ratio float64) bool {
	return ratio >= WCAGAAA
}

// Rating returns a human-readable verdict for ratio.
func Rating(ratio float64) string {
	switch {
	case MeetsAAA(ratio):
		return RatingAAA
	case MeetsAA(ratio):
		return RatingAA
	default:
		return RatingPoor
	}
}
