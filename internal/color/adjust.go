package color

import (
	"fmt"
	"math"
)

// Search range for SuggestAccessible, in percent.
// Worst case is (adjustEnd-adjustStart)/adjustStep candidates per call.
const (
	adjustStart = 5
	adjustEnd   = 100 // exclusive
	adjustStep  = 5
)

// lightBackground is the luminance above which a background counts as light.
const lightBackground = 0.5

// Darken moves every channel toward 0 by pct percent, truncating.
func Darken(c RGB, pct float64) (RGB, error) {
	if err := validatePercentage(pct); err != nil {
		return RGB{}, err
	}
	factor := 1.0 - pct/100.0
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}, nil
}

// Lighten moves every channel toward 255 by pct percent, truncating.
func Lighten(c RGB, pct float64) (RGB, error) {
	if err := validatePercentage(pct); err != nil {
		return RGB{}, err
	}
	factor := pct / 100.0
	return RGB{
		R: uint8(float64(c.R) + float64(255-c.R)*factor),
		G: uint8(float64(c.G) + float64(255-c.G)*factor),
		B: uint8(float64(c.B) + float64(255-c.B)*factor),
	}, nil
}

// SuggestDarker parses literal, darkens it by pct percent and returns hex.
func SuggestDarker(literal string, pct float64) (string, error) {
	c, err := Parse(literal)
	if err != nil {
		return "", err
	}
	d, err := Darken(c, pct)
	if err != nil {
		return "", err
	}
	return d.Hex(), nil
}

// SuggestLighter parses literal, lightens it by pct percent and returns hex.
func SuggestLighter(literal string, pct float64) (string, error) {
	c, err := Parse(literal)
	if err != nil {
		return "", err
	}
	l, err := Lighten(c, pct)
	if err != nil {
		return "", err
	}
	return l.Hex(), nil
}

// SuggestAccessible returns a foreground close to fg whose contrast against
// bg reaches target. A foreground that already passes comes back normalized.
//
// On a light background fg is darkened in fixed steps, on a dark one it is
// lightened; the first step that passes wins. When no step passes the answer
// is pure black (light background) or pure white (dark background).
func SuggestAccessible(fg, bg string, target float64) (string, error) {
	fgc, err := Parse(fg)
	if err != nil {
		return "", err
	}
	bgc, err := Parse(bg)
	if err != nil {
		return "", err
	}

	if Contrast(fgc, bgc) >= target {
		return fgc.Hex(), nil
	}

	light := RelativeLuminance(bgc) > lightBackground
	adjust := Lighten
	if light {
		adjust = Darken
	}

	for pct := adjustStart; pct < adjustEnd; pct += adjustStep {
		candidate, err := adjust(fgc, float64(pct))
		if err != nil {
			return "", err
		}
		if Contrast(candidate, bgc) >= target {
			return candidate.Hex(), nil
		}
	}

	if light {
		return Black.Hex(), nil
	}
	return White.Hex(), nil
}

func validatePercentage(pct float64) error {
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return fmt.Errorf("%w: %v (must be between 0 and 100)", ErrInvalidPercentage, pct)
	}
	return nil
}
