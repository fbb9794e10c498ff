package theme

import (
	"fmt"
)

// Properties is the full set of user choices that define a theme.
// Color fields accept any literal understood by the color package.
type Properties struct {
	Name                  string
	BackgroundColor       string
	TextColor             string
	FontFamily            string
	BodyTextSize          string
	H1Color               string
	HeadingColor          string // h2 through h6
	AccentColor           string
	CodeBackground        string
	TableHeaderBackground string
}

// Default property values offered by the wizard.
const (
	DefaultBackgroundColor       = "#ffffff"
	DefaultTextColor             = "#000000"
	DefaultFontFamily            = "Arial, sans-serif"
	DefaultBodyTextSize          = "11pt"
	DefaultH1Color               = "#2c3e50"
	DefaultHeadingColor          = "#2c3e50"
	DefaultAccentColor           = "#667eea"
	DefaultCodeBackground        = "#f5f5f5"
	DefaultTableHeaderBackground = "#667eea"
)

// DefaultProperties returns the default property set with the given name.
func DefaultProperties(name string) Properties {
	return Properties{
		Name:                  name,
		BackgroundColor:       DefaultBackgroundColor,
		TextColor:             DefaultTextColor,
		FontFamily:            DefaultFontFamily,
		BodyTextSize:          DefaultBodyTextSize,
		H1Color:               DefaultH1Color,
		HeadingColor:          DefaultHeadingColor,
		AccentColor:           DefaultAccentColor,
		CodeBackground:        DefaultCodeBackground,
		TableHeaderBackground: DefaultTableHeaderBackground,
	}
}

// ContrastPair names a foreground that is checked against the background.
type ContrastPair struct {
	Element    string
	Foreground string
}

// ContrastPairs returns the foregrounds checked against BackgroundColor,
// in prompt order.
func (p Properties) ContrastPairs() []ContrastPair {
	return []ContrastPair{
		{Element: "Body text", Foreground: p.TextColor},
		{Element: "H1 heading", Foreground: p.H1Color},
		{Element: "H2-H6 heading", Foreground: p.HeadingColor},
		{Element: "Link", Foreground: p.AccentColor},
	}
}

// Validate checks every field except name uniqueness.
func (p Properties) Validate() error {
	if err := checkNameChars(p.Name); err != nil {
		return err
	}

	colors := []struct {
		field string
		value string
	}{
		{"background color", p.BackgroundColor},
		{"text color", p.TextColor},
		{"h1 color", p.H1Color},
		{"heading color", p.HeadingColor},
		{"accent color", p.AccentColor},
		{"code background", p.CodeBackground},
		{"table header background", p.TableHeaderBackground},
	}
	for _, c := range colors {
		if c.value == "" {
			return fmt.Errorf("%w: missing %s", ErrIncompleteProperties, c.field)
		}
		if err := ValidateColor(c.value); err != nil {
			return fmt.Errorf("%s: %w", c.field, err)
		}
	}

	if err := ValidateFontFamily(p.FontFamily); err != nil {
		return err
	}
	return ValidateFontSize(p.BodyTextSize)
}
