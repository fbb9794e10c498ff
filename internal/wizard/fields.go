package wizard

import (
	"github.com/alnah/md2pdf-themes/internal/color"
	"github.com/alnah/md2pdf-themes/internal/theme"
)

// field describes one prompt of the wizard.
type field struct {
	label    string
	def      string
	required bool

	validate  func(string) error
	normalize func(string) (string, error) // nil keeps the input as typed

	// contrast names the element checked against the background;
	// empty means no contrast check.
	contrast string

	accepted string // printed once the value is accepted

	set func(*theme.Properties, string)
}

// fields returns the prompts after the theme name, in order.
func fields() []field {
	return []field{
		{
			label:     "Background color",
			def:       theme.DefaultBackgroundColor,
			validate:  theme.ValidateColor,
			normalize: color.Normalize,
			set:       func(p *theme.Properties, v string) { p.BackgroundColor = v },
		},
		{
			label:     "Text color",
			def:       theme.DefaultTextColor,
			validate:  theme.ValidateColor,
			normalize: color.Normalize,
			contrast:  "Body text",
			set:       func(p *theme.Properties, v string) { p.TextColor = v },
		},
		{
			label:    "Font family",
			def:      theme.DefaultFontFamily,
			validate: theme.ValidateFontFamily,
			set:      func(p *theme.Properties, v string) { p.FontFamily = v },
		},
		{
			label:     "Body text size",
			def:       theme.DefaultBodyTextSize,
			validate:  theme.ValidateFontSize,
			normalize: theme.NormalizeFontSize,
			set:       func(p *theme.Properties, v string) { p.BodyTextSize = v },
		},
		{
			label:     "H1 heading color",
			def:       theme.DefaultH1Color,
			validate:  theme.ValidateColor,
			normalize: color.Normalize,
			contrast:  "H1 heading",
			set:       func(p *theme.Properties, v string) { p.H1Color = v },
		},
		{
			label:     "H2-H6 heading color",
			def:       theme.DefaultHeadingColor,
			validate:  theme.ValidateColor,
			normalize: color.Normalize,
			contrast:  "H2-H6 heading",
			set:       func(p *theme.Properties, v string) { p.HeadingColor = v },
		},
		{
			label:     "Accent color (links, borders)",
			def:       theme.DefaultAccentColor,
			validate:  theme.ValidateColor,
			normalize: color.Normalize,
			contrast:  "Link",
			set:       func(p *theme.Properties, v string) { p.AccentColor = v },
		},
		{
			label:     "Code block background",
			def:       theme.DefaultCodeBackground,
			validate:  theme.ValidateColor,
			normalize: color.Normalize,
			set:       func(p *theme.Properties, v string) { p.CodeBackground = v },
		},
		{
			label:     "Table header background",
			def:       theme.DefaultTableHeaderBackground,
			validate:  theme.ValidateColor,
			normalize: color.Normalize,
			set:       func(p *theme.Properties, v string) { p.TableHeaderBackground = v },
		},
	}
}
