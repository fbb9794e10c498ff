package theme

import (
	"fmt"
	"strings"

	"github.com/alnah/md2pdf-themes/internal/color"
)

// Derived color adjustments, in percent.
const (
	hoverDarken    = 15
	altRowLighten  = 5
	borderDarken   = 10
	generatorTitle = "Generated by md2pdf theme builder"
)

// palette holds the normalized and derived colors used by the stylesheet.
type palette struct {
	background  string
	text        string
	h1          string
	heading     string
	accent      string
	codeBg      string
	tableHeader string

	hover  string // accent darkened
	altRow string // background lightened
	border string // code background darkened
}

func newPalette(p Properties) (palette, error) {
	var pal palette
	fields := []struct {
		dst *string
		src string
	}{
		{&pal.background, p.BackgroundColor},
		{&pal.text, p.TextColor},
		{&pal.h1, p.H1Color},
		{&pal.heading, p.HeadingColor},
		{&pal.accent, p.AccentColor},
		{&pal.codeBg, p.CodeBackground},
		{&pal.tableHeader, p.TableHeaderBackground},
	}
	for _, f := range fields {
		hex, err := color.Normalize(f.src)
		if err != nil {
			return palette{}, err
		}
		*f.dst = hex
	}

	var err error
	if pal.hover, err = color.SuggestDarker(pal.accent, hoverDarken); err != nil {
		return palette{}, err
	}
	if pal.altRow, err = color.SuggestLighter(pal.background, altRowLighten); err != nil {
		return palette{}, err
	}
	if pal.border, err = color.SuggestDarker(pal.codeBg, borderDarken); err != nil {
		return palette{}, err
	}
	return pal, nil
}

// GenerateCSS renders the stylesheet for p. Colors are emitted as lowercase
// hex and the output is identical for identical input.
func GenerateCSS(p Properties) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	pal, err := newPalette(p)
	if err != nil {
		return "", err
	}
	size, err := NormalizeFontSize(p.BodyTextSize)
	if err != nil {
		return "", err
	}
	font := strings.TrimSpace(p.FontFamily)

	var buf strings.Builder
	fmt.Fprintf(&buf, "/* Theme: %s */\n/* %s */\n", p.Name, generatorTitle)
	writePage(&buf, pal, font, size)
	writeHeadings(&buf, pal)
	writeText(&buf, pal, size)
	writeTables(&buf, pal)
	writeCode(&buf, pal)
	writeDecorations(&buf, pal)
	return buf.String(), nil
}

func writePage(buf *strings.Builder, pal palette, font, size string) {
	fmt.Fprintf(buf, `
@page {
  size: A4;
  margin: 0;
}

body {
  font-family: %s;
  font-size: %s;
  line-height: 1.6;
  color: %s;
  background-color: %s;
  padding: 2cm;
}
`, font, size, pal.text, pal.background)
}

func writeHeadings(buf *strings.Builder, pal palette) {
	fmt.Fprintf(buf, `
h1, h2, h3, h4, h5, h6 {
  margin-top: 1.5em;
  margin-bottom: 0.5em;
  break-after: avoid;
  page-break-after: avoid;
}

h1 {
  font-size: 32pt;
  color: %[1]s;
  background: %[3]s;
  padding: 20px;
  border-radius: 10px;
  text-align: center;
  font-weight: 700;
  border-left: 5px solid %[4]s;
}

.document-section-header {
  font-size: 28pt;
  color: %[1]s;
  background: none;
  border: none;
  padding: 20px;
  text-align: right;
  font-weight: 600;
}

h2 {
  font-size: 24pt;
  color: %[2]s;
  background: %[3]s;
  padding: 15px;
  border-radius: 8px;
  border-left: 4px solid %[4]s;
}

h3 {
  font-size: 18pt;
  color: %[2]s;
  background: %[3]s;
  padding: 10px;
  border-radius: 5px;
  font-weight: 600;
}
`, pal.h1, pal.heading, pal.codeBg, pal.accent)

	for _, h := range []struct {
		tag  string
		size int
	}{{"h4", 16}, {"h5", 14}, {"h6", 12}} {
		fmt.Fprintf(buf, "\n%s {\n  font-size: %dpt;\n  color: %s;\n  font-weight: 600;\n}\n", h.tag, h.size, pal.heading)
	}
}

func writeText(buf *strings.Builder, pal palette, size string) {
	fmt.Fprintf(buf, `
p {
  margin: 10px 0;
  font-size: %[1]s;
}

ul, ol {
  padding: 0 0 0 2em;
  margin: 10px 0;
  font-size: %[1]s;
  line-height: 1.6;
}

li {
  margin: 5px 0;
}

blockquote {
  border-left: 5px solid %[2]s;
  margin: 15px 0;
  font-style: italic;
  background: %[3]s;
  padding: 18px 18px 18px 2em;
  border-radius: 5px;
}

a {
  color: %[2]s;
  text-decoration: none;
  font-weight: 500;
}

a:hover {
  color: %[4]s;
  text-decoration: underline;
}
`, size, pal.accent, pal.codeBg, pal.hover)
}

func writeTables(buf *strings.Builder, pal palette) {
	fmt.Fprintf(buf, `
table {
  border-collapse: collapse;
  width: 100%%;
  margin: 20px 0;
  font-size: 10pt;
  border-radius: 8px;
  overflow: hidden;
}

th {
  background: %s;
  color: #ffffff;
  padding: 14px;
  text-align: left;
  font-weight: 600;
}

td {
  padding: 12px;
  border: 1px solid %s;
}

tr:nth-child(even) td {
  background-color: %s;
}
`, pal.tableHeader, pal.border, pal.altRow)
}

func writeCode(buf *strings.Builder, pal palette) {
	fmt.Fprintf(buf, `
code {
  background: %[1]s;
  padding: 4px 8px;
  border-radius: 3px;
  font-family: 'Courier New', monospace;
  font-size: 10pt;
  border: 1px solid %[2]s;
}

pre {
  background: %[1]s;
  border: 1px solid %[2]s;
  border-left: 5px solid %[3]s;
  border-radius: 5px;
  padding: 18px;
  overflow-x: auto;
  margin: 15px 0;
  font-size: 10pt;
}

pre code {
  background: none;
  padding: 0;
  border: none;
}
`, pal.codeBg, pal.border, pal.accent)
}

func writeDecorations(buf *strings.Builder, pal palette) {
	fmt.Fprintf(buf, `
hr {
  border: none;
  height: 2px;
  background: %s;
  margin: 25px 0;
}

img {
  max-width: 100%%;
  height: auto;
  border-radius: 8px;
  border: 2px solid %s;
}

.page-break {
  page-break-after: always;
  break-after: page;
  height: 0;
  margin: 0;
  padding: 0;
  border: none;
}
`, pal.accent, pal.border)
}
