package pipeline

import (
	"html"
	"strings"
)

// Section is one rendered source document inside a merged output.
type Section struct {
	// Name labels the section, usually the source file name.
	Name string
	// HTML is the rendered body fragment.
	HTML string
}

// SectionHeaderClass is the class of the heading placed before each merged section.
const SectionHeaderClass = "document-section-header"

// MergeSections joins sections into one body fragment. Each section starts
// with a heading naming it. With autoBreak, a page break separates
// consecutive sections; none follows the last one.
func MergeSections(sections []Section, autoBreak bool) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			if autoBreak {
				b.WriteString(PageBreakHTML)
			}
			b.WriteString("\n")
		}
		b.WriteString(`<h1 class="` + SectionHeaderClass + `">`)
		b.WriteString(html.EscapeString(s.Name))
		b.WriteString("</h1>\n")
		b.WriteString(s.HTML)
		if !strings.HasSuffix(s.HTML, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}
