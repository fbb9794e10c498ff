package pipeline

import (
	"html"
	"strings"
)

// DefaultTitle is used when a document has no title.
const DefaultTitle = "Document"

// BuildDocument wraps an HTML body fragment in a complete HTML5 document with
// the stylesheet inlined in the head.
func BuildDocument(title, body, css string) string {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.Grow(len(body) + len(css) + 160)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n")
	if css != "" {
		b.WriteString("<style>\n")
		b.WriteString(sanitizeCSS(css))
		b.WriteString("\n</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// sanitizeCSS keeps a stylesheet from closing its <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
