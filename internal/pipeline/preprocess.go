package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Placeholders use Unicode Private Use Area characters. They pass through
// Goldmark unchanged, so raw HTML never has to be enabled; Render swaps
// them for markup afterwards.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
	PageBreakPlaceholder = "\uE002"
)

// PageBreakHTML is the element a page-break comment becomes.
const PageBreakHTML = `<div class="page-break"></div>`

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)

	// Accepts <!-- pagebreak -->, <!-- page-break -->, <!-- PAGE_BREAK -->, ...
	pageBreakPattern = regexp.MustCompile(`(?i)<!--\s*page[-_\s]*break\s*-->`)

	fencePattern = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
)

// Preprocess prepares Markdown for Goldmark: it normalizes line endings,
// turns page-break comments and ==highlight== spans into placeholders, and
// compresses runs of blank lines. Fenced and inline code are left untouched.
func Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")

	lines := strings.Split(content, "\n")
	var fence string // opening run of the current code block
	for i, line := range lines {
		if m := fencePattern.FindStringSubmatch(line); m != nil {
			run := m[1]
			switch {
			case fence == "":
				fence = run
			case closesFence(fence, run, line[len(m[0]):]):
				fence = ""
			}
			continue
		}
		if fence != "" {
			continue
		}
		lines[i] = transformOutsideCode(line)
	}

	content = strings.Join(lines, "\n")
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// closesFence reports whether a fence line ends the block opened by open:
// same character, at least as long, and nothing but spaces after it.
func closesFence(open, run, rest string) bool {
	return run[0] == open[0] && len(run) >= len(open) && strings.TrimSpace(rest) == ""
}

// transformOutsideCode applies the placeholder substitutions to the parts of
// a line that are not inside backtick code spans.
func transformOutsideCode(line string) string {
	if !strings.ContainsAny(line, "=<") {
		return line
	}

	if trimmed := strings.TrimSpace(line); pageBreakPattern.MatchString(trimmed) &&
		pageBreakPattern.ReplaceAllString(trimmed, "") == "" {
		// A break alone on its line becomes its own paragraph.
		return "\n" + PageBreakPlaceholder + "\n"
	}

	parts := strings.Split(line, "`")
	for i := 0; i < len(parts); i += 2 {
		parts[i] = pageBreakPattern.ReplaceAllString(parts[i], PageBreakPlaceholder)
		parts[i] = highlightPattern.ReplaceAllString(parts[i], MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	}
	return strings.Join(parts, "`")
}

// replacePlaceholders swaps placeholders in rendered HTML for markup.
func replacePlaceholders(htmlContent string) string {
	return placeholderReplacer.Replace(htmlContent)
}

var placeholderReplacer = strings.NewReplacer(
	"<p>"+PageBreakPlaceholder+"</p>", PageBreakHTML,
	PageBreakPlaceholder, PageBreakHTML,
	MarkStartPlaceholder, "<mark>",
	MarkEndPlaceholder, "</mark>",
)
