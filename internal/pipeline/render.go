package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// ErrUnknownCodeStyle indicates a syntax highlighting style that chroma does not ship.
var ErrUnknownCodeStyle = errors.New("unknown code style")

// DefaultCodeStyle is the chroma style used for fenced code.
const DefaultCodeStyle = "github"

// Theme stylesheets own block backgrounds, so chroma's are dropped.
var chromaBackground = regexp.MustCompile(`\s*background-color:\s*#[0-9a-fA-F]+;?`)

// Renderer converts Markdown to an HTML body fragment.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM, footnotes, definition lists and
// class-based syntax highlighting.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// No html.WithUnsafe: page breaks and highlights travel as placeholders.
		),
	)
	return &Renderer{md: md}
}

// Render preprocesses content, converts it and replaces the placeholders.
// Goldmark has no context support, so conversion runs in a goroutine and
// Render returns as soon as ctx is done.
func (r *Renderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source := Preprocess(ctx, content)

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(source), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: replacePlaceholders(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// CodeStyleCSS returns the token colors of a chroma style as CSS classes,
// without background colors.
func CodeStyleCSS(name string) (string, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (available: %v)", ErrUnknownCodeStyle, name, CodeStyles())
	}

	var buf bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing code style: %w", err)
	}
	return chromaBackground.ReplaceAllString(buf.String(), ""), nil
}

// CodeStyles returns the names of the available chroma styles, sorted.
func CodeStyles() []string {
	return styles.Names()
}
