package md2pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/md2pdf-themes/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// Converter turns Markdown and a theme stylesheet into PDF.
// Create with NewConverter, call Convert or ConvertSections, and Close when done.
// A Converter owns one browser and is not safe for concurrent use; use
// ConverterPool for parallel work.
type Converter struct {
	cfg          converterConfig
	renderer     *pipeline.Renderer
	codeCSS      string
	pdfConverter pdfConverter
}

// NewConverter creates a Converter. The browser is started on first use.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:      defaultConfig(),
		renderer: pipeline.NewRenderer(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.pageSize != "" {
		if err := ValidatePageSize(c.cfg.pageSize); err != nil {
			return nil, err
		}
	}
	if c.cfg.codeStyle != "" {
		css, err := pipeline.CodeStyleCSS(c.cfg.codeStyle)
		if err != nil {
			return nil, err
		}
		c.codeCSS = css
	}

	// Tests inject their own.
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}
	return c, nil
}

// Convert renders one Markdown document. The context bounds the whole
// conversion; the converter timeout additionally bounds page loading.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	body, err := c.renderBody(ctx, input.Markdown, input.SourceDir)
	if err != nil {
		return nil, err
	}
	return c.finish(ctx, input.Title, body, input.CSS, input.HTMLOnly)
}

// ConvertSections renders several documents into one, each under a section
// header naming it. Sections with blank Markdown are kept as empty sections.
func (c *Converter) ConvertSections(ctx context.Context, sections []Section, opts MergeOptions, css string) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	rendered := make([]pipeline.Section, 0, len(sections))
	for _, s := range sections {
		body, err := c.renderBody(ctx, s.Markdown, s.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Name, err)
		}
		rendered = append(rendered, pipeline.Section{Name: s.Name, HTML: body})
	}

	body := pipeline.MergeSections(rendered, opts.AutoBreak)
	return c.finish(ctx, opts.Title, body, css, opts.HTMLOnly)
}

// Close releases the browser.
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// renderBody converts Markdown to a body fragment with local paths resolved.
func (c *Converter) renderBody(ctx context.Context, markdown, sourceDir string) (string, error) {
	body, err := c.renderer.Render(ctx, markdown)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}
	body, err = pipeline.ResolveLocalPaths(body, sourceDir)
	if err != nil {
		return "", fmt.Errorf("rewriting relative paths: %w", err)
	}
	return body, nil
}

// finish wraps the body in a document and prints it unless htmlOnly is set.
// The code stylesheet comes first so the theme can override it.
func (c *Converter) finish(ctx context.Context, title, body, css string, htmlOnly bool) (*ConvertResult, error) {
	stylesheet := css
	if c.codeCSS != "" {
		stylesheet = c.codeCSS + "\n" + css
	}
	doc := pipeline.BuildDocument(title, body, stylesheet)

	res := &ConvertResult{HTML: []byte(doc)}
	if htmlOnly {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf, err := c.pdfConverter.ToPDF(ctx, doc, &pdfOptions{PageSize: c.cfg.pageSize})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdf
	return res, nil
}
