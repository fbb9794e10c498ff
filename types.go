package md2pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/md2pdf-themes/internal/pipeline"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// paperSize is a sheet in inches.
type paperSize struct {
	width, height float64
}

var paperSizes = map[string]paperSize{
	PageSizeA4:     {8.27, 11.69},
	PageSizeLetter: {8.5, 11},
	PageSizeLegal:  {8.5, 14},
}

// PageSizes returns the accepted page size names.
func PageSizes() []string {
	return []string{PageSizeA4, PageSizeLetter, PageSizeLegal}
}

// ValidatePageSize checks that size names a known paper size (case-insensitive).
func ValidatePageSize(size string) error {
	if _, ok := paperSizes[strings.ToLower(size)]; !ok {
		return fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidPageSize, size, strings.Join(PageSizes(), ", "))
	}
	return nil
}

// Input contains the parameters of a single conversion.
type Input struct {
	Markdown  string // Markdown content (required)
	Title     string // document <title>, "" = "Document"
	CSS       string // theme stylesheet, inlined as is
	SourceDir string // directory relative image and link paths resolve against
	HTMLOnly  bool   // skip PDF rendering
}

// Section is one Markdown document inside a merged conversion.
type Section struct {
	Name      string // label shown in the section header, usually the file name
	Markdown  string
	SourceDir string
}

// MergeOptions configures ConvertSections.
type MergeOptions struct {
	Title     string
	AutoBreak bool // page break between consecutive sections
	HTMLOnly  bool
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML []byte // complete HTML document sent to the browser
	PDF  []byte // nil when HTMLOnly was set
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout   time.Duration
	pageSize  string
	codeStyle string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-document rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithPageSize forces a paper size over any @page size in the stylesheet.
// Without it the stylesheet decides and A4 is the fallback.
// Invalid sizes are reported by NewConverter.
func WithPageSize(size string) Option {
	return func(c *Converter) {
		c.cfg.pageSize = strings.ToLower(size)
	}
}

// WithCodeStyle sets the chroma style used for fenced code blocks.
// "" disables the code stylesheet. Unknown styles are reported by NewConverter.
func WithCodeStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.codeStyle = name
	}
}

func defaultConfig() converterConfig {
	return converterConfig{
		timeout:   defaultTimeout,
		codeStyle: pipeline.DefaultCodeStyle,
	}
}
