//go:build integration

package md2pdf

// Notes:
// - Requires Chrome/Chromium (or network access for go-rod's download).
// - One pool is shared by all tests and closed in TestMain.

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"
)

const testTimeout = 30 * time.Second

var testPool *ConverterPool

func TestMain(m *testing.M) {
	testPool = NewConverterPool(min(ResolvePoolSize(0), 2))
	code := m.Run()
	_ = testPool.Close()
	os.Exit(code)
}

func acquireConverter(t *testing.T) *Converter {
	t.Helper()
	c, err := testPool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	t.Cleanup(func() { testPool.Release(c) })
	return c
}

func TestIntegration_Convert(t *testing.T) {
	c := acquireConverter(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	res, err := c.Convert(ctx, Input{
		Markdown: "# Title\n\nParagraph\n\n<!-- pagebreak -->\n\n## Next page\n\n```go\nfunc main() {}\n```",
		CSS:      "@page { size: A4; margin: 0; } .page-break { break-after: page; }",
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !bytes.HasPrefix(res.PDF, []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", res.PDF[:min(len(res.PDF), 16)])
	}
}

func TestIntegration_ConvertSections(t *testing.T) {
	c := acquireConverter(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	res, err := c.ConvertSections(ctx, []Section{
		{Name: "one.md", Markdown: "# One"},
		{Name: "two.md", Markdown: "# Two"},
	}, MergeOptions{Title: "Merged", AutoBreak: true}, "")
	if err != nil {
		t.Fatalf("ConvertSections() error = %v", err)
	}
	if !bytes.HasPrefix(res.PDF, []byte("%PDF-")) {
		t.Error("merged output is not a PDF")
	}
}
