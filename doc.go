// Package md2pdf converts Markdown documents to PDF using headless Chrome,
// styled by a theme stylesheet.
//
// # Quick Start
//
//	conv, err := md2pdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, md2pdf.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    CSS:      themeCSS,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", result.PDF, 0644)
//
// The result holds the PDF and the HTML document that produced it. Set
// Input.HTMLOnly to skip the browser.
//
// # Merging
//
// ConvertSections renders several documents into one PDF. Each section is
// preceded by an h1.document-section-header naming it, and MergeOptions.AutoBreak
// puts a page break between sections.
//
// # Page Breaks
//
// A comment such as <!-- pagebreak --> or <!-- page-break --> outside code
// becomes <div class="page-break"></div>; themes give that class
// break-after: page.
//
// # Parallel Processing
//
//	pool := md2pdf.NewConverterPool(md2pdf.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. go-rod downloads a managed
// Chromium on first run (~/.cache/rod/browser/). Set ROD_BROWSER_BIN to use
// another binary and ROD_NO_SANDBOX=1 inside containers.
package md2pdf
