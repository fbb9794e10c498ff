package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2pdf "github.com/alnah/md2pdf-themes"
	"github.com/alnah/md2pdf-themes/internal/fileutil"
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runBatch converts every input to its own PDF. It returns the first
// written path, and an error when any file failed.
func runBatch(ctx context.Context, pool Pool, inputs []inputFile, outputDir string, params *conversionParams, rep *reporter) (string, error) {
	if outputDir != "" {
		resolved, err := resolveOutputDir(outputDir)
		if err != nil {
			return "", err
		}
		outputDir = resolved
	}
	files := make([]FileToConvert, len(inputs))
	for i, in := range inputs {
		files[i] = FileToConvert{InputPath: in.path, OutputPath: batchOutputPath(in, outputDir, ".pdf")}
	}
	if err := checkOutputCollisions(files); err != nil {
		return "", err
	}

	rep.info("Converting %d files...", len(files))
	results := convertBatch(ctx, pool, files, params)
	summary := printBatchResults(results, rep)

	first := ""
	for _, r := range results {
		if r.Err == nil {
			first = r.OutputPath
			break
		}
	}

	switch {
	case summary.Failed == 0:
		return first, nil
	case summary.Succeeded == 0:
		return first, fmt.Errorf("%w: all %d files failed: %w", ErrConversionFailed, summary.Failed, firstError(results))
	default:
		return first, fmt.Errorf("%w: %d of %d files failed", ErrConversionFailed, summary.Failed, len(results))
	}
}

// resolveOutputDir validates an explicit output directory.
func resolveOutputDir(dir string) (string, error) {
	resolved, err := fileutil.ResolveOutputPath(dir)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(resolved); err == nil && !info.IsDir() {
		return "", fmt.Errorf("%w: output %s exists and is not a directory", ErrUsage, dir)
	}
	return resolved, nil
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))
	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// No converter for this worker: the jobs it takes fail.
				for idx := range jobs {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	res, err := conv.Convert(ctx, md2pdf.Input{
		Markdown:  string(content),
		Title:     documentTitle(f.InputPath),
		CSS:       params.css,
		SourceDir: filepath.Dir(f.InputPath),
		HTMLOnly:  params.htmlOnly,
	})
	if err != nil {
		return fail(err)
	}

	written, err := writeOutputs(f.OutputPath, res, params)
	if err != nil {
		return fail(err)
	}
	result.OutputPath = written
	result.Duration = time.Since(start)
	return result
}

// writeOutputs writes the PDF, and the HTML when requested, and returns the
// path of the main output: the HTML file with --html-only, the PDF otherwise.
func writeOutputs(pdfPath string, res *md2pdf.ConvertResult, params *conversionParams) (string, error) {
	if err := os.MkdirAll(filepath.Dir(pdfPath), dirPermissions); err != nil {
		return "", fmt.Errorf("%w: creating output directory: %v", ErrWritePDF, err)
	}

	if params.htmlOnly || params.htmlOutput {
		htmlPath := htmlOutputPath(pdfPath)
		// #nosec G306 -- HTML files are meant to be readable
		if err := os.WriteFile(htmlPath, res.HTML, filePermissions); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
		if params.htmlOnly {
			return htmlPath, nil
		}
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(pdfPath, res.PDF, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return pdfPath, nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the error of the first failed result.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printBatchResults prints one line per file and the batch summary.
func printBatchResults(results []ConversionResult, rep *reporter) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		switch {
		case r.Err != nil:
			rep.fail("%s: %v", r.InputPath, r.Err)
		case rep.verbose:
			rep.ok("Converted %s to %s (%v)", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			rep.ok("Converted %s to %s", r.InputPath, r.OutputPath)
		}
	}

	printSummary(rep, "Batch Conversion Summary", "Successful", len(results), summary, results)
	return summary
}

// printSummary prints totals and the reason of every failure.
func printSummary(rep *reporter, title, successLabel string, total int, summary ResultSummary, results []ConversionResult) {
	rep.info("")
	rep.info("--- %s ---", title)
	rep.info("Total files: %d", total)
	rep.info("%s: %d", successLabel, summary.Succeeded)
	rep.info("Failed: %d", summary.Failed)

	if summary.Failed == 0 {
		return
	}
	rep.info("")
	rep.info("Failed files:")
	for _, r := range results {
		if r.Err != nil {
			rep.info("  - %s: %v", r.InputPath, r.Err)
		}
	}
}
