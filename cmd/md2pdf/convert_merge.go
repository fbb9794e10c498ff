package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2pdf "github.com/alnah/md2pdf-themes"
	"github.com/alnah/md2pdf-themes/internal/fileutil"
)

// Merge defaults.
const (
	defaultMergeOutput = "merged_output.pdf"
	mergedTitle        = "Merged Document"
)

// runMerge renders every readable input as a section of one PDF. Files that
// cannot be read are reported and skipped; the merge fails only when none
// is left.
func runMerge(ctx context.Context, pool Pool, inputs []inputFile, output string, params *conversionParams, rep *reporter) (string, error) {
	if len(inputs) < 2 {
		rep.warn("merge mode expects at least 2 files; use single file mode for one file")
	}

	target, err := mergeOutputPath(output, inputs)
	if err != nil {
		return "", err
	}

	rep.info("Merging %d files into a single PDF...", len(inputs))
	sections, results := readSections(inputs, rep)
	summary := countResults(results)
	if len(sections) == 0 {
		return "", fmt.Errorf("%w: no files were successfully processed: %w", ErrConversionFailed, firstError(results))
	}

	conv, err := pool.Acquire()
	if err != nil {
		return "", err
	}
	defer pool.Release(conv)

	res, err := conv.ConvertSections(ctx, sections, md2pdf.MergeOptions{
		Title:     mergedTitle,
		AutoBreak: params.autoBreak,
		HTMLOnly:  params.htmlOnly,
	}, params.css)
	if err != nil {
		return "", err
	}

	written, err := writeOutputs(target, res, params)
	if err != nil {
		return "", err
	}

	printSummary(rep, "Merge Summary", "Successfully merged", len(inputs), summary, results)
	rep.info("")
	rep.ok("Merged PDF created: %s", written)
	return written, nil
}

// readSections reads every input into a section. The results hold one
// entry per input, failed or not, in input order.
func readSections(inputs []inputFile, rep *reporter) ([]md2pdf.Section, []ConversionResult) {
	sections := make([]md2pdf.Section, 0, len(inputs))
	results := make([]ConversionResult, 0, len(inputs))

	for _, in := range inputs {
		content, err := os.ReadFile(in.path) // #nosec G304 -- discovered path
		switch {
		case err != nil:
			err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		case strings.TrimSpace(string(content)) == "":
			err = md2pdf.ErrEmptyMarkdown
		}
		if err != nil {
			rep.fail("%s: %v", in.path, err)
			results = append(results, ConversionResult{InputPath: in.path, Err: err})
			continue
		}

		sections = append(sections, md2pdf.Section{
			Name:      filepath.Base(in.path),
			Markdown:  string(content),
			SourceDir: filepath.Dir(in.path),
		})
		results = append(results, ConversionResult{InputPath: in.path})
		rep.ok("Processed %s", in.path)
	}
	return sections, results
}

// mergeOutputPath determines the merged PDF path: merged_output.pdf in the
// working directory by default, inside output when it is a directory.
func mergeOutputPath(output string, inputs []inputFile) (string, error) {
	target := defaultMergeOutput
	if output != "" {
		target = output
		if isDirTarget(output) {
			target = filepath.Join(output, defaultMergeOutput)
		}
	}

	resolved, err := fileutil.ResolveOutputPath(target)
	if err != nil {
		return "", err
	}

	paths := make([]string, len(inputs))
	for i, in := range inputs {
		paths[i] = in.path
	}
	if err := fileutil.CheckOutputPath(resolved, paths); err != nil {
		return "", err
	}
	return resolved, nil
}
