package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/md2pdf-themes/internal/config"
	"github.com/alnah/md2pdf-themes/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNotRegularFile     = errors.New("not a regular file")
)

// inputExtensions are accepted without a warning. Other files are still
// converted when named explicitly.
var inputExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// inputFile is a Markdown file named on the command line or found under a
// directory named on the command line.
type inputFile struct {
	path    string
	baseDir string // directory argument it was found under, "" for a file argument
}

// expandInputs resolves positional arguments into input files. A directory
// contributes its .md and .markdown files in lexical order, recursively.
func expandInputs(args []string) ([]inputFile, error) {
	var files []inputFile
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", arg, err)
		}

		if !info.IsDir() {
			if !info.Mode().IsRegular() {
				return nil, fmt.Errorf("input %s: %w", arg, ErrNotRegularFile)
			}
			files = append(files, inputFile{path: arg})
			continue
		}

		found, err := discoverMarkdown(arg)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

// discoverMarkdown walks dir for Markdown files.
func discoverMarkdown(dir string) ([]inputFile, error) {
	var files []inputFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		files = append(files, inputFile{path: path, baseDir: dir})
		return nil
	})
	return files, err
}

// hasInputExtension reports whether path has a Markdown or text extension.
func hasInputExtension(path string) bool {
	return inputExtensions[strings.ToLower(filepath.Ext(path))]
}

// batchOutputPath determines the output path of one file in batch mode.
// Without an output directory the file lands beside its input. With one,
// files found under a directory argument keep their relative layout.
func batchOutputPath(in inputFile, outputDir, ext string) string {
	name := fileutil.ReplaceExtension(filepath.Base(in.path), ext)
	if outputDir == "" {
		return filepath.Join(filepath.Dir(in.path), name)
	}

	if in.baseDir != "" {
		if rel, err := filepath.Rel(in.baseDir, filepath.Dir(in.path)); err == nil {
			return filepath.Join(outputDir, rel, name)
		}
	}
	return filepath.Join(outputDir, name)
}

// checkOutputCollisions fails when two inputs map to the same output file,
// such as a/x.md and b/x.md sent to one output directory.
func checkOutputCollisions(files []FileToConvert) error {
	seen := make(map[string]string, len(files))
	for _, f := range files {
		out := filepath.Clean(f.OutputPath)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%w: %s and %s would both write %s", ErrUsage, prev, f.InputPath, out)
		}
		seen[out] = f.InputPath
	}
	return nil
}

// isDirTarget reports whether an explicit output names a directory: an
// existing one, or a path ending in a separator.
func isDirTarget(output string) bool {
	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(output)
	return err == nil && info.IsDir()
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// htmlOutputPath returns the HTML path corresponding to a PDF path.
func htmlOutputPath(pdfPath string) string {
	return fileutil.ReplaceExtension(pdfPath, ".html")
}
