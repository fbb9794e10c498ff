// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrUnsafeOutputPath       = errors.New("unsafe output path")
)

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "md2pdf-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// WriteFileAtomic writes data to a temp file next to path and renames it
// into place, so path holds either the old content or the new content.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	fail := func(step string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%s: %w", step, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("writing temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail("setting permissions", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "dark" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "C:\themes\x.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ReplaceExtension returns path with its extension swapped for ext.
// ext includes the leading dot.
func ReplaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// ResolveOutputPath validates an explicit output path and returns it as an
// absolute path. A ".." component is refused, and a relative path must stay
// inside the working directory once symlinks are resolved. Absolute paths
// may point anywhere.
func ResolveOutputPath(output string) (string, error) {
	if output == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsafeOutputPath)
	}
	for _, part := range strings.FieldsFunc(output, isSeparator) {
		if part == ".." {
			return "", fmt.Errorf("%w: '%s': path traversal (..) is not allowed", ErrUnsafeOutputPath, output)
		}
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("%w: '%s': %v", ErrUnsafeOutputPath, output, err)
	}
	if filepath.IsAbs(output) {
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsafeOutputPath, err)
	}
	if !within(canonical(abs), canonical(cwd)) {
		return "", fmt.Errorf("%w: '%s' resolves outside the current directory, use an absolute path to write elsewhere",
			ErrUnsafeOutputPath, output)
	}
	return abs, nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// within reports whether path equals dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// CheckOutputPath refuses an output path that is a directory or that
// resolves to one of the inputs.
func CheckOutputPath(output string, inputs []string) error {
	if output == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafeOutputPath)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnsafeOutputPath, output)
	}

	out := canonical(output)
	for _, in := range inputs {
		if canonical(in) == out {
			return fmt.Errorf("%w: %s would overwrite its own input", ErrUnsafeOutputPath, output)
		}
	}
	return nil
}

// canonical returns an absolute path with symlinks resolved in its longest
// existing prefix.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	rest := ""
	for dir := abs; ; {
		if real, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(real, rest)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs
		}
		rest = filepath.Join(filepath.Base(dir), rest)
		dir = parent
	}
}
