package main

import (
	"context"
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	md2pdf "github.com/alnah/md2pdf-themes"
	"github.com/alnah/md2pdf-themes/internal/config"
	"github.com/alnah/md2pdf-themes/internal/fileutil"
	"github.com/alnah/md2pdf-themes/internal/hints"
	"github.com/alnah/md2pdf-themes/internal/pipeline"
	"github.com/alnah/md2pdf-themes/internal/theme"
	"github.com/alnah/md2pdf-themes/internal/wizard"
)

// Exit codes for md2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion, or theme creation cancelled by the user
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, theme not saved
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || isUserExit(err) {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, md2pdf.ErrBrowserConnect) ||
		errors.Is(err, md2pdf.ErrPageCreate) ||
		errors.Is(err, md2pdf.ErrPageLoad) ||
		errors.Is(err, md2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, md2pdf.ErrEmptyMarkdown) ||
		errors.Is(err, md2pdf.ErrInvalidPageSize) ||
		errors.Is(err, pipeline.ErrUnknownCodeStyle) ||
		errors.Is(err, theme.ErrThemeNotFound) ||
		errors.Is(err, theme.ErrInvalidName) ||
		errors.Is(err, fileutil.ErrUnsafeOutputPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNotRegularFile) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, theme.ErrThemeRead) ||
		errors.Is(err, theme.ErrThemeSave) ||
		errors.Is(err, theme.ErrCSSNotFound) {
		return ExitIO
	}

	return ExitGeneral
}

// isUserExit reports whether err ends the run without a failure:
// help was requested or the user stopped the theme wizard.
func isUserExit(err error) bool {
	return errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, wizard.ErrCancelled) ||
		errors.Is(err, wizard.ErrDeclined)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var notFound *theme.NotFoundError
	switch {
	case errors.Is(err, md2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.As(err, &notFound):
		return hints.ForThemeNotFound(notFound.Available)
	case errors.Is(err, fileutil.ErrUnsafeOutputPath):
		return hints.ForOutputPath()
	}
	return ""
}
