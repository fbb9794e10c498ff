package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	themesDir string
	quiet     bool
	verbose   bool
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // Output HTML alongside PDF
	htmlOnly bool // Output HTML only, skip PDF
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	output      string
	theme       string
	css         string
	merge       bool
	noAutoBreak bool
	preview     bool
	workers     int
	timeout     string
	pageSize    string
	codeStyle   string
	outputMode  outputFlags
}

// themeFlags holds flags for the theme command and its subcommands.
type themeFlags struct {
	common commonFlags
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.themesDir, "themes-dir", "", "directory holding user themes")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// newConvertFlagSet registers the convert flags into f. Parsing and shell
// completion both read this set.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file (single, merge) or directory (batch)")
	fs.BoolVar(&f.merge, "merge", false, "merge all inputs into one PDF")
	fs.BoolVar(&f.noAutoBreak, "no-auto-break", false, "no page break between merged documents")
	fs.BoolVarP(&f.preview, "preview", "p", false, "open the PDF when done")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	// Styling
	fs.StringVar(&f.theme, "theme", "", "theme name (see 'md2pdf theme list')")
	fs.StringVar(&f.css, "css", "", "custom CSS file, overrides --theme")
	fs.StringVar(&f.pageSize, "page-size", "", "page size: a4, letter, legal")
	fs.StringVar(&f.codeStyle, "code-style", "", "syntax highlighting style")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.outputMode)
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func newThemeFlagSet(f *themeFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("theme", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	return fs
}

// parseThemeFlags parses flags for the theme subcommands.
func parseThemeFlags(args []string, usage io.Writer) (*themeFlags, []string, error) {
	f := &themeFlags{}
	fs := newThemeFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printThemeUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	addCommonFlags(fs, &f.common)
	return fs
}

// parseDoctorFlags parses flags for the doctor command.
func parseDoctorFlags(args []string, usage io.Writer) (*doctorFlags, error) {
	f := &doctorFlags{}
	fs := newDoctorFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printDoctorUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
