package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	md2pdf "github.com/alnah/md2pdf-themes"
	"github.com/alnah/md2pdf-themes/internal/config"
	"github.com/alnah/md2pdf-themes/internal/fileutil"
	"github.com/alnah/md2pdf-themes/internal/pipeline"
	"github.com/alnah/md2pdf-themes/internal/theme"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWritePDF         = errors.New("failed to write PDF file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrConversionFailed = errors.New("conversion failed")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// convertMode selects how inputs map to outputs.
type convertMode int

const (
	modeSingle convertMode = iota // one input, one PDF
	modeBatch                     // one PDF per input
	modeMerge                     // all inputs in one PDF
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	css        string
	autoBreak  bool // page breaks between merged sections
	htmlOnly   bool // Output HTML only, skip PDF
	htmlOutput bool // Output HTML alongside PDF
}

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, env *Environment) error {
	rep := newReporter(env, flags.common)

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: usage: md2pdf convert <input>... [flags]", ErrNoInput)
	}

	s, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	if err := applyConvertFlags(flags, s.cfg); err != nil {
		return err
	}
	timeout, err := s.cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	inputs, err := expandInputs(positional)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, strings.Join(positional, ", "))
	}
	for _, in := range inputs {
		if !hasInputExtension(in.path) {
			rep.warn("%s does not look like Markdown (expected .md, .markdown or .txt)", in.path)
		}
	}

	// Resolved once for every file.
	css, err := resolveStylesheet(flags, s, rep)
	if err != nil {
		return err
	}
	params := &conversionParams{
		css:        css,
		autoBreak:  !flags.noAutoBreak,
		htmlOnly:   flags.outputMode.htmlOnly,
		htmlOutput: flags.outputMode.html,
	}

	mode := selectMode(flags.merge, inputs)
	size := 1
	if mode == modeBatch {
		size = min(md2pdf.ResolvePoolSize(s.cfg.Workers), len(inputs))
	}
	rep.debug("Pool size: %d", size)

	pool := env.NewPool(size, converterOptions(s.cfg, timeout)...)
	defer func() {
		if err := pool.Close(); err != nil {
			rep.debug("closing browsers: %v", err)
		}
	}()

	var preview string
	switch mode {
	case modeMerge:
		preview, err = runMerge(ctx, pool, inputs, flags.output, params, rep)
	case modeSingle:
		preview, err = runSingle(ctx, pool, inputs[0], flags.output, params, rep)
	default:
		outputDir := flags.output
		if outputDir == "" {
			outputDir = s.cfg.Output.Dir
		}
		preview, err = runBatch(ctx, pool, inputs, outputDir, params, rep)
	}

	if s.cfg.Preview && preview != "" {
		rep.info("Opening %s", preview)
		if perr := env.OpenViewer(ctx, preview); perr != nil {
			rep.warn("could not open preview: %v", perr)
		}
	}
	return err
}

// applyConvertFlags overrides config values with explicit flags.
func applyConvertFlags(f *convertFlags, cfg *config.Config) error {
	if f.timeout != "" {
		d, err := time.ParseDuration(f.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: --timeout %q must be a positive duration (e.g., 30s, 2m)", ErrUsage, f.timeout)
		}
		cfg.Timeout = f.timeout
	}
	if f.pageSize != "" {
		if err := md2pdf.ValidatePageSize(f.pageSize); err != nil {
			return fmt.Errorf("--page-size: %w", err)
		}
		cfg.Page.Size = f.pageSize
	}
	if f.codeStyle != "" {
		if _, err := pipeline.CodeStyleCSS(f.codeStyle); err != nil {
			return fmt.Errorf("--code-style: %w", err)
		}
		cfg.Code.Style = f.codeStyle
	}
	if f.theme != "" {
		if err := theme.ValidateName(f.theme, nil); err != nil {
			return fmt.Errorf("--theme: %w", err)
		}
		cfg.Themes.Default = f.theme
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
	if f.preview {
		cfg.Preview = true
	}
	return nil
}

// converterOptions builds the md2pdf options shared by every converter.
func converterOptions(cfg *config.Config, timeout time.Duration) []md2pdf.Option {
	opts := []md2pdf.Option{
		md2pdf.WithTimeout(timeout),
		md2pdf.WithCodeStyle(cfg.Code.Style),
	}
	if cfg.Page.Size != "" {
		opts = append(opts, md2pdf.WithPageSize(cfg.Page.Size))
	}
	return opts
}

// resolveStylesheet returns the CSS applied to every document: the --css
// file when given, otherwise the selected theme.
func resolveStylesheet(f *convertFlags, s *settings, rep *reporter) (string, error) {
	if f.css != "" {
		if f.theme != "" {
			rep.warn("--css overrides --theme %s", f.theme)
		}
		if !theme.HasCSSExtension(f.css) {
			rep.warn("%s does not have a .css extension", f.css)
		}
		css, err := theme.LoadCSSFile(f.css)
		if err != nil {
			return "", err
		}
		rep.debug("Stylesheet: %s", f.css)
		return css, nil
	}

	name := s.cfg.Themes.Default
	if name == "" {
		name = theme.DefaultTheme
	}
	css, err := s.store().Load(name)
	if err != nil {
		return "", err
	}
	rep.debug("Theme: %s (themes directory: %s)", name, s.themesDir)
	return css, nil
}

// selectMode picks the conversion mode. A single file argument converts to
// a single output; a directory argument always runs in batch mode.
func selectMode(merge bool, inputs []inputFile) convertMode {
	switch {
	case merge:
		return modeMerge
	case len(inputs) == 1 && inputs[0].baseDir == "":
		return modeSingle
	default:
		return modeBatch
	}
}

// runSingle converts one file and returns the written path.
func runSingle(ctx context.Context, pool Pool, in inputFile, output string, params *conversionParams, rep *reporter) (string, error) {
	target, err := singleOutputPath(in.path, output)
	if err != nil {
		return "", err
	}

	conv, err := pool.Acquire()
	if err != nil {
		return "", err
	}
	defer pool.Release(conv)

	result := convertFile(ctx, conv, FileToConvert{InputPath: in.path, OutputPath: target}, params)
	if result.Err != nil {
		return "", result.Err
	}

	if rep.verbose {
		rep.ok("Converted %s to %s (%v)", result.InputPath, result.OutputPath, result.Duration.Round(time.Millisecond))
	} else {
		rep.ok("Converted %s to %s", result.InputPath, result.OutputPath)
	}
	return result.OutputPath, nil
}

// singleOutputPath determines the PDF path of a single conversion: beside
// the input by default, inside output when it is a directory, output otherwise.
func singleOutputPath(input, output string) (string, error) {
	target := fileutil.ReplaceExtension(input, ".pdf")
	if output != "" {
		target = output
		if isDirTarget(output) {
			target = filepath.Join(output, fileutil.ReplaceExtension(filepath.Base(input), ".pdf"))
		}
		resolved, err := fileutil.ResolveOutputPath(target)
		if err != nil {
			return "", err
		}
		target = resolved
	}

	if err := fileutil.CheckOutputPath(target, []string{input}); err != nil {
		return "", err
	}
	return target, nil
}

// documentTitle is the <title> of a converted file: its name without extension.
func documentTitle(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
