package main

import (
	"fmt"
	"io"

	"github.com/alnah/md2pdf-themes/internal/style"
)

// reporter prints status lines for a command, honoring --quiet and --verbose.
// Progress goes to stdout; warnings, failures and verbose details to stderr.
type reporter struct {
	out      io.Writer
	errOut   io.Writer
	outStyle style.Styles
	errStyle style.Styles
	quiet    bool
	verbose  bool
}

func newReporter(env *Environment, f commonFlags) *reporter {
	return &reporter{
		out:      env.Stdout,
		errOut:   env.Stderr,
		outStyle: style.New(env.Stdout),
		errStyle: style.New(env.Stderr),
		quiet:    f.quiet,
		verbose:  f.verbose && !f.quiet,
	}
}

// ok prints a success line.
func (r *reporter) ok(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.out, r.outStyle.OK(fmt.Sprintf(format, args...)))
}

// info prints a plain progress line.
func (r *reporter) info(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}

// warn prints a warning. Quiet mode hides it.
func (r *reporter) warn(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.errOut, r.errStyle.Warn(fmt.Sprintf(format, args...)))
}

// fail prints a failure line, even in quiet mode.
func (r *reporter) fail(format string, args ...any) {
	fmt.Fprintln(r.errOut, r.errStyle.Fail(fmt.Sprintf(format, args...)))
}

// debug prints a detail line in verbose mode.
func (r *reporter) debug(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.errOut, r.errStyle.Muted(fmt.Sprintf(format, args...)))
}
