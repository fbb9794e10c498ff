// Package wizard runs the interactive theme builder.
//
// Each property is collected by a small state machine:
//
//	Prompting -> Validating -> Accepted
//	                  |
//	                  +-> ContrastWarned -> Accepted | Prompting
//
// A failed validation returns to Prompting for the same field. A contrast
// warning returns to Prompting only on an explicit "n"; any other answer
// keeps the value.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/md2pdf-themes/internal/color"
	"github.com/alnah/md2pdf-themes/internal/style"
	"github.com/alnah/md2pdf-themes/internal/theme"
)

// Store is where the finished theme is checked for collisions and saved.
type Store interface {
	theme.Lister
	Save(name, css string) (string, error)
}

// Result describes a theme created by a successful run.
type Result struct {
	Name       string
	Path       string
	Properties theme.Properties
}

// Wizard collects theme properties from an operator.
type Wizard struct {
	prompter Prompter
	store    Store
	out      io.Writer
	errOut   io.Writer
	outStyle style.Styles
	errStyle style.Styles
}

// New creates a Wizard. Status lines go to out, validation errors to errOut.
func New(p Prompter, store Store, out, errOut io.Writer) *Wizard {
	return &Wizard{
		prompter: p,
		store:    store,
		out:      out,
		errOut:   errOut,
		outStyle: style.New(out),
		errStyle: style.New(errOut),
	}
}

type fieldState int

const (
	statePrompting fieldState = iota
	stateValidating
	stateContrastWarned
	stateAccepted
)

// Run walks the operator through every property, shows a summary, asks for
// confirmation and saves the theme.
//
// Returns ErrCancelled on interrupt, ErrDeclined when the operator refuses
// the final confirmation, and errors wrapping theme.ErrThemeRead or
// theme.ErrThemeSave when the themes directory cannot be listed or written.
func (w *Wizard) Run(ctx context.Context) (Result, error) {
	w.header()

	var props theme.Properties
	name := field{
		label:    "Theme name",
		required: true,
		accepted: "Name available",
		validate: func(s string) error { return theme.ValidateName(s, w.store) },
		set:      func(p *theme.Properties, v string) { p.Name = v },
	}
	if err := w.collect(ctx, name, &props); err != nil {
		return Result{}, err
	}

	for _, f := range fields() {
		if err := w.collect(ctx, f, &props); err != nil {
			return Result{}, err
		}
	}

	w.summary(props)

	answer, err := w.prompt(ctx, "Create theme? [Y/n]: ")
	if err != nil {
		return Result{}, err
	}
	if !isAffirmative(answer) {
		return Result{}, ErrDeclined
	}

	fmt.Fprintf(w.out, "\nGenerating theme '%s'...\n", props.Name)
	css, err := theme.GenerateCSS(props)
	if err != nil {
		return Result{}, fmt.Errorf("generating theme: %w", err)
	}
	path, err := w.store.Save(props.Name, css)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintln(w.out, w.outStyle.OK("CSS file created: "+path))
	fmt.Fprintln(w.out, w.outStyle.OK("Theme ready to use!"))
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "Usage:")
	fmt.Fprintf(w.out, "  md2pdf convert document.md --theme %s\n", props.Name)
	fmt.Fprintf(w.out, "  md2pdf convert *.md --merge --theme %s -o book.pdf\n", props.Name)
	fmt.Fprintln(w.out)

	return Result{Name: props.Name, Path: path, Properties: props}, nil
}

func (w *Wizard) header() {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, w.outStyle.Title("md2pdf Interactive Theme Builder"))
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "Let's create a custom theme for your PDF documents.")
	fmt.Fprintln(w.out, "Press Enter to accept default values in [brackets].")
	fmt.Fprintln(w.out)
}

// collect runs the state machine for one field and stores the accepted value.
func (w *Wizard) collect(ctx context.Context, f field, props *theme.Properties) error {
	state := statePrompting
	var input, value string

	for state != stateAccepted {
		switch state {
		case statePrompting:
			line, err := w.prompt(ctx, promptText(f))
			if err != nil {
				return err
			}
			if line == "" {
				if f.required {
					fmt.Fprintln(w.errOut, w.errStyle.Fail("This field is required."))
					continue
				}
				line = f.def
			}
			input = line
			state = stateValidating

		case stateValidating:
			if err := f.validate(input); err != nil {
				// Only bad input is retried; a themes dir that cannot be
				// listed ends the run.
				if errors.Is(err, theme.ErrThemeRead) {
					return err
				}
				fmt.Fprintln(w.errOut, w.errStyle.Fail(err.Error()))
				state = statePrompting
				continue
			}
			value = input
			if f.normalize != nil {
				v, err := f.normalize(input)
				if err != nil {
					fmt.Fprintln(w.errOut, w.errStyle.Fail(err.Error()))
					state = statePrompting
					continue
				}
				value = v
			}
			if f.accepted == "" {
				fmt.Fprintln(w.out, w.outStyle.OK("Using: "+value))
			}
			state = stateAccepted
			if f.contrast != "" {
				passes, err := w.reportContrast(f.contrast, value, props.BackgroundColor)
				if err != nil {
					return err
				}
				if !passes {
					state = stateContrastWarned
				}
			}

		case stateContrastWarned:
			answer, err := w.prompt(ctx, "  Continue with current color anyway? [Y/n]: ")
			if err != nil {
				return err
			}
			if isNegative(answer) {
				state = statePrompting
			} else {
				state = stateAccepted
			}
		}
	}

	if f.accepted != "" {
		fmt.Fprintln(w.out, w.outStyle.OK(f.accepted))
	}
	f.set(props, value)
	fmt.Fprintln(w.out)
	return nil
}

// reportContrast prints the ratio of fg against bg and, below WCAG AA,
// a warning with a suggested replacement. It reports whether fg passes.
func (w *Wizard) reportContrast(element, fg, bg string) (bool, error) {
	ratio, err := color.ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	if color.MeetsAA(ratio) {
		fmt.Fprintln(w.out, w.outStyle.OK(fmt.Sprintf("Contrast ratio: %.1f:1 (%s)", ratio, color.Rating(ratio))))
		return true, nil
	}

	fmt.Fprintln(w.out, w.outStyle.Warn(fmt.Sprintf("Contrast ratio: %.1f:1 (%s)", ratio, color.Rating(ratio))))
	fmt.Fprintln(w.out, w.outStyle.Warn(fmt.Sprintf("Warning: %s contrast is below WCAG AA standard (%.1f:1)", element, color.WCAGAA)))

	suggestion, err := color.SuggestAccessible(fg, bg, color.WCAGAA)
	if err != nil {
		return false, err
	}
	suggested, err := color.ContrastRatio(suggestion, bg)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w.out, "  Suggestion: Try %s for %.1f:1 ratio (%s)\n", suggestion, suggested, color.Rating(suggested))
	return false, nil
}

func (w *Wizard) summary(p theme.Properties) {
	fmt.Fprintln(w.out, strings.Repeat("─", 48))
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, w.outStyle.Title("Theme Summary:"))
	fmt.Fprintf(w.out, "  • Name: %s\n", p.Name)
	fmt.Fprintf(w.out, "  • Background: %s\n", p.BackgroundColor)
	fmt.Fprintf(w.out, "  • Text: %s, %s, %s\n", p.TextColor, p.FontFamily, p.BodyTextSize)
	fmt.Fprintf(w.out, "  • H1: %s\n", p.H1Color)
	fmt.Fprintf(w.out, "  • H2-H6: %s\n", p.HeadingColor)
	fmt.Fprintf(w.out, "  • Accent: %s\n", p.AccentColor)
	fmt.Fprintf(w.out, "  • Code background: %s\n", p.CodeBackground)
	fmt.Fprintf(w.out, "  • Table header: %s\n", p.TableHeaderBackground)

	if allAccessible(p) {
		fmt.Fprintln(w.out, "  • All contrast ratios meet WCAG AA standards "+style.MarkOK)
	} else {
		fmt.Fprintln(w.out, "  • "+w.outStyle.Warn("Some contrast ratios are below WCAG AA"))
	}
	fmt.Fprintln(w.out)
}

// allAccessible reports whether every checked foreground meets WCAG AA.
func allAccessible(p theme.Properties) bool {
	for _, pair := range p.ContrastPairs() {
		ratio, err := color.ContrastRatio(pair.Foreground, p.BackgroundColor)
		if err != nil || !color.MeetsAA(ratio) {
			return false
		}
	}
	return true
}

// prompt asks one question and maps an interrupted context to ErrCancelled.
func (w *Wizard) prompt(ctx context.Context, text string) (string, error) {
	line, err := w.prompter.Prompt(ctx, text)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptText(f field) string {
	if f.def == "" {
		return f.label + ": "
	}
	return fmt.Sprintf("%s [%s]: ", f.label, f.def)
}

func isNegative(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "n" || a == "no"
}

func isAffirmative(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "" || a == "y" || a == "yes"
}
