package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/md2pdf-themes/internal/hints"
	"github.com/alnah/md2pdf-themes/internal/style"
	"github.com/alnah/md2pdf-themes/internal/theme"
	"github.com/alnah/md2pdf-themes/internal/wizard"
)

// runThemeCmd dispatches the theme subcommands.
func runThemeCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseThemeFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) == 0 {
		printThemeUsage(env.Stderr)
		return fmt.Errorf("%w: missing theme subcommand", ErrUsage)
	}

	s, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	store := s.store()

	switch sub, rest := positional[0], positional[1:]; sub {
	case "list":
		return runThemeList(store, env)
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("%w: usage: md2pdf theme show <name>", ErrUsage)
		}
		return runThemeShow(store, rest[0], env)
	case "create":
		return runThemeCreate(ctx, store, env)
	default:
		printThemeUsage(env.Stderr)
		return fmt.Errorf("%w: unknown theme subcommand %q", ErrUsage, sub)
	}
}

// runThemeList prints every available theme, marking the built-in ones.
func runThemeList(store *theme.Store, env *Environment) error {
	entries, err := store.Entries()
	if err != nil {
		return err
	}

	s := style.New(env.Stdout)
	fmt.Fprintln(env.Stdout, s.Title("Available themes:"))
	for _, e := range entries {
		if e.Builtin {
			fmt.Fprintf(env.Stdout, "  %-20s %s\n", e.Name, s.Muted("(built-in)"))
		} else if theme.IsBuiltin(e.Name) {
			fmt.Fprintf(env.Stdout, "  %-20s %s\n", e.Name, s.Muted(e.Path+" (overrides built-in)"))
		} else {
			fmt.Fprintf(env.Stdout, "  %-20s %s\n", e.Name, s.Muted(e.Path))
		}
	}
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, s.Muted("User themes: "+store.Dir()))
	return nil
}

// runThemeShow prints the CSS of a theme.
func runThemeShow(store *theme.Store, name string, env *Environment) error {
	css, err := store.Load(name)
	if err != nil {
		return err
	}
	fmt.Fprint(env.Stdout, css)
	return nil
}

// runThemeCreate runs the interactive theme builder against store.
// Interrupting it or declining the final confirmation is not a failure.
func runThemeCreate(ctx context.Context, store *theme.Store, env *Environment) error {
	w := wizard.New(wizard.NewLinePrompter(env.Stdin, env.Stdout), store, env.Stdout, env.Stderr)

	_, err := w.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wizard.ErrCancelled), errors.Is(err, wizard.ErrDeclined):
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Theme creation cancelled.")
		return nil
	case errors.Is(err, theme.ErrThemeSave), errors.Is(err, theme.ErrThemeRead):
		return fmt.Errorf("%w%s", err, hints.ForThemesDir(store.Dir()))
	default:
		return fmt.Errorf("theme creation failed: %w", err)
	}
}
