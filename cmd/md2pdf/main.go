package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/md2pdf-themes/internal/style"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()
	args := os.Args[1:]

	setMaxProcs(env.Stderr, hasVerboseFlag(args))

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, args, env)
	stop()
	os.Exit(code)
}

// setMaxProcs configures GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func setMaxProcs(w io.Writer, verbose bool) {
	logger := func(string, ...any) {}
	if verbose {
		logger = func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}

// hasVerboseFlag reports whether -v or --verbose appears before any "--".
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}

// run dispatches the command line and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	warnUnknownEnvVars(env)

	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "convert":
		return handleError(runConvertCmd(ctx, rest, env), env)
	case "theme":
		return handleError(runThemeCmd(ctx, rest, env), env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		return handleError(runCompletion(rest, env), env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2pdf %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		printUsage(env.Stderr)
		return handleError(fmt.Errorf("%w: unknown command %q", ErrUsage, cmd), env)
	}
}

// handleError prints err with its hint and maps it to an exit code.
func handleError(err error, env *Environment) int {
	if err == nil || isUserExit(err) {
		return ExitSuccess
	}
	s := style.New(env.Stderr)
	fmt.Fprintln(env.Stderr, s.Fail("error: "+err.Error()+hintFor(err)))
	return exitCodeFor(err)
}
