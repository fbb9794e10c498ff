package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	md2pdf "github.com/alnah/md2pdf-themes"
	"github.com/alnah/md2pdf-themes/internal/config"
	"github.com/alnah/md2pdf-themes/internal/process"
	"github.com/alnah/md2pdf-themes/internal/style"
)

// Environment variables read by the CLI besides those handled by config.
const (
	envConfig    = "MD2PDF_CONFIG"
	envContainer = "MD2PDF_CONTAINER"
	envPrefix    = "MD2PDF_"
)

// knownEnvVars lists valid MD2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfig:           true,
	envContainer:        true,
	config.EnvThemesDir: true,
	config.EnvTimeout:   true,
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
	Getenv  func(string) string
	Environ func() []string

	// NewPool creates the converter pool used by convert.
	NewPool func(size int, opts ...md2pdf.Option) Pool
	// OpenViewer shows a generated file to the user.
	OpenViewer func(ctx context.Context, path string) error
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewPool: func(size int, opts ...md2pdf.Option) Pool {
			return newConverterPool(md2pdf.NewConverterPool(size, opts...))
		},
		OpenViewer: func(ctx context.Context, path string) error {
			return process.Open(ctx, path, process.DefaultOpenTimeout)
		},
	}
}

// unknownEnvVars returns the MD2PDF_* variables that md2pdf does not read.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, envPrefix) && !knownEnvVars[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// warnUnknownEnvVars prints a warning per unknown MD2PDF_* variable.
func warnUnknownEnvVars(env *Environment) {
	if env.Environ == nil {
		return
	}
	s := style.New(env.Stderr)
	for _, key := range unknownEnvVars(env.Environ()) {
		fmt.Fprintln(env.Stderr, s.Warn(fmt.Sprintf("unknown environment variable %s (ignored)", key)))
	}
}
