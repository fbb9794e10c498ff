// Package process starts and stops helper processes: the system viewer used
// for previews, and browser process trees left behind on shutdown.
package process

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// ErrViewerTimeout indicates the viewer did not return in time and was killed.
var ErrViewerTimeout = errors.New("viewer did not exit in time")

// DefaultOpenTimeout bounds how long Open waits for the viewer command.
const DefaultOpenTimeout = 10 * time.Second

// ViewerCommand returns the command that opens path with the desktop's
// default application on goos.
func ViewerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open runs the platform viewer for path and waits up to timeout for the
// launcher to exit. On timeout the viewer's process group is killed.
func Open(ctx context.Context, path string, timeout time.Duration) error {
	name, args := ViewerCommand(runtime.GOOS, path)
	return run(ctx, timeout, name, args...)
}

// run starts name in its own process group and waits for it.
func run(ctx context.Context, timeout time.Duration, name string, args ...string) error {
	if timeout <= 0 {
		timeout = DefaultOpenTimeout
	}

	cmd := exec.Command(name, args...) // #nosec G204 -- fixed viewer binaries
	newGroup(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	case <-timer.C:
		KillProcessGroup(cmd.Process.Pid)
		<-done
		return fmt.Errorf("%w: %s after %v", ErrViewerTimeout, name, timeout)
	case <-ctx.Done():
		KillProcessGroup(cmd.Process.Pid)
		<-done
		return ctx.Err()
	}
}
