package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter is the wizard's console port: it shows a prompt and returns the
// next line of input with surrounding whitespace removed.
type Prompter interface {
	Prompt(ctx context.Context, text string) (string, error)
}

// LinePrompter reads answers line by line from a stream.
// A single reader goroutine feeds every Prompt call, so a prompt abandoned
// on cancellation never races with the next one.
type LinePrompter struct {
	out io.Writer
	in  io.Reader

	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLinePrompter creates a LinePrompter that writes prompts to out and
// reads answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: in, out: out}
}

// Prompt writes text and blocks until a line arrives or ctx is done.
// End of input before any answer returns ErrInputClosed.
func (p *LinePrompter) Prompt(ctx context.Context, text string) (string, error) {
	p.once.Do(p.start)

	if _, err := io.WriteString(p.out, text); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	case r, ok := <-p.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if r.err != nil {
			return "", r.err
		}
		return r.line, nil
	}
}

func (p *LinePrompter) start() {
	p.lines = make(chan lineResult)
	go func() {
		defer close(p.lines)
		reader := bufio.NewReader(p.in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" || err == nil {
				p.lines <- lineResult{line: strings.TrimSpace(line)}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					p.lines <- lineResult{err: fmt.Errorf("reading input: %w", err)}
				}
				return
			}
		}
	}()
}
