// Package style renders the status markers printed by the CLI and wizard.
//
// Styles are bound to the writer they print to, so output redirected to a
// file or pipe carries no escape sequences.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Markers prefixed to status lines.
const (
	MarkOK   = "✓"
	MarkFail = "✗"
	MarkWarn = "⚠"
)

// Palette uses the 16-color ANSI range so it follows the terminal theme.
var (
	colorSuccess = lipgloss.Color("10")
	colorError   = lipgloss.Color("9")
	colorWarning = lipgloss.Color("11")
	colorMuted   = lipgloss.Color("8")
	colorTitle   = lipgloss.Color("13")
)

// Styles holds the styles for one output stream.
type Styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
	title   lipgloss.Style
}

// New returns styles that render for w.
func New(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError),
		warning: r.NewStyle().Foreground(colorWarning),
		muted:   r.NewStyle().Foreground(colorMuted),
		title:   r.NewStyle().Foreground(colorTitle).Bold(true),
	}
}

// OK returns msg prefixed with a success marker.
func (s Styles) OK(msg string) string {
	return s.success.Render(MarkOK + " " + msg)
}

// Fail returns msg prefixed with a failure marker.
func (s Styles) Fail(msg string) string {
	return s.failure.Render(MarkFail + " " + msg)
}

// Warn returns msg prefixed with a warning marker.
func (s Styles) Warn(msg string) string {
	return s.warning.Render(MarkWarn + " " + msg)
}

// Muted renders secondary text.
func (s Styles) Muted(msg string) string {
	return s.muted.Render(msg)
}

// Title renders a heading line.
func (s Styles) Title(msg string) string {
	return s.title.Render(msg)
}
