package wizard

// Notes:
// - The wizard is driven through a scripted Prompter; prompts are recorded so
//   tests can assert which field was asked and how often.
// - The default accent color (#667eea) is below WCAG AA on white, so every
//   all-defaults script carries one answer for its override prompt.

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/md2pdf-themes/internal/theme"
)

type scriptedPrompter struct {
	answers []string
	prompts []string

	cancelAt int // cancel when this many prompts were shown; 0 disables
	cancel   context.CancelFunc
}

func (s *scriptedPrompter) Prompt(ctx context.Context, text string) (string, error) {
	s.prompts = append(s.prompts, text)
	if s.cancelAt > 0 && len(s.prompts) == s.cancelAt {
		s.cancel()
		return "", ctx.Err()
	}
	if len(s.answers) == 0 {
		return "", ErrInputClosed
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scriptedPrompter) count(prefix string) int {
	n := 0
	for _, p := range s.prompts {
		if strings.HasPrefix(p, prefix) {
			n++
		}
	}
	return n
}

type memStore struct {
	names   []string
	saved   map[string]string
	listErr error
	saveErr error
}

func newMemStore(names ...string) *memStore {
	return &memStore{names: names, saved: make(map[string]string)}
}

func (m *memStore) List() ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.names, nil
}

func (m *memStore) Save(name, css string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.saved[name] = css
	return "/themes/" + name + ".css", nil
}

// defaults answers every prompt after the name with Enter, accepting the
// accent color override and the final confirmation.
func defaults(name string) []string {
	return []string{
		name,
		"", // background
		"", // text
		"", // font family
		"", // size
		"", // h1
		"", // h2-h6
		"", // accent
		"", // accept accent override
		"", // code background
		"", // table header
		"", // create theme
	}
}

func run(t *testing.T, p Prompter, store Store) (Result, string, error) {
	t.Helper()
	var out bytes.Buffer
	res, err := New(p, store, &out, &out).Run(context.Background())
	return res, out.String(), err
}

// ---------------------------------------------------------------------------
// TestRun - Happy paths
// ---------------------------------------------------------------------------

func TestRun_AllDefaults(t *testing.T) {
	t.Parallel()

	store := newMemStore("default", "dark", "minimal")
	p := &scriptedPrompter{answers: defaults("ocean")}

	res, out, err := run(t, p, store)
	if err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out)
	}

	want := theme.DefaultProperties("ocean")
	if res.Properties != want {
		t.Errorf("Properties = %+v, want %+v", res.Properties, want)
	}
	if res.Path != "/themes/ocean.css" {
		t.Errorf("Path = %q", res.Path)
	}

	css, ok := store.saved["ocean"]
	if !ok {
		t.Fatal("theme was not saved")
	}
	expected, err := theme.GenerateCSS(want)
	if err != nil {
		t.Fatalf("GenerateCSS: %v", err)
	}
	if css != expected {
		t.Error("saved CSS differs from GenerateCSS output")
	}

	for _, w := range []string{
		"✓ Name available",
		"✓ Using: #ffffff",
		"✓ Using: Arial, sans-serif",
		"✓ Using: 11pt",
		"✓ Contrast ratio: 21.0:1 (Excellent - WCAG AAA)",
		"⚠ Warning: Link contrast is below WCAG AA standard (4.5:1)",
		"Suggestion: Try #",
		"Theme Summary:",
		"• Text: #000000, Arial, sans-serif, 11pt",
		"⚠ Some contrast ratios are below WCAG AA",
		"✓ CSS file created: /themes/ocean.css",
		"md2pdf convert document.md --theme ocean",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q", w)
		}
	}
}

func TestRun_PromptOrderAndDefaults(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: defaults("ocean")}
	if _, out, err := run(t, p, newMemStore()); err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out)
	}

	want := []string{
		"Theme name: ",
		"Background color [#ffffff]: ",
		"Text color [#000000]: ",
		"Font family [Arial, sans-serif]: ",
		"Body text size [11pt]: ",
		"H1 heading color [#2c3e50]: ",
		"H2-H6 heading color [#2c3e50]: ",
		"Accent color (links, borders) [#667eea]: ",
		"  Continue with current color anyway? [Y/n]: ",
		"Code block background [#f5f5f5]: ",
		"Table header background [#667eea]: ",
		"Create theme? [Y/n]: ",
	}
	if len(p.prompts) != len(want) {
		t.Fatalf("got %d prompts, want %d: %q", len(p.prompts), len(want), p.prompts)
	}
	for i := range want {
		if p.prompts[i] != want[i] {
			t.Errorf("prompt %d = %q, want %q", i, p.prompts[i], want[i])
		}
	}
}

func TestRun_NormalizesInput(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: []string{
		"named",
		"white",
		"black",
		"Georgia, serif",
		"12",
		"navy",
		"hsl(0, 0%, 20%)",
		"#00f",
		"#f5f5f5",
		"teal",
		"y",
	}}
	res, out, err := run(t, p, newMemStore())
	if err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out)
	}

	got := res.Properties
	checks := map[string][2]string{
		"background": {got.BackgroundColor, "#ffffff"},
		"text":       {got.TextColor, "#000000"},
		"size":       {got.BodyTextSize, "12pt"},
		"h1":         {got.H1Color, "#000080"},
		"heading":    {got.HeadingColor, "#333333"},
		"accent":     {got.AccentColor, "#0000ff"},
		"table":      {got.TableHeaderBackground, "#008080"},
		"font":       {got.FontFamily, "Georgia, serif"},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", name, c[0], c[1])
		}
	}
	if !strings.Contains(out, "All contrast ratios meet WCAG AA standards ✓") {
		t.Error("summary should report all contrast ratios passing")
	}
}

// ---------------------------------------------------------------------------
// TestRun_Contrast - Override confirmation
// ---------------------------------------------------------------------------

func TestRun_ContrastDeclineReprompts(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: []string{
		"ocean",
		"#ffffff",
		"#cccccc", // fails AA on white
		"n",       // do not keep it
		"#333333", // passes
		"", "", "", "",
		"#2c3e50", // accent passes
		"", "", "",
	}}
	res, out, err := run(t, p, newMemStore())
	if err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out)
	}

	if n := p.count("Text color"); n != 2 {
		t.Errorf("text color prompted %d times, want 2", n)
	}
	if p.prompts[4] != "Text color [#000000]: " {
		t.Errorf("prompt after 'n' = %q, want the text color prompt again", p.prompts[4])
	}
	if res.Properties.TextColor != "#333333" {
		t.Errorf("TextColor = %q, want #333333", res.Properties.TextColor)
	}
	if !strings.Contains(out, "Body text contrast is below WCAG AA") {
		t.Error("output missing body text warning")
	}
}

func TestRun_ContrastOverrideAccepts(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{"", "y", "yes", "whatever"} {
		t.Run(fmt.Sprintf("answer %q", answer), func(t *testing.T) {
			t.Parallel()

			p := &scriptedPrompter{answers: []string{
				"ocean", "#ffffff", "#cccccc", answer,
				"", "", "", "", "#2c3e50", "", "", "",
			}}
			res, out, err := run(t, p, newMemStore())
			if err != nil {
				t.Fatalf("Run() error = %v\n%s", err, out)
			}
			if res.Properties.TextColor != "#cccccc" {
				t.Errorf("TextColor = %q, want #cccccc kept", res.Properties.TextColor)
			}
			if p.count("Text color") != 1 {
				t.Error("text color should not be asked again")
			}
			if !strings.Contains(out, "Some contrast ratios are below WCAG AA") {
				t.Error("summary should flag the overridden contrast")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRun_Validation - Invalid input re-prompts the same field
// ---------------------------------------------------------------------------

func TestRun_ValidationReprompts(t *testing.T) {
	t.Parallel()

	store := newMemStore("default", "ocean")
	p := &scriptedPrompter{answers: []string{
		"",         // required
		"my theme", // bad chars
		"ocean",    // exists
		"forest",
		"bleu", // bad color
		"#fff",
		"",
		"Arial; x", // bad font
		"Verdana, sans-serif",
		"0", // bad size
		"101pt",
		"10.5",
		"", "",
		"", "", // accent + override
		"", "", "",
	}}
	res, out, err := run(t, p, store)
	if err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out)
	}

	if res.Name != "forest" {
		t.Errorf("Name = %q, want forest", res.Name)
	}
	if n := p.count("Theme name"); n != 4 {
		t.Errorf("theme name prompted %d times, want 4", n)
	}
	if n := p.count("Background color"); n != 2 {
		t.Errorf("background prompted %d times, want 2", n)
	}
	if n := p.count("Body text size"); n != 3 {
		t.Errorf("size prompted %d times, want 3", n)
	}
	if res.Properties.BodyTextSize != "10.5pt" {
		t.Errorf("BodyTextSize = %q, want 10.5pt", res.Properties.BodyTextSize)
	}

	for _, w := range []string{
		"✗ This field is required.",
		"letters, numbers, hyphens, and underscores",
		"theme 'ocean' already exists",
		"supported formats",
		"invalid font family",
		"must be positive",
		"too large",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q", w)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRun_Termination - Decline, cancel, input end, save failure
// ---------------------------------------------------------------------------

func TestRun_Declined(t *testing.T) {
	t.Parallel()

	answers := defaults("ocean")
	answers[len(answers)-1] = "n"
	store := newMemStore()
	p := &scriptedPrompter{answers: answers}

	_, _, err := run(t, p, store)
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("Run() error = %v, want ErrDeclined", err)
	}
	if len(store.saved) != 0 {
		t.Error("declined run must not save")
	}
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newMemStore()
	p := &scriptedPrompter{answers: defaults("ocean"), cancelAt: 4, cancel: cancel}

	var out bytes.Buffer
	_, err := New(p, store, &out, &out).Run(ctx)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run() error = %v, want ErrCancelled", err)
	}
	if len(store.saved) != 0 {
		t.Error("cancelled run must not save")
	}
}

func TestRun_InputClosed(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: []string{"ocean", "#ffffff"}}
	_, _, err := run(t, p, newMemStore())
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run() error = %v, want ErrInputClosed", err)
	}
}

func TestRun_SaveError(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.saveErr = fmt.Errorf("%w: permission denied", theme.ErrThemeSave)
	p := &scriptedPrompter{answers: defaults("ocean")}

	_, _, err := run(t, p, store)
	if !errors.Is(err, theme.ErrThemeSave) {
		t.Fatalf("Run() error = %v, want ErrThemeSave", err)
	}
	if errors.Is(err, theme.ErrInvalidName) {
		t.Error("save failure must be distinct from validation failures")
	}
}

func TestRun_ListErrorStops(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.listErr = fmt.Errorf("%w: permission denied", theme.ErrThemeRead)
	p := &scriptedPrompter{answers: []string{"a", "b", "c"}}

	_, out, err := run(t, p, store)
	if !errors.Is(err, theme.ErrThemeRead) {
		t.Fatalf("Run() error = %v, want ErrThemeRead", err)
	}
	if n := p.count("Theme name"); n != 1 {
		t.Errorf("name asked %d times, want 1\n%s", n, out)
	}
	if len(store.saved) != 0 {
		t.Error("nothing should be saved")
	}
}

func TestRun_WithDirectoryStore(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "themes")
	store := theme.NewStore(dir)
	p := &scriptedPrompter{answers: defaults("ocean")}

	res, out, err := run(t, p, store)
	if err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "ocean.css"))
	if err != nil {
		t.Fatalf("reading saved theme: %v", err)
	}
	if !strings.Contains(string(data), ".document-section-header") {
		t.Error("saved theme missing section header rule")
	}
	if res.Path != filepath.Join(dir, "ocean.css") {
		t.Errorf("Path = %q", res.Path)
	}

	// A second run with the same name is rejected at the name prompt.
	again := &scriptedPrompter{answers: []string{"ocean"}}
	if _, out, err := run(t, again, store); !errors.Is(err, ErrInputClosed) || !strings.Contains(out, "already exists") {
		t.Errorf("second run err = %v, output:\n%s", err, out)
	}
}
