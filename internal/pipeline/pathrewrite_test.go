package pipeline

// Notes:
// - Unix paths only; the Windows drive-letter branch of fileURL is not
//   exercised here.

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestResolveLocalPaths - Relative references to file URLs
// ---------------------------------------------------------------------------

func TestResolveLocalPaths(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("expectations use Unix paths")
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"relative image", `<p><img src="img/logo.png" alt="x"/></p>`, `<p><img src="file:///docs/img/logo.png" alt="x"/></p>`},
		{"dot slash", `<img src="./a.png"/>`, `<img src="file:///docs/a.png"/>`},
		{"link with fragment", `<a href="other.md#part">o</a>`, `<a href="file:///docs/other.md#part">o</a>`},
		{"escaped space", `<img src="my%20pic.png"/>`, `<img src="file:///docs/my%20pic.png"/>`},
		{"anchor kept", `<a href="#intro">i</a>`, `<a href="#intro">i</a>`},
		{"url kept", `<a href="https://example.com/x">x</a>`, `<a href="https://example.com/x">x</a>`},
		{"mailto kept", `<a href="mailto:me@example.com">m</a>`, `<a href="mailto:me@example.com">m</a>`},
		{"data uri kept", `<img src="data:image/png;base64,AAA"/>`, `<img src="data:image/png;base64,AAA"/>`},
		{"protocol relative kept", `<img src="//cdn.example.com/a.png"/>`, `<img src="//cdn.example.com/a.png"/>`},
		{"absolute kept", `<img src="/abs/a.png"/>`, `<img src="/abs/a.png"/>`},
		{"traversal kept", `<img src="../secret.png"/>`, `<img src="../secret.png"/>`},
		{"other tags untouched", `<p class="x">a &amp; b</p>`, `<p class="x">a &amp; b</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveLocalPaths(tt.in, "/docs")
			if err != nil {
				t.Fatalf("ResolveLocalPaths() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveLocalPaths(%q)\n got  %q\n want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveLocalPaths_EmptyBaseDir(t *testing.T) {
	t.Parallel()

	in := `<img src="a.png"/>`
	got, err := ResolveLocalPaths(in, "")
	if err != nil || got != in {
		t.Errorf("ResolveLocalPaths(empty dir) = %q, %v; want input unchanged", got, err)
	}
}

func TestResolveLocalPaths_RelativeBaseDir(t *testing.T) {
	t.Parallel()

	got, err := ResolveLocalPaths(`<img src="a.png"/>`, "docs")
	if err != nil {
		t.Fatalf("ResolveLocalPaths() error = %v", err)
	}
	abs, _ := filepath.Abs("docs")
	if !strings.Contains(got, filepath.ToSlash(abs)+"/a.png") {
		t.Errorf("relative base dir not made absolute: %q", got)
	}
}

func TestResolveLocalPaths_RenderedMarkdown(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("expectations use Unix paths")
	}

	body, err := NewRenderer().Render(t.Context(), "![Chart](charts/q1.png)\n\nSee [notes](notes.md).")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got, err := ResolveLocalPaths(body, "/work/report")
	if err != nil {
		t.Fatalf("ResolveLocalPaths() error = %v", err)
	}
	for _, want := range []string{`src="file:///work/report/charts/q1.png"`, `href="file:///work/report/notes.md"`} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}
