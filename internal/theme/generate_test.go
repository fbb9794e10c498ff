package theme

// Notes:
// - GenerateCSS: we assert on the presence of the selectors and values that
//   downstream rendering depends on, not on whitespace or rule order.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/md2pdf-themes/internal/color"
)

// ---------------------------------------------------------------------------
// TestGenerateCSS - Stylesheet content
// ---------------------------------------------------------------------------

func TestGenerateCSS_Defaults(t *testing.T) {
	t.Parallel()

	css, err := GenerateCSS(DefaultProperties("ocean"))
	if err != nil {
		t.Fatalf("GenerateCSS() error = %v", err)
	}

	want := []string{
		"/* Theme: ocean */",
		"@page",
		"size: A4",
		"font-family: Arial, sans-serif;",
		"font-size: 11pt;",
		"background-color: #ffffff;",
		"color: #000000;",
		".document-section-header",
		".page-break",
		"break-after: page;",
		"border-left: 5px solid #667eea;",
	}
	for _, w := range want {
		if !strings.Contains(css, w) {
			t.Errorf("CSS missing %q", w)
		}
	}
}

func TestGenerateCSS_DerivedColors(t *testing.T) {
	t.Parallel()

	p := DefaultProperties("derived")
	css, err := GenerateCSS(p)
	if err != nil {
		t.Fatalf("GenerateCSS() error = %v", err)
	}

	hover, _ := color.SuggestDarker(p.AccentColor, 15)
	altRow, _ := color.SuggestLighter(p.BackgroundColor, 5)
	border, _ := color.SuggestDarker(p.CodeBackground, 10)

	if hover != "#566bc6" || border != "#dcdcdc" {
		t.Fatalf("unexpected derived colors hover=%s border=%s", hover, border)
	}
	for _, w := range []string{"color: " + hover, "background-color: " + altRow, "1px solid " + border} {
		if !strings.Contains(css, w) {
			t.Errorf("CSS missing derived value %q", w)
		}
	}
}

func TestGenerateCSS_NormalizesColors(t *testing.T) {
	t.Parallel()

	p := DefaultProperties("named")
	p.BackgroundColor = "white"
	p.TextColor = "BLACK"
	p.AccentColor = "blue"
	p.H1Color = "hsl(0, 100%, 50%)"

	css, err := GenerateCSS(p)
	if err != nil {
		t.Fatalf("GenerateCSS() error = %v", err)
	}
	for _, w := range []string{"#ffffff", "#000000", "#0000ff", "#ff0000"} {
		if !strings.Contains(css, w) {
			t.Errorf("CSS missing normalized color %q", w)
		}
	}
	for _, raw := range []string{"white", "BLACK", "hsl("} {
		if strings.Contains(css, raw) {
			t.Errorf("CSS contains raw literal %q", raw)
		}
	}
}

func TestGenerateCSS_PageBreakHasNoFootprint(t *testing.T) {
	t.Parallel()

	css, err := GenerateCSS(DefaultProperties("breaks"))
	if err != nil {
		t.Fatalf("GenerateCSS() error = %v", err)
	}

	start := strings.Index(css, ".page-break {")
	if start < 0 {
		t.Fatal("no .page-break rule")
	}
	rule := css[start : start+strings.Index(css[start:], "}")]
	for _, w := range []string{"height: 0;", "margin: 0;", "padding: 0;", "border: none;"} {
		if !strings.Contains(rule, w) {
			t.Errorf(".page-break rule missing %q:\n%s", w, rule)
		}
	}
}

func TestGenerateCSS_Deterministic(t *testing.T) {
	t.Parallel()

	p := DefaultProperties("same")
	p.FontFamily = "'Times New Roman', serif"
	first, err := GenerateCSS(p)
	if err != nil {
		t.Fatalf("GenerateCSS() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := GenerateCSS(p)
		if err != nil {
			t.Fatalf("GenerateCSS() error = %v", err)
		}
		if again != first {
			t.Fatal("GenerateCSS output differs between identical calls")
		}
	}
}

func TestGenerateCSS_FontSizeWithoutUnit(t *testing.T) {
	t.Parallel()

	p := DefaultProperties("sized")
	p.BodyTextSize = "12"
	css, err := GenerateCSS(p)
	if err != nil {
		t.Fatalf("GenerateCSS() error = %v", err)
	}
	if !strings.Contains(css, "font-size: 12pt;") {
		t.Error("CSS missing normalized body size 12pt")
	}
}

func TestGenerateCSS_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Properties)
		wantErr error
	}{
		{"bad name", func(p *Properties) { p.Name = "a b" }, ErrInvalidName},
		{"bad color", func(p *Properties) { p.AccentColor = "bleu" }, color.ErrInvalidColor},
		{"missing color", func(p *Properties) { p.CodeBackground = "" }, ErrIncompleteProperties},
		{"bad font size", func(p *Properties) { p.BodyTextSize = "0" }, ErrInvalidFontSize},
		{"css injection in font", func(p *Properties) { p.FontFamily = "x; } body { display: none" }, ErrInvalidFontFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := DefaultProperties("broken")
			tt.mutate(&p)
			_, err := GenerateCSS(p)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GenerateCSS() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestContrastPairs - Checked foregrounds
// ---------------------------------------------------------------------------

func TestContrastPairs(t *testing.T) {
	t.Parallel()

	p := DefaultProperties("pairs")
	pairs := p.ContrastPairs()
	if len(pairs) != 4 {
		t.Fatalf("got %d contrast pairs, want 4", len(pairs))
	}
	if pairs[0].Element != "Body text" || pairs[0].Foreground != p.TextColor {
		t.Errorf("first pair = %+v, want body text", pairs[0])
	}
	if pairs[3].Element != "Link" || pairs[3].Foreground != p.AccentColor {
		t.Errorf("last pair = %+v, want link/accent", pairs[3])
	}
}
