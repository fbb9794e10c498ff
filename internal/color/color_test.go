package color

// Notes:
// - Parse: we test each grammar (hex-3, hex-6, named, HSL) plus rejection of
//   malformed and out-of-range literals. Every failure must wrap ErrInvalidColor.
// - Hex round trip: we check idempotency over a sample of hex literals rather
//   than exhaustively over all 16M colors.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParse_Hex - Hex literals
// ---------------------------------------------------------------------------

func TestParse_Hex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"six digits", "#1a2b3c", RGB{0x1a, 0x2b, 0x3c}},
		{"three digits expand", "#abc", RGB{0xaa, 0xbb, 0xcc}},
		{"uppercase", "#FFFFFF", White},
		{"surrounding whitespace", "  #000  ", Black},
		{"mixed case short", "#FfF", White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParse_Named - Keyword colors
// ---------------------------------------------------------------------------

func TestParse_Named(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"white", "#ffffff"},
		{"black", "#000000"},
		{"red", "#ff0000"},
		{"green", "#008000"},
		{"gray", "#808080"},
		{"grey", "#808080"},
		{"Navy", "#000080"},
		{" ORANGE ", "#ffa500"},
		{"fuchsia", "#ff00ff"},
		{"teal", "#008080"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNamedColorTable_Size(t *testing.T) {
	t.Parallel()

	if len(namedColors) < 20 {
		t.Errorf("named color table has %d entries, want at least 20", len(namedColors))
	}
	for name, h := range namedColors {
		if _, err := parseHex(h); err != nil {
			t.Errorf("named color %q maps to invalid hex %q: %v", name, h, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestParse_HSL - HSL literals
// ---------------------------------------------------------------------------

func TestParse_HSL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"pure red", "hsl(0,100%,50%)", RGB{255, 0, 0}},
		{"pure blue", "hsl(240,100%,50%)", RGB{0, 0, 255}},
		{"pure green sector", "hsl(120, 100%, 50%)", RGB{0, 255, 0}},
		{"hue 360 wraps to red", "hsl(360, 100%, 50%)", RGB{255, 0, 0}},
		{"dark green rounds", "hsl(120, 100%, 25%)", RGB{0, 128, 0}},
		{"desaturated navy", "hsl(210, 50%, 20%)", RGB{26, 51, 77}},
		{"white", "hsl(0, 0%, 100%)", White},
		{"black", "hsl(200, 80%, 0%)", Black},
		{"flexible whitespace", "HSL(  240 ,100% ,  50%  )", RGB{0, 0, 255}},
		{"magenta sector", "hsl(300, 100%, 50%)", RGB{255, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParse_Invalid - Format errors
// ---------------------------------------------------------------------------

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "supported formats"},
		{"unknown keyword", "notacolor", "supported formats"},
		{"rgb function", "rgb(1,2,3)", "supported formats"},
		{"hex length four", "#abcd", "3 or 6 digits"},
		{"hex length seven", "#1234567", "3 or 6 digits"},
		{"hex bad digit", "#gggggg", "non-hex"},
		{"hex bad short digit", "#xyz", "non-hex"},
		{"bare hash", "#", "3 or 6 digits"},
		{"hue too large", "hsl(361, 50%, 50%)", "hue"},
		{"saturation too large", "hsl(10, 101%, 50%)", "saturation"},
		{"lightness too large", "hsl(10, 50%, 150%)", "lightness"},
		{"missing percent", "hsl(10, 50, 50)", "hsl(210"},
		{"negative hue", "hsl(-10, 50%, 50%)", "hsl(210"},
		{"trailing garbage", "hsl(10, 50%, 50%) x", "hsl(210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidColor", tt.input, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse(%q) error = %q, want substring %q", tt.input, err.Error(), tt.wantMsg)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHex - Encoding and round trip
// ---------------------------------------------------------------------------

func TestRGB_Hex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   RGB
		want string
	}{
		{Black, "#000000"},
		{White, "#ffffff"},
		{RGB{1, 2, 3}, "#010203"},
		{RGB{0xab, 0x0c, 0xde}, "#ab0cde"},
	}

	for _, tt := range tests {
		if got := tt.in.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip_Idempotent(t *testing.T) {
	t.Parallel()

	samples := []string{"#fff", "#000", "#abc", "#123456", "#ABCDEF", "#0f0f0f", "#7f8081", "#a1B2c3"}

	for _, s := range samples {
		first, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		second, err := Parse(first.Hex())
		if err != nil {
			t.Fatalf("Parse(%q): %v", first.Hex(), err)
		}
		if second.Hex() != first.Hex() {
			t.Errorf("round trip of %q: %q != %q", s, second.Hex(), first.Hex())
		}
	}
}
