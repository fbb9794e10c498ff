package theme

// Notes:
// - ValidateName: uniqueness is exercised with an in-memory Lister; the
//   Store-backed path is covered in store_test.go.
// - Font size: we check the boundaries (0, 100, 100.5) and the accepted
//   spellings, not every float format strconv understands.

import (
	"errors"
	"strings"
	"testing"
)

type staticLister []string

func (l staticLister) List() ([]string, error) { return l, nil }

type failingLister struct{}

func (failingLister) List() ([]string, error) { return nil, errors.New("disk on fire") }

// ---------------------------------------------------------------------------
// TestValidateName - Theme name rules
// ---------------------------------------------------------------------------

func TestValidateName(t *testing.T) {
	t.Parallel()

	existing := staticLister{"default", "dark", "ocean"}

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{"letters digits hyphen underscore", "my-theme_2", nil, ""},
		{"uppercase", "Ocean", nil, ""},
		{"empty", "", ErrInvalidName, "cannot be empty"},
		{"space", "my theme", ErrInvalidName, "letters, numbers, hyphens, and underscores"},
		{"accented letter", "théme", ErrInvalidName, "letters, numbers"},
		{"slash", "theme/x", ErrInvalidName, "letters, numbers"},
		{"dot", "theme.css", ErrInvalidName, "letters, numbers"},
		{"duplicate user theme", "ocean", ErrThemeExists, "'ocean' already exists"},
		{"duplicate builtin", "default", ErrThemeExists, "already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(tt.input, existing)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("ValidateName(%q) message = %q, want substring %q", tt.input, err, tt.wantMsg)
			}
		})
	}
}

func TestValidateName_CaseSensitiveUniqueness(t *testing.T) {
	t.Parallel()

	if err := ValidateName("OCEAN", staticLister{"ocean"}); err != nil {
		t.Errorf("ValidateName(OCEAN) with existing 'ocean' = %v, want nil", err)
	}
}

func TestValidateName_NilLister(t *testing.T) {
	t.Parallel()

	if err := ValidateName("anything", nil); err != nil {
		t.Errorf("ValidateName with nil lister = %v, want nil", err)
	}
}

func TestValidateName_ListerError(t *testing.T) {
	t.Parallel()

	err := ValidateName("fresh", failingLister{})
	if !errors.Is(err, ErrThemeRead) {
		t.Errorf("ValidateName with failing lister = %v, want ErrThemeRead", err)
	}
}

// ---------------------------------------------------------------------------
// TestFontSize - Size parsing and normalization
// ---------------------------------------------------------------------------

func TestNormalizeFontSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"11", "11pt"},
		{"11pt", "11pt"},
		{"11PT", "11pt"},
		{" 12 pt ", "12pt"},
		{"10.5", "10.5pt"},
		{"100", "100pt"},
		{"0.5pt", "0.5pt"},
		{"+9", "9pt"},
	}

	for _, tt := range tests {
		got, err := NormalizeFontSize(tt.input)
		if err != nil {
			t.Errorf("NormalizeFontSize(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeFontSize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateFontSize_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "pt", "abc", "0", "0pt", "-3", "100.5", "150pt", "NaN", "inf", "11px"} {
		err := ValidateFontSize(input)
		if !errors.Is(err, ErrInvalidFontSize) {
			t.Errorf("ValidateFontSize(%q) = %v, want ErrInvalidFontSize", input, err)
			continue
		}
		if !strings.Contains(err.Error(), "11pt") {
			t.Errorf("ValidateFontSize(%q) message %q does not state the accepted forms", input, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestValidateFontFamily / TestValidateColor
// ---------------------------------------------------------------------------

func TestValidateFontFamily(t *testing.T) {
	t.Parallel()

	valid := []string{"Arial, sans-serif", "'Times New Roman', serif", "Georgia"}
	for _, v := range valid {
		if err := ValidateFontFamily(v); err != nil {
			t.Errorf("ValidateFontFamily(%q) unexpected error: %v", v, err)
		}
	}

	invalid := []string{"", "   ", "Arial; color: red", "x} body {", "<script>", "Arial\nserif"}
	for _, v := range invalid {
		if err := ValidateFontFamily(v); !errors.Is(err, ErrInvalidFontFamily) {
			t.Errorf("ValidateFontFamily(%q) = %v, want ErrInvalidFontFamily", v, err)
		}
	}
}

func TestValidateColor(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"#fff", "navy", "hsl(10, 20%, 30%)"} {
		if err := ValidateColor(v); err != nil {
			t.Errorf("ValidateColor(%q) unexpected error: %v", v, err)
		}
	}
	for _, v := range []string{"", "#ff", "rgb(0,0,0)", "bleu"} {
		if err := ValidateColor(v); err == nil {
			t.Errorf("ValidateColor(%q) = nil, want error", v)
		}
	}
}
