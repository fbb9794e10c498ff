package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/alnah/md2pdf-themes/internal/color"
)

// maxFontSize is the largest accepted body size in points.
const maxFontSize = 100

// fontSizeForms is appended to every font size error.
const fontSizeForms = "use a number (e.g., 11) or with 'pt' (e.g., 11pt)"

// Lister reports the names of themes that already exist.
type Lister interface {
	List() ([]string, error)
}

// ValidateName checks that name is non-empty, uses only ASCII letters,
// digits, '-' and '_', and is not already returned by themes.
// A nil lister skips the uniqueness check.
func ValidateName(name string, themes Lister) error {
	if err := checkNameChars(name); err != nil {
		return err
	}
	if themes == nil {
		return nil
	}

	names, err := themes.List()
	if err != nil {
		return fmt.Errorf("%w: listing themes: %v", ErrThemeRead, err)
	}
	for _, existing := range names {
		if existing == name {
			return fmt.Errorf("%w: theme '%s' already exists, choose a different name", ErrThemeExists, name)
		}
	}
	return nil
}

func checkNameChars(name string) error {
	if name == "" {
		return fmt.Errorf("%w: theme name cannot be empty", ErrInvalidName)
	}
	for _, r := range name {
		if !isNameRune(r) {
			return fmt.Errorf("%w: theme name can only contain letters, numbers, hyphens, and underscores", ErrInvalidName)
		}
	}
	return nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_':
		return true
	}
	return false
}

// ValidateColor checks that value parses as a color literal.
func ValidateColor(value string) error {
	_, err := color.Parse(value)
	return err
}

// ValidateFontSize checks that value is a number in (0, 100],
// optionally followed by "pt".
func ValidateFontSize(value string) error {
	_, err := parseFontSize(value)
	return err
}

// NormalizeFontSize validates value and returns it with a "pt" suffix.
func NormalizeFontSize(value string) (string, error) {
	num, err := parseFontSize(value)
	if err != nil {
		return "", err
	}
	return num + "pt", nil
}

// parseFontSize returns the canonical numeric part of a valid font size.
func parseFontSize(value string) (string, error) {
	v := strings.TrimSpace(value)
	num := strings.TrimSpace(strings.TrimSuffix(strings.ToLower(v), "pt"))

	size, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(size) || math.IsInf(size, 0) {
		return "", fmt.Errorf("%w: '%s', %s", ErrInvalidFontSize, value, fontSizeForms)
	}
	if size <= 0 {
		return "", fmt.Errorf("%w: '%s' must be positive, %s", ErrInvalidFontSize, value, fontSizeForms)
	}
	if size > maxFontSize {
		return "", fmt.Errorf("%w: '%s' is too large (max %dpt), %s", ErrInvalidFontSize, value, maxFontSize, fontSizeForms)
	}
	return strconv.FormatFloat(size, 'f', -1, 64), nil
}

// ValidateFontFamily rejects empty values and characters that would let the
// value escape its CSS declaration.
func ValidateFontFamily(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: font family cannot be empty", ErrInvalidFontFamily)
	}
	for _, r := range value {
		if strings.ContainsRune("{};<>", r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains %q, use a comma-separated font list (e.g., Georgia, serif)",
				ErrInvalidFontFamily, value, r)
		}
	}
	return nil
}
