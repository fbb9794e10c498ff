package theme

import "errors"

// Sentinel errors for theme operations.
var (
	// ErrInvalidName indicates a theme name that is empty or uses characters
	// outside letters, digits, '-' and '_'.
	ErrInvalidName = errors.New("invalid theme name")

	// ErrThemeExists indicates the theme name is already taken.
	ErrThemeExists = errors.New("theme already exists")

	// ErrInvalidFontSize indicates a font size that is not a positive number up to 100.
	ErrInvalidFontSize = errors.New("invalid font size")

	// ErrInvalidFontFamily indicates a font family that would break out of a CSS declaration.
	ErrInvalidFontFamily = errors.New("invalid font family")

	// ErrIncompleteProperties indicates a property set with a missing value.
	ErrIncompleteProperties = errors.New("incomplete theme properties")

	// ErrThemeNotFound indicates no user or built-in theme has the requested name.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrThemeRead indicates an I/O error while reading a theme file.
	ErrThemeRead = errors.New("failed to read theme")

	// ErrThemeSave indicates the theme file could not be written.
	ErrThemeSave = errors.New("failed to save theme")

	// ErrCSSNotFound indicates a custom CSS path that does not exist or is not a file.
	ErrCSSNotFound = errors.New("CSS file not found")
)

// NotFoundError reports an unknown theme together with the names that exist.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return "theme not found: " + quote(e.Name)
}

// Unwrap lets errors.Is match ErrThemeNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrThemeNotFound
}

func quote(s string) string {
	return "'" + s + "'"
}
