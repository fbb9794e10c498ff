package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/md2pdf-themes/internal/fileutil"
)

// Extension is the file extension of a stored theme.
const Extension = ".css"

// Permissions for the themes directory and saved theme files.
const (
	dirPerm  os.FileMode = 0o750
	filePerm os.FileMode = 0o644
)

// Entry describes one available theme.
type Entry struct {
	Name    string
	Builtin bool   // shipped with the binary
	Path    string // file path for user themes, empty for built-ins
}

// Store reads and writes user themes in a directory and falls back to the
// built-in themes. A user theme shadows a built-in theme of the same name.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created on the
// first Save, so it need not exist yet.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the user themes directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path a user theme with this name has or would have.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+Extension)
}

// Entries returns every available theme sorted by name.
// A missing themes directory is not an error.
func (s *Store) Entries() ([]Entry, error) {
	byName := make(map[string]Entry)
	for _, name := range BuiltinNames() {
		byName[name] = Entry{Name: name, Builtin: true}
	}

	user, err := s.userThemes()
	if err != nil {
		return nil, err
	}
	for _, name := range user {
		byName[name] = Entry{Name: name, Path: s.Path(name)}
	}

	entries := make([]Entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// List returns the names of every available theme, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

func (s *Store) userThemes() ([]string, error) {
	if s.dir == "" {
		return nil, nil
	}
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrThemeRead, err)
	}

	var names []string
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), Extension) {
			continue
		}
		name := strings.TrimSuffix(f.Name(), Extension)
		if checkNameChars(name) != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Exists reports whether a user or built-in theme has this name.
func (s *Store) Exists(name string) (bool, error) {
	names, err := s.List()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Load returns the CSS of the named theme, user themes first.
// An unknown name yields a *NotFoundError listing the available themes.
func (s *Store) Load(name string) (string, error) {
	if err := checkNameChars(name); err != nil {
		return "", err
	}

	if s.dir != "" {
		content, err := os.ReadFile(s.Path(name)) // #nosec G304 -- name validated above
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %v", ErrThemeRead, err)
		}
	}

	if css, ok := loadBuiltin(name); ok {
		return css, nil
	}

	available, _ := s.List()
	return "", &NotFoundError{Name: name, Available: available}
}

// Save writes css as the named user theme and returns its path.
// The write is atomic: readers see the old file or the new one, never a
// partial one. Name uniqueness is the caller's concern.
func (s *Store) Save(name, css string) (string, error) {
	if err := checkNameChars(name); err != nil {
		return "", err
	}
	if s.dir == "" {
		return "", fmt.Errorf("%w: no themes directory configured", ErrThemeSave)
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrThemeSave, s.dir, err)
	}

	path := s.Path(name)
	if err := fileutil.WriteFileAtomic(path, []byte(css), filePerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrThemeSave, err)
	}
	return path, nil
}

// LoadCSSFile reads a stylesheet from an arbitrary path.
func LoadCSSFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrCSSNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrThemeRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrCSSNotFound, path)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided stylesheet
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrThemeRead, err)
	}
	return string(content), nil
}

// HasCSSExtension reports whether path ends in .css, ignoring case.
func HasCSSExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}
