package theme

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed builtin/*.css
var builtinFS embed.FS

// DefaultTheme is used when neither a theme nor a stylesheet is requested.
const DefaultTheme = "default"

// BuiltinNames returns the names of the themes shipped with the binary, sorted.
func BuiltinNames() []string {
	files, err := fs.Glob(builtinFS, "builtin/*"+Extension)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(f, "builtin/"), Extension))
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name is a shipped theme.
func IsBuiltin(name string) bool {
	_, ok := loadBuiltin(name)
	return ok
}

func loadBuiltin(name string) (string, bool) {
	if checkNameChars(name) != nil {
		return "", false
	}
	content, err := builtinFS.ReadFile("builtin/" + name + Extension)
	if err != nil {
		return "", false
	}
	return string(content), true
}
