package yamlutil_test

// Notes:
// - Marshal's error branch is not tested: go-yaml only fails on types such
//   as channels or funcs, which no caller passes.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/md2pdf-themes/internal/yamlutil"
)

type themesSection struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
}

type testConfig struct {
	Themes  themesSection `yaml:"themes"`
	Workers int           `yaml:"workers"`
	Preview bool          `yaml:"preview"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict decoding with limits
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		dest     any
		wantErr  error
		wantText string
	}{
		{name: "valid", data: []byte("themes:\n  default: dark\nworkers: 2\npreview: true\n"), dest: &testConfig{}},
		{name: "empty", data: nil, dest: &testConfig{}, wantErr: yamlutil.ErrEmptyInput},
		{name: "nil destination", data: []byte("workers: 1"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		{name: "too large", data: []byte(strings.Repeat("#", yamlutil.MaxInputSize+1)), dest: &testConfig{}, wantErr: yamlutil.ErrInputTooLarge},
		{name: "unknown field", data: []byte("workers: 1\ncolour: red\n"), dest: &testConfig{}, wantText: "colour"},
		{name: "wrong type", data: []byte("workers: many\n"), dest: &testConfig{}, wantText: "yamlutil:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantText != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantText) {
					t.Errorf("UnmarshalStrict() error = %v, want mention of %q", err, tt.wantText)
				}
			case err != nil:
				t.Errorf("UnmarshalStrict() unexpected error: %v", err)
			}
		})
	}
}

func TestUnmarshalStrict_Values(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	if err := yamlutil.UnmarshalStrict([]byte("themes:\n  dir: /srv/themes\n  default: ocean\nworkers: 3\n"), &cfg); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if cfg.Themes.Dir != "/srv/themes" || cfg.Themes.Default != "ocean" || cfg.Workers != 3 || cfg.Preview {
		t.Errorf("decoded = %+v", cfg)
	}
}

// ---------------------------------------------------------------------------
// TestReadFileStrict - File input
// ---------------------------------------------------------------------------

func TestReadFileStrict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "md2pdf.yaml")
	if err := os.WriteFile(path, []byte("workers: 4\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var cfg testConfig
	if err := yamlutil.ReadFileStrict(path, &cfg); err != nil {
		t.Fatalf("ReadFileStrict() error = %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}

	err := yamlutil.ReadFileStrict(filepath.Join(dir, "missing.yaml"), &cfg)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFileStrict(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(testConfig{Themes: themesSection{Default: "dark"}, Workers: 2})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, want := range []string{"themes:", "default: dark", "workers: 2"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}
}
