// Package config loads the md2pdf YAML configuration file and resolves the
// settings that flags and environment variables may override.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2pdf "github.com/alnah/md2pdf-themes"
	"github.com/alnah/md2pdf-themes/internal/fileutil"
	"github.com/alnah/md2pdf-themes/internal/pipeline"
	"github.com/alnah/md2pdf-themes/internal/theme"
	"github.com/alnah/md2pdf-themes/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Environment variables read by ApplyEnv.
const (
	EnvThemesDir = "MD2PDF_THEMES_DIR"
	EnvTimeout   = "MD2PDF_TIMEOUT"
)

// appDir is the directory under the user config dir holding configs and themes.
const appDir = "md2pdf"

// MaxWorkers bounds the workers setting.
const MaxWorkers = 32

// DefaultTimeout bounds the rendering of one document.
const DefaultTimeout = 30 * time.Second

// Config holds the settings of a conversion run.
type Config struct {
	Themes  ThemesConfig `yaml:"themes" json:"themes"`
	Output  OutputConfig `yaml:"output" json:"output"`
	Page    PageConfig   `yaml:"page" json:"page"`
	Code    CodeConfig   `yaml:"code" json:"code"`
	Timeout string       `yaml:"timeout" json:"timeout"` // Go duration, e.g. "30s", "2m"
	Workers int          `yaml:"workers" json:"workers"` // 0 = auto
	Preview bool         `yaml:"preview" json:"preview"`
}

// ThemesConfig locates user themes.
type ThemesConfig struct {
	Dir     string `yaml:"dir" json:"dir"`         // "" = <UserConfigDir>/md2pdf/themes
	Default string `yaml:"default" json:"default"` // theme used when --theme is absent
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir" json:"dir"` // default batch output directory, "" = beside each input
}

// PageConfig forces a paper size over the theme's @page size.
type PageConfig struct {
	Size string `yaml:"size" json:"size"` // "a4", "letter", "legal"; "" = the theme decides, A4 fallback
}

// CodeConfig selects the syntax highlighting style.
type CodeConfig struct {
	Style string `yaml:"style" json:"style"` // chroma style name, "" = no highlighting colors
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Themes:  ThemesConfig{Default: theme.DefaultTheme},
		Code:    CodeConfig{Style: pipeline.DefaultCodeStyle},
		Timeout: DefaultTimeout.String(),
	}
}

// Validate checks values that cannot be checked by the YAML decoder.
func (c *Config) Validate() error {
	if c.Themes.Default != "" {
		if err := theme.ValidateName(c.Themes.Default, nil); err != nil {
			return fmt.Errorf("%w: themes.default: %v", ErrInvalidConfig, err)
		}
	}
	if c.Page.Size != "" {
		if err := md2pdf.ValidatePageSize(c.Page.Size); err != nil {
			return fmt.Errorf("%w: page.size: %v", ErrInvalidConfig, err)
		}
	}
	if c.Code.Style != "" {
		if _, err := pipeline.CodeStyleCSS(c.Code.Style); err != nil {
			return fmt.Errorf("%w: code.style: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: %d (must be between 0 and %d)", ErrInvalidConfig, c.Workers, MaxWorkers)
	}
	return nil
}

// TimeoutDuration parses Timeout. An empty value gives DefaultTimeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %q is not a duration (e.g., 30s, 2m)", ErrInvalidConfig, c.Timeout)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout: must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	return d, nil
}

// ApplyEnv overrides file values with the MD2PDF_* environment variables.
// Flags are applied by the caller afterwards, so they win over both.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if dir := getenv(EnvThemesDir); dir != "" {
		c.Themes.Dir = dir
	}
	if timeout := getenv(EnvTimeout); timeout != "" {
		c.Timeout = timeout
		if _, err := c.TimeoutDuration(); err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
	}
	return nil
}

// ThemesDir returns the configured themes directory, or the default one
// under the user config directory.
func (c *Config) ThemesDir() (string, error) {
	if c.Themes.Dir != "" {
		return c.Themes.Dir, nil
	}
	return DefaultThemesDir()
}

// DefaultThemesDir returns <UserConfigDir>/md2pdf/themes.
func DefaultThemesDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(base, appDir, "themes"), nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths returns the files tried for a config name, in order:
// current directory, then <UserConfigDir>/md2pdf/, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if base, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(base, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
