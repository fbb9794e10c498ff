package main

import (
	"errors"
	"fmt"

	"github.com/alnah/md2pdf-themes/internal/config"
	"github.com/alnah/md2pdf-themes/internal/fileutil"
	"github.com/alnah/md2pdf-themes/internal/hints"
	"github.com/alnah/md2pdf-themes/internal/theme"
)

// settings is the configuration of one command run after the config file,
// the environment and the common flags have been applied.
type settings struct {
	cfg       *config.Config
	source    string // config file name or path, "" = defaults
	themesDir string
}

// loadSettings resolves configuration in order of precedence:
// flag > environment > config file > default.
func loadSettings(f commonFlags, env *Environment) (*settings, error) {
	s := &settings{cfg: config.DefaultConfig()}

	s.source = f.config
	if s.source == "" {
		s.source = env.Getenv(envConfig)
	}
	if s.source != "" {
		cfg, err := config.LoadConfig(s.source)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(s.source) {
				hint = hints.ForConfigNotFound(config.SearchPaths(s.source))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		s.cfg = cfg
	}

	if err := s.cfg.ApplyEnv(env.Getenv); err != nil {
		return nil, err
	}
	if f.themesDir != "" {
		s.cfg.Themes.Dir = f.themesDir
	}

	dir, err := s.cfg.ThemesDir()
	if err != nil {
		return nil, err
	}
	s.themesDir = dir
	return s, nil
}

// store returns the theme store for the resolved themes directory.
func (s *settings) store() *theme.Store {
	return theme.NewStore(s.themesDir)
}
