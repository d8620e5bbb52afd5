package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = "pval.yaml"
	// UserConfigDir is the user-level config directory, relative to home.
	UserConfigDir = ".config/pval"
	// UserConfigFile is the user-level config file name.
	UserConfigFile = "config.yaml"
)

// Loader loads configuration with layered precedence.
type Loader struct {
	logger  *slog.Logger
	homeDir func() (string, error)
	workDir func() (string, error)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHomeDir overrides the directory searched for the user config.
func WithHomeDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.homeDir = func() (string, error) { return dir, nil }
	}
}

// WithWorkDir overrides the directory the project config search starts in.
func WithWorkDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.workDir = func() (string, error) { return dir, nil }
	}
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{
		logger:  logger,
		homeDir: os.UserHomeDir,
		workDir: os.Getwd,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load applies, in order:
// 1. Defaults
// 2. User config (~/.config/pval/config.yaml)
// 3. Project config (pval.yaml in the working directory or a parent)
// 4. explicit, when non-empty; it must exist
//
// Missing user and project files are skipped. Malformed ones are errors.
func (l *Loader) Load(explicit string) (*Config, error) {
	cfg := DefaultConfig()

	if path := l.userConfigPath(); path != "" {
		user, err := LoadFromFile(path)
		switch {
		case err == nil:
			l.logger.Debug("loaded user config", slog.String("path", path))
			cfg.Merge(user)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	if path := l.findProjectConfig(); path != "" {
		project, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("loaded project config", slog.String("path", path))
		cfg.Merge(project)
	} else {
		l.logger.Debug("no project config found")
	}

	if explicit != "" {
		c, err := LoadFromFile(explicit)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("loaded config", slog.String("path", explicit))
		cfg.Merge(c)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnsureUserConfig writes the defaults to the user config path unless a file
// already exists there, and returns the path.
func (l *Loader) EnsureUserConfig() (string, error) {
	path := l.userConfigPath()
	if path == "" {
		return "", errors.New("no home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := DefaultConfig().SaveToFile(path); err != nil {
		return "", err
	}
	l.logger.Info("created user config", slog.String("path", path))
	return path, nil
}

func (l *Loader) userConfigPath() string {
	home, err := l.homeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches the working directory and its parents.
func (l *Loader) findProjectConfig() string {
	dir, err := l.workDir()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
