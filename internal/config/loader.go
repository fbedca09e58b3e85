// Package config provides configuration loading, validation, and generation
// for the please bot.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pleaselabs/please/pkg/config"
)

var (
	// ErrConfigNotFound is returned by content sources when the repository
	// has no configuration file.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidYAML is returned when the configuration file cannot be
	// parsed.
	ErrInvalidYAML = errors.New("invalid YAML")
)

const (
	// ConfigDir is the directory name holding the configuration file.
	ConfigDir = ".please"

	// ConfigFile is the configuration file name.
	ConfigFile = "config.yml"
)

// ConfigPath returns the conventional configuration file path under a
// repository root.
func ConfigPath(rootPath string) string {
	return filepath.Join(rootPath, ConfigDir, ConfigFile)
}

// Loader loads and validates the local configuration file.
type Loader struct {
	validator *Validator
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{validator: NewValidator()}
}

// LoadFromFile resolves .please/config.yml under rootPath and returns the
// validated configuration. A missing file is not an error: the canonical
// defaults are returned. A present but malformed or invalid file fails with
// an error naming the resolved path; local misconfiguration is the
// repository owner's to see, never silently papered over with defaults.
func (l *Loader) LoadFromFile(rootPath string) (*config.Config, error) {
	path := ConfigPath(rootPath)

	if !fileExists(path) {
		return DefaultConfig(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yamlparser.Parser()); err != nil {
		return nil, errors.Wrapf(
			errors.Mark(err, ErrInvalidYAML),
			"failed to parse %s",
			path,
		)
	}

	cfg, err := l.validator.Validate(k.Raw())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config at %s", path)
	}

	return cfg, nil
}

// HasConfigFile checks whether a configuration file exists under rootPath.
func (*Loader) HasConfigFile(rootPath string) bool {
	return fileExists(ConfigPath(rootPath))
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
