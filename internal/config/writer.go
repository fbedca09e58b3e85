// Package config provides configuration loading, validation, and generation
// for the please bot.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

const (
	// ConfigFileMode is the file mode for configuration files.
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for the configuration directory.
	ConfigDirMode = 0o700
)

// ErrConfigExists is returned when writing would overwrite an existing
// configuration file without force.
var ErrConfigExists = errors.New("configuration file already exists")

// Writer writes generated configuration files into a repository.
type Writer struct {
	rootPath string
}

// NewWriter creates a Writer rooted at the given repository path.
func NewWriter(rootPath string) *Writer {
	return &Writer{rootPath: rootPath}
}

// ConfigPath returns the path the writer writes to.
func (w *Writer) ConfigPath() string {
	return ConfigPath(w.rootPath)
}

// Exists checks whether a configuration file is already present.
func (w *Writer) Exists() bool {
	return fileExists(w.ConfigPath())
}

// Write generates a configuration from opts and writes it to
// .please/config.yml under the writer's root. Refuses to overwrite an
// existing file unless force is set.
func (w *Writer) Write(opts GenerateOptions, force bool) (string, error) {
	path := w.ConfigPath()

	if !force && fileExists(path) {
		return "", errors.Wrapf(ErrConfigExists, "%s", path)
	}

	data, err := GenerateYAML(opts)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %s", dir)
	}

	if err := os.WriteFile(path, data, ConfigFileMode); err != nil {
		return "", errors.Wrapf(err, "failed to write config file %s", path)
	}

	return path, nil
}
