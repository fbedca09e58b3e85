// Package config provides the configuration schema types for the please bot.
package config

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// IsPathIgnored reports whether a repository-relative path matches any of the
// configured ignore_patterns. Patterns use doublestar glob syntax; a pattern
// that fails to compile never matches.
func (c *Config) IsPathIgnored(path string) bool {
	if c == nil || len(c.IgnorePatterns) == 0 {
		return false
	}

	path = filepath.ToSlash(path)

	for _, pattern := range c.IgnorePatterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}

	return false
}
