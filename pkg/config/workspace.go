// Package config provides the configuration schema types for the please bot.
package config

// CodeWorkspaceConfig configures the code workspace feature.
type CodeWorkspaceConfig struct {
	// Enabled turns the code workspace on.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" yaml:"enabled,omitempty"`
}

// IsEnabled returns whether the code workspace is enabled. An absent section
// or field reads as the schema default (true), the same rule every other
// accessor follows.
func (c *CodeWorkspaceConfig) IsEnabled() bool {
	if c == nil || c.Enabled == nil {
		return true
	}

	return *c.Enabled
}

// IsCodeWorkspaceEnabled decides whether the code workspace feature is
// available.
func (c *Config) IsCodeWorkspaceEnabled() bool {
	if c == nil {
		return (*CodeWorkspaceConfig)(nil).IsEnabled()
	}

	return c.CodeWorkspace.IsEnabled()
}
