// Package config provides the configuration schema types for the please bot.
package config

// ConfigRelPath is the conventional repository-relative path of the
// configuration file.
const ConfigRelPath = ".please/config.yml"

// SchemaVersion is the current config schema version, embedded in the
// exported JSON Schema identifier.
const SchemaVersion = 1

// Config is the root configuration for the please bot.
//
// A validated Config always has every section present and every field
// populated; the pointer fields exist so that partially-specified raw
// documents can be represented before defaulting, and so that accessors can
// apply the documented default when a section is absent on loosely-typed
// inputs.
type Config struct {
	// Language selects the language for all bot output. Defaults to "ko".
	Language Language `json:"language,omitempty" koanf:"language" yaml:"language,omitempty"`

	// IgnorePatterns lists doublestar glob patterns for paths the bot skips
	// entirely (review, summaries, workspace indexing).
	IgnorePatterns []string `json:"ignore_patterns,omitempty" koanf:"ignore_patterns" yaml:"ignore_patterns,omitempty"`

	// CodeReview configures pull request review behavior.
	CodeReview *CodeReviewConfig `json:"code_review,omitempty" koanf:"code_review" yaml:"code_review,omitempty"`

	// IssueWorkflow configures the issue triage/investigate/fix pipeline.
	IssueWorkflow *IssueWorkflowConfig `json:"issue_workflow,omitempty" koanf:"issue_workflow" yaml:"issue_workflow,omitempty"`

	// CodeWorkspace configures the code workspace feature.
	CodeWorkspace *CodeWorkspaceConfig `json:"code_workspace,omitempty" koanf:"code_workspace" yaml:"code_workspace,omitempty"`

	// Integrations configures external service integrations.
	Integrations *IntegrationsConfig `json:"integrations,omitempty" koanf:"integrations" yaml:"integrations,omitempty"`
}

// GetLanguage returns the configured language, falling back to the default
// when absent or invalid.
func (c *Config) GetLanguage() Language {
	if c == nil || !c.Language.IsValid() {
		return DefaultLanguage
	}

	return c.Language
}

// GetCodeReview returns the code review config, creating it if it doesn't exist.
func (c *Config) GetCodeReview() *CodeReviewConfig {
	if c.CodeReview == nil {
		c.CodeReview = &CodeReviewConfig{}
	}

	return c.CodeReview
}

// GetIssueWorkflow returns the issue workflow config, creating it if it doesn't exist.
func (c *Config) GetIssueWorkflow() *IssueWorkflowConfig {
	if c.IssueWorkflow == nil {
		c.IssueWorkflow = &IssueWorkflowConfig{}
	}

	return c.IssueWorkflow
}

// GetCodeWorkspace returns the code workspace config, creating it if it doesn't exist.
func (c *Config) GetCodeWorkspace() *CodeWorkspaceConfig {
	if c.CodeWorkspace == nil {
		c.CodeWorkspace = &CodeWorkspaceConfig{}
	}

	return c.CodeWorkspace
}

// GetIntegrations returns the integrations config, creating it if it doesn't exist.
func (c *Config) GetIntegrations() *IntegrationsConfig {
	if c.Integrations == nil {
		c.Integrations = &IntegrationsConfig{}
	}

	return c.Integrations
}
